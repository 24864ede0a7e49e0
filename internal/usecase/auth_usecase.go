package usecase

import (
	"strings"
	"time"

	"applyai/internal/domain/user"
	"applyai/internal/logger"
	"applyai/internal/pkg/jwt"
	"applyai/internal/store"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Demo account available without registration.
const (
	demoEmail    = "demo@test.com"
	demoPassword = "demo123"
	demoUserID   = "demo-user-001"
	demoUserName = "Demo User"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

type Auth struct {
	store    *store.Store
	jwt      *jwt.Service
	sessions *gocache.Cache
	now      func() time.Time
}

func NewAuthUsecase(st *store.Store, jwtSvc *jwt.Service, sessions *gocache.Cache) *Auth {
	return &Auth{store: st, jwt: jwtSvc, sessions: sessions, now: time.Now}
}

func (u *Auth) Register(in RegisterInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, errors.Wrap(ErrInternal, err.Error())
	}

	usr := user.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    u.now(),
	}

	if err := u.store.CreateUser(usr); err != nil {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}
	u.store.EnsureApplicationList(usr.ID)

	return u.issueSession(usr.ID, usr.Name, email)
}

func (u *Auth) Login(in LoginInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)

	if email == demoEmail && in.Password == demoPassword {
		u.store.EnsureApplicationList(demoUserID)
		return u.issueSession(demoUserID, demoUserName, email)
	}

	usr, err := u.store.UserByEmail(email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return u.issueSession(usr.ID, usr.Name, usr.Email)
}

// UserIDForToken resolves a session token, preferring the session cache
// over signature validation.
func (u *Auth) UserIDForToken(token string) (string, bool) {
	if u.sessions != nil {
		if cached, found := u.sessions.Get(token); found {
			return cached.(string), true
		}
	}
	claims, err := u.jwt.Validate(token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

func (u *Auth) issueSession(userID, name, email string) (AuthResult, error) {
	token, err := u.jwt.Generate(userID, email)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).
			Errorf("failed to sign token: %v", err)
		return AuthResult{}, ErrInternal
	}

	if u.sessions != nil {
		u.sessions.Set(token, userID, gocache.DefaultExpiration)
	}
	return AuthResult{UserID: userID, Name: name, Email: email, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
