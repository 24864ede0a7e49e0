package usecase

import (
	"applyai/internal/domain/user"
	"applyai/internal/store"
)

type Profiles struct {
	store *store.Store
}

func NewProfilesUsecase(st *store.Store) *Profiles {
	return &Profiles{store: st}
}

func (u *Profiles) Save(p user.Profile) error {
	if p.UserID == "" {
		return ErrInvalidInput
	}
	u.store.SaveProfile(p)
	return nil
}

func (u *Profiles) Get(userID string) (user.Profile, error) {
	p, err := u.store.ProfileByUser(userID)
	if err != nil {
		return user.Profile{}, ErrNotFound
	}
	return p, nil
}
