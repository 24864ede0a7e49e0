package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Adzuna AdzunaConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

type AppConfig struct {
	Name     string
	HTTPPort string
}

// AdzunaConfig carries the external provider credentials. Both values are
// optional: with either missing the aggregator serves local data only, it
// never treats the absence as an error.
type AdzunaConfig struct {
	AppID                string
	AppKey               string
	Timeout              time.Duration
	MaxRequestsPerSecond float64
}

func (c AdzunaConfig) Configured() bool {
	return c.AppID != "" && c.AppKey != ""
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
)

type LoggerConfig struct {
	LogLevel logLevel
}

func Load() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "applyai")
	viper.SetDefault("HTTP_PORT", "8000")
	viper.SetDefault("LOG_LEVEL", string(LevelInfo))
	viper.SetDefault("ADZUNA_TIMEOUT", "5s")
	viper.SetDefault("ADZUNA_MAX_REQUESTS_PER_SECOND", 5.0)
	viper.SetDefault("JWT_SECRET", "applyai-dev-secret")
	viper.SetDefault("TOKEN_TTL", "24h")

	cfg := Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			HTTPPort: viper.GetString("HTTP_PORT"),
		},
		Adzuna: AdzunaConfig{
			AppID:                viper.GetString("ADZUNA_APP_ID"),
			AppKey:               viper.GetString("ADZUNA_APP_KEY"),
			Timeout:              viper.GetDuration("ADZUNA_TIMEOUT"),
			MaxRequestsPerSecond: viper.GetFloat64("ADZUNA_MAX_REQUESTS_PER_SECOND"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  viper.GetDuration("TOKEN_TTL"),
		},
		Logger: LoggerConfig{
			LogLevel: logLevel(viper.GetString("LOG_LEVEL")),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.App.HTTPPort == "" {
		errs = append(errs, errors.New("missing variable: HTTP_PORT"))
	}
	if c.Adzuna.Timeout <= 0 {
		errs = append(errs, errors.New("ADZUNA_TIMEOUT must be positive"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("missing variable: JWT_SECRET"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}
	return nil
}
