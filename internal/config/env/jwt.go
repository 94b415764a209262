package env

import (
	"errors"
	"time"

	"snakes_backend/internal/config"
)

type jwtConfig struct {
	AccessTokenSecret string        `env:"ACCESS_TOKEN"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"24h"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	var cfg jwtConfig
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.AccessTokenSecret) == 0 {
		return nil, errors.New("access token secret key not found")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, errors.New("access token duration must be positive")
	}
	return &cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenSecret)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
