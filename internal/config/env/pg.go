package env

import (
	"snakes_backend/internal/config"
)

type pgConfig struct {
	// Пустой DSN - журнал раундов хранится в памяти
	Dsn string `env:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}
