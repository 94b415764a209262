package env

import (
	"snakes_backend/internal/config"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Addr
}
