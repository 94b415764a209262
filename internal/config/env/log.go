package env

import (
	"snakes_backend/internal/config"
)

type logConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR" envDefault:"./logs"`
	LogFile  bool   `env:"LOG_FILE" envDefault:"false"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Dir() string {
	return cfg.LogDir
}

func (cfg *logConfig) File() bool {
	return cfg.LogFile
}
