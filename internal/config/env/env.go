package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parse - читает переменные окружения в структуру по тегам env
func parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
