package env

import (
	"fmt"
	"time"

	"snakes_backend/internal/config"

	"github.com/shopspring/decimal"
)

type gameConfig struct {
	MinBetAmount   decimal.Decimal `env:"MIN_BET" envDefault:"10.00"`
	StartBalance   decimal.Decimal `env:"INITIAL_BALANCE" envDefault:"0"`
	DiceRollDelay  time.Duration   `env:"ROLL_DELAY" envDefault:"2s"`
	TokenStepDelay time.Duration   `env:"STEP_DELAY" envDefault:"400ms"`
	ResultDelay    time.Duration   `env:"SETTLE_DELAY" envDefault:"600ms"`
	IdleSessionTTL time.Duration   `env:"SESSION_TTL" envDefault:"30m"`
	Workers        int             `env:"LEDGER_WORKERS" envDefault:"64"`
	Window         int             `env:"STATS_WINDOW" envDefault:"500"`
	Seed           int64           `env:"DICE_SEED" envDefault:"0"`
}

func NewGameConfig() (config.GameConfig, error) {
	var cfg gameConfig
	if err := parse(&cfg); err != nil {
		return nil, err
	}

	if !cfg.MinBetAmount.IsPositive() {
		return nil, fmt.Errorf("min bet must be positive, got %s", cfg.MinBetAmount)
	}
	if cfg.StartBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance must not be negative, got %s", cfg.StartBalance)
	}
	if cfg.DiceRollDelay < 0 || cfg.TokenStepDelay < 0 || cfg.ResultDelay < 0 {
		return nil, fmt.Errorf("animation delays must not be negative")
	}
	if cfg.IdleSessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.IdleSessionTTL)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("ledger workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("stats window must be positive, got %d", cfg.Window)
	}

	return &cfg, nil
}

func (cfg *gameConfig) MinBet() decimal.Decimal {
	return cfg.MinBetAmount
}

func (cfg *gameConfig) InitialBalance() decimal.Decimal {
	return cfg.StartBalance
}

func (cfg *gameConfig) RollDelay() time.Duration {
	return cfg.DiceRollDelay
}

func (cfg *gameConfig) StepDelay() time.Duration {
	return cfg.TokenStepDelay
}

func (cfg *gameConfig) SettleDelay() time.Duration {
	return cfg.ResultDelay
}

func (cfg *gameConfig) SessionTTL() time.Duration {
	return cfg.IdleSessionTTL
}

func (cfg *gameConfig) LedgerWorkers() int {
	return cfg.Workers
}

func (cfg *gameConfig) StatsWindow() int {
	return cfg.Window
}

func (cfg *gameConfig) DiceSeed() int64 {
	return cfg.Seed
}
