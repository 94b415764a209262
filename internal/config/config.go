package config

import (
	"time"

	"snakes_backend/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	MinBet() decimal.Decimal
	InitialBalance() decimal.Decimal
	RollDelay() time.Duration
	StepDelay() time.Duration
	SettleDelay() time.Duration
	SessionTTL() time.Duration
	LedgerWorkers() int
	StatsWindow() int
	DiceSeed() int64
}

type BoardConfig interface {
	Layout() model.BoardLayout
}

type LogConfig interface {
	Level() string
	Dir() string
	File() bool
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}
