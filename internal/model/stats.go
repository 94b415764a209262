package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats - агрегированная статистика раундов по всем сессиям
type Stats struct {
	TotalRounds int64
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal
	Wins        int64
	Losses      int64
	CurrentRTP  decimal.Decimal
	WindowRTP   decimal.Decimal
	WindowSize  int
	UpdatedAt   time.Time
}
