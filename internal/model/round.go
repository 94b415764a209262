package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundState - состояние раунда
type RoundState int

const (
	StateBetting RoundState = iota
	StateReady
	StateRolling
	StateResult
)

func (s RoundState) String() string {
	switch s {
	case StateBetting:
		return "betting"
	case StateReady:
		return "ready"
	case StateRolling:
		return "rolling"
	case StateResult:
		return "result"
	default:
		return "unknown"
	}
}

// PlaceBet - запрос на ставку
type PlaceBet struct {
	Amount decimal.Decimal
}

// RoundView - снимок раунда и баланса для отображения
type RoundView struct {
	Round      int64
	State      RoundState
	BetAmount  decimal.Decimal
	StepCount  int
	Position   int
	Dice1      int
	Dice2      int
	Multiplier decimal.Decimal
	Profit     decimal.Decimal
	IsWinning  bool
	Balance    decimal.Decimal
}

// Payout - результат расчета выплаты по клетке приземления
type Payout struct {
	Multiplier decimal.Decimal
	IsWinning  bool
	Profit     decimal.Decimal
}

// RoundRecord - завершенный раунд для журнала
type RoundRecord struct {
	SessionID    string
	Round        int64
	Bet          decimal.Decimal
	Dice1        int
	Dice2        int
	StepCount    int
	LandingCell  int
	Multiplier   decimal.Decimal
	Profit       decimal.Decimal
	IsWinning    bool
	BalanceAfter decimal.Decimal
	ResolvedAt   time.Time
}
