package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameState - накопленная статистика раундов
type GameState struct {
	TotalRounds int64           // Сколько всего раундов сыграно
	TotalBet    decimal.Decimal // Сумма всех ставок
	TotalPayout decimal.Decimal // Сумма всех начислений (отрицательные при проигрыше)
	Wins        int64
	Losses      int64

	CurrentRTP decimal.Decimal // TotalPayout/TotalBet*100

	RoundWindow []RoundResult   // Окно последних раундов
	WindowBet   decimal.Decimal // Сумма ставок в окне
	WindowPay   decimal.Decimal // Сумма начислений в окне
	WindowRTP   decimal.Decimal // RTP в окне последних раундов
	WindowSize  int             // Размер окна

	UpdatedAt time.Time
}

// RoundResult - раунд в окне
type RoundResult struct {
	Bet    decimal.Decimal
	Payout decimal.Decimal
}
