package game

import "time"

type BetRequest struct {
	Amount string `json:"amount"` // Десятичная строка, не больше двух знаков после точки
}

type RoundViewResponse struct {
	Round      int64  `json:"round"`      // Номер раунда в сессии
	State      string `json:"state"`      // betting | ready | rolling | result
	BetAmount  string `json:"bet_amount"` // Ставка раунда
	StepCount  int    `json:"step_count"` // Пройдено шагов по пути
	Position   int    `json:"position"`   // Клетка фишки 0-15
	Dice1      int    `json:"dice1"`
	Dice2      int    `json:"dice2"`
	Multiplier string `json:"multiplier"` // Например "2.50x"
	Profit     string `json:"profit"`     // Отрицательная при проигрыше
	IsWinning  bool   `json:"is_winning"`
	Balance    string `json:"balance"`
}

type EventResponse struct {
	Seq    uint64            `json:"seq"`              // Порядковый номер события в сессии
	Kind   string            `json:"kind"`             // dice_rolled | step_advanced | round_resolved
	Result string            `json:"result,omitempty"` // win | lose, только для round_resolved
	Round  RoundViewResponse `json:"round"`
	At     time.Time         `json:"at"`
}

type RoundRecordResponse struct {
	Round        int64     `json:"round"`
	Bet          string    `json:"bet"`
	Dice1        int       `json:"dice1"`
	Dice2        int       `json:"dice2"`
	StepCount    int       `json:"step_count"`
	LandingCell  int       `json:"landing_cell"`
	Multiplier   string    `json:"multiplier"`
	Profit       string    `json:"profit"`
	IsWinning    bool      `json:"is_winning"`
	BalanceAfter string    `json:"balance_after"`
	ResolvedAt   time.Time `json:"resolved_at"`
}

type HistoryResponse struct {
	Rounds []RoundRecordResponse `json:"rounds"`
}

type CellResponse struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`            // start | multiplier | loss | dice
	Label  string `json:"label"`           // Подпись клетки: "Start", "4.00x", "lose", "dice1"
	Value  string `json:"value,omitempty"` // Множитель, только для multiplier
	Slot   int    `json:"slot,omitempty"`  // Номер кубика, только для dice
	OnPath bool   `json:"on_path"`
}

type BoardResponse struct {
	Name  string         `json:"name"`
	Cells []CellResponse `json:"cells"`
	Path  []int          `json:"path"`
}

type StatsResponse struct {
	TotalRounds int64     `json:"total_rounds"`
	TotalBet    string    `json:"total_bet"`
	TotalPayout string    `json:"total_payout"`
	Wins        int64     `json:"wins"`
	Losses      int64     `json:"losses"`
	CurrentRTP  string    `json:"current_rtp"`
	WindowRTP   string    `json:"window_rtp"`
	WindowSize  int       `json:"window_size"`
	UpdatedAt   time.Time `json:"updated_at"`
}
