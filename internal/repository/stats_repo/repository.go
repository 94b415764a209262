package stats_repo

import (
	"sync"
	"time"

	"snakes_backend/internal/model"
	repoModel "snakes_backend/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

// DefaultWindowSize Размер окна по умолчанию
const DefaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// StatsRepo - статистика всех сессий процесса
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.GameState
	now   func() time.Time
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.GameState{
			RoundWindow: make([]repoModel.RoundResult, 0, windowSize),
			WindowSize:  windowSize,
		},
		now: time.Now,
	}
}

// Stats - снимок статистики
func (r *StatsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.Stats{
		TotalRounds: r.state.TotalRounds,
		TotalBet:    r.state.TotalBet,
		TotalPayout: r.state.TotalPayout,
		Wins:        r.state.Wins,
		Losses:      r.state.Losses,
		CurrentRTP:  r.state.CurrentRTP,
		WindowRTP:   r.state.WindowRTP,
		WindowSize:  len(r.state.RoundWindow),
		UpdatedAt:   r.state.UpdatedAt,
	}
}

// UpdateState Обновление статистики после раунда.
// payout - начисленная прибыль раунда
func (r *StatsRepo) UpdateState(bet, payout decimal.Decimal, win bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	if win {
		r.state.Wins++
	} else {
		r.state.Losses++
	}
	r.state.TotalBet = r.state.TotalBet.Add(bet)
	r.state.TotalPayout = r.state.TotalPayout.Add(payout)
	r.state.CurrentRTP = rtp(r.state.TotalPayout, r.state.TotalBet)

	// Добавляем раунд в окно
	r.state.RoundWindow = append(r.state.RoundWindow, repoModel.RoundResult{Bet: bet, Payout: payout})
	r.state.WindowBet = r.state.WindowBet.Add(bet)
	r.state.WindowPay = r.state.WindowPay.Add(payout)

	// Поддерживаем размер окна
	if len(r.state.RoundWindow) > r.state.WindowSize {
		oldest := r.state.RoundWindow[0]
		r.state.RoundWindow = r.state.RoundWindow[1:]
		r.state.WindowBet = r.state.WindowBet.Sub(oldest.Bet)
		r.state.WindowPay = r.state.WindowPay.Sub(oldest.Payout)
	}

	r.state.WindowRTP = rtp(r.state.WindowPay, r.state.WindowBet)
	r.state.UpdatedAt = r.now()
}

func rtp(payout, bet decimal.Decimal) decimal.Decimal {
	if !bet.IsPositive() {
		return decimal.Zero
	}
	return payout.Div(bet).Mul(hundred).Round(2)
}
