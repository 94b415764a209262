// Package round реализует движок раунда: ставка, бросок кубиков, пошаговое
// продвижение фишки по пути и расчет выплаты.
//
// Переходы состояний:
//
//	Betting --PlaceBet--> Ready --Roll--> Rolling --(шаги, расчет)--> Result --NewRound--> Betting
//
// Все изменения раунда и баланса идут под одним мьютексом. Шаги продвижения
// планируются через Scheduler и несут токен последовательности: после
// NewRound или Close устаревшие шаги ничего не меняют.
package round

import (
	"sync"
	"time"

	"snakes_backend/internal/model"
	"snakes_backend/internal/service/board"
	"snakes_backend/pkg/dice"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MinBet Минимальная ставка по умолчанию
var MinBet = decimal.RequireFromString("10.00")

// Roller - источник бросков пары кубиков
type Roller interface {
	Roll() (int, int)
}

// Notifier - получатель уведомлений движка. Publish не должен блокироваться
type Notifier interface {
	Publish(ev model.Event)
}

// Config - параметры раунда
type Config struct {
	MinBet         decimal.Decimal
	InitialBalance decimal.Decimal
	// RollDelay Длительность анимации кубиков до первого шага
	RollDelay time.Duration
	// StepDelay Пауза между шагами фишки
	StepDelay time.Duration
	// SettleDelay Пауза после последнего шага перед расчетом
	SettleDelay time.Duration
}

// Deps - зависимости движка
type Deps struct {
	SessionID string
	Board     *board.Board
	Roller    Roller
	Scheduler Scheduler
	Notifier  Notifier
	// OnResolved вызывается вне блокировки после расчета каждого раунда
	OnResolved func(model.RoundRecord)
	Logger     *zap.Logger
}

type roundData struct {
	state      model.RoundState
	bet        decimal.Decimal
	stepCount  int
	position   int
	dice1      int
	dice2      int
	multiplier decimal.Decimal
	profit     decimal.Decimal
	isWinning  bool
}

// Engine - движок раунда одной сессии
type Engine struct {
	mtx sync.Mutex

	cfg        Config
	sessionID  string
	board      *board.Board
	roller     Roller
	sched      Scheduler
	notifier   Notifier
	onResolved func(model.RoundRecord)
	log        *zap.Logger

	round   roundData
	balance decimal.Decimal
	roundNo int64
	eventNo uint64

	// token Текущий токен последовательности шагов
	token  uint64
	cancel func()
	budget int
	moved  int
	closed bool
}

// NewEngine - создает движок в состоянии Betting
func NewEngine(cfg Config, deps Deps) *Engine {
	if cfg.MinBet.IsZero() {
		cfg.MinBet = MinBet
	}
	if deps.Board == nil {
		deps.Board = board.Default()
	}
	if deps.Roller == nil {
		r, err := dice.New(0)
		if err != nil {
			r, _ = dice.New(time.Now().UnixNano())
		}
		deps.Roller = r
	}
	if deps.Scheduler == nil {
		deps.Scheduler = TimerScheduler{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	e := &Engine{
		cfg:        cfg,
		sessionID:  deps.SessionID,
		board:      deps.Board,
		roller:     deps.Roller,
		sched:      deps.Scheduler,
		notifier:   deps.Notifier,
		onResolved: deps.OnResolved,
		log:        deps.Logger.With(zap.String("session_id", deps.SessionID)),
		balance:    cfg.InitialBalance,
	}
	e.round = e.freshRound(1, 2)
	return e
}

func (e *Engine) freshRound(dice1, dice2 int) roundData {
	return roundData{
		state:      model.StateBetting,
		bet:        decimal.Zero,
		stepCount:  0,
		position:   e.board.PathStart(),
		dice1:      dice1,
		dice2:      dice2,
		multiplier: one,
		profit:     decimal.Zero,
	}
}

// View - снимок раунда и баланса
func (e *Engine) View() model.RoundView {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.viewLocked()
}

// Balance - текущий баланс
func (e *Engine) Balance() decimal.Decimal {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.balance
}

// Board - поле, по которому ходит движок
func (e *Engine) Board() *board.Board {
	return e.board
}

// Close - останавливает движок и отменяет запланированные шаги.
// Повторный вызов безопасен
func (e *Engine) Close() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.invalidateLocked()
	e.log.Debug("round engine closed", zap.String("state", e.round.state.String()))
}

// invalidateLocked - делает все запланированные шаги устаревшими
func (e *Engine) invalidateLocked() {
	e.token++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) viewLocked() model.RoundView {
	return model.RoundView{
		Round:      e.roundNo,
		State:      e.round.state,
		BetAmount:  e.round.bet,
		StepCount:  e.round.stepCount,
		Position:   e.round.position,
		Dice1:      e.round.dice1,
		Dice2:      e.round.dice2,
		Multiplier: e.round.multiplier,
		Profit:     e.round.profit,
		IsWinning:  e.round.isWinning,
		Balance:    e.balance,
	}
}

func (e *Engine) publishLocked(kind model.EventKind, result model.RoundResult) {
	if e.notifier == nil {
		return
	}
	e.eventNo++
	e.notifier.Publish(model.Event{
		SessionID: e.sessionID,
		Seq:       e.eventNo,
		Kind:      kind,
		Result:    result,
		View:      e.viewLocked(),
		At:        time.Now(),
	})
}
