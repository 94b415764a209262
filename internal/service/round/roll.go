package round

import (
	"fmt"
	"time"

	"snakes_backend/internal/model"

	"go.uber.org/zap"
)

// Roll - бросает кубики и запускает продвижение фишки.
// Кубики определяются сразу, шаги и расчет выполняются позже по таймеру.
// Вне состояния Ready (в том числе повторный бросок во время Rolling) возвращает ErrInvalidState
func (e *Engine) Roll() (model.RoundView, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return model.RoundView{}, ErrEngineClosed
	}
	if e.round.state != model.StateReady {
		return model.RoundView{}, fmt.Errorf("%w: roll in %s", ErrInvalidState, e.round.state)
	}

	dice1, dice2 := e.roller.Roll()
	e.round.dice1 = dice1
	e.round.dice2 = dice2
	e.round.state = model.StateRolling

	// Сумма кубиков - бюджет шагов
	e.budget = dice1 + dice2
	e.moved = 0

	e.invalidateLocked()
	token := e.token

	e.log.Debug("dice rolled",
		zap.Int64("round", e.roundNo),
		zap.Int("dice1", dice1),
		zap.Int("dice2", dice2),
	)
	e.publishLocked(model.EventDiceRolled, "")

	e.cancel = e.sched.Schedule(e.cfg.RollDelay+e.cfg.StepDelay, func() {
		e.step(token)
	})

	return e.viewLocked(), nil
}

// step - один тик продвижения. Фишка не уходит дальше конца пути
func (e *Engine) step(token uint64) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if token != e.token || e.round.state != model.StateRolling {
		return
	}

	pathLen := e.board.PathLength()
	if e.round.stepCount < pathLen && e.moved < e.budget {
		cell, err := e.board.PathStepTo(e.round.stepCount + 1)
		if err != nil {
			e.log.Error("path step lookup failed", zap.Int("step", e.round.stepCount+1), zap.Error(err))
			e.moved = e.budget
		} else {
			e.round.stepCount++
			e.round.position = cell
			e.moved++
			e.publishLocked(model.EventStepAdvanced, "")
		}
	}

	// Бюджет израсходован или путь закончился
	if e.moved >= e.budget || e.round.stepCount >= pathLen {
		e.cancel = e.sched.Schedule(e.cfg.SettleDelay, func() {
			e.resolve(token)
		})
		return
	}

	e.cancel = e.sched.Schedule(e.cfg.StepDelay, func() {
		e.step(token)
	})
}

// resolve - расчет выплаты по клетке приземления и начисление прибыли
func (e *Engine) resolve(token uint64) {
	e.mtx.Lock()

	if token != e.token || e.round.state != model.StateRolling {
		e.mtx.Unlock()
		return
	}

	landing := e.round.position
	outcome, err := e.board.OutcomeOf(landing)
	if err != nil {
		e.log.Error("landing cell lookup failed", zap.Int("cell", landing), zap.Error(err))
		outcome = model.NeutralStart()
	}

	payout := Resolve(e.round.bet, outcome)
	e.round.multiplier = payout.Multiplier
	e.round.isWinning = payout.IsWinning
	e.round.profit = payout.Profit
	e.round.state = model.StateResult
	e.cancel = nil

	// Начисление прибыли (отрицательной при проигрыше)
	e.balance = e.balance.Add(payout.Profit)

	result := ResultOf(payout)
	e.log.Info("round resolved",
		zap.Int64("round", e.roundNo),
		zap.Int("cell", landing),
		zap.String("outcome", outcome.Label()),
		zap.String("bet", e.round.bet.StringFixed(2)),
		zap.String("profit", payout.Profit.StringFixed(2)),
		zap.String("balance", e.balance.StringFixed(2)),
		zap.String("result", string(result)),
	)
	e.publishLocked(model.EventRoundResolved, result)

	record := model.RoundRecord{
		SessionID:    e.sessionID,
		Round:        e.roundNo,
		Bet:          e.round.bet,
		Dice1:        e.round.dice1,
		Dice2:        e.round.dice2,
		StepCount:    e.round.stepCount,
		LandingCell:  landing,
		Multiplier:   payout.Multiplier,
		Profit:       payout.Profit,
		IsWinning:    payout.IsWinning,
		BalanceAfter: e.balance,
		ResolvedAt:   time.Now(),
	}
	onResolved := e.onResolved
	e.mtx.Unlock()

	if onResolved != nil {
		onResolved(record)
	}
}
