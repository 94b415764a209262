package round

import (
	"fmt"

	"snakes_backend/internal/model"
)

// NewRound - сбрасывает раунд после расчета и возвращает к ставкам. Баланс не трогает
func (e *Engine) NewRound() (model.RoundView, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return model.RoundView{}, ErrEngineClosed
	}
	if e.round.state != model.StateResult {
		return model.RoundView{}, fmt.Errorf("%w: new round in %s", ErrInvalidState, e.round.state)
	}

	e.invalidateLocked()
	// Кубики остаются на поле до следующего броска
	e.round = e.freshRound(e.round.dice1, e.round.dice2)

	return e.viewLocked(), nil
}
