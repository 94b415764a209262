package round

import (
	"fmt"

	"snakes_backend/internal/model"

	"go.uber.org/zap"
)

// PlaceBet - принимает ставку и переводит раунд в Ready.
// При нулевом балансе ставка сама становится балансом, иначе списывается с него.
// При ошибке ни раунд, ни баланс не меняются
func (e *Engine) PlaceBet(req model.PlaceBet) (model.RoundView, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.closed {
		return model.RoundView{}, ErrEngineClosed
	}
	if e.round.state != model.StateBetting {
		return model.RoundView{}, fmt.Errorf("%w: place bet in %s", ErrInvalidState, e.round.state)
	}

	amount := req.Amount
	// Валидация ставки
	if err := ValidateAmount(amount); err != nil {
		return model.RoundView{}, err
	}
	if amount.LessThan(e.cfg.MinBet) {
		return model.RoundView{}, fmt.Errorf("%w: minimum bet amount is $%s", ErrBetTooSmall, e.cfg.MinBet.StringFixed(2))
	}
	if amount.GreaterThan(e.balance) && e.balance.IsPositive() {
		return model.RoundView{}, ErrInsufficientBalance
	}

	// Списание ставки или пополнение баланса первой ставкой
	if e.balance.IsZero() {
		e.balance = amount
	} else {
		e.balance = e.balance.Sub(amount)
	}

	e.roundNo++
	e.round.bet = amount
	e.round.state = model.StateReady

	e.log.Debug("bet placed",
		zap.Int64("round", e.roundNo),
		zap.String("bet", amount.StringFixed(2)),
		zap.String("balance", e.balance.StringFixed(2)),
	)

	return e.viewLocked(), nil
}
