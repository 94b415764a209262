package round

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - общая ошибка проверки ставки, состояние раунда не меняется
	ErrValidation          = errors.New("invalid bet")
	ErrBetTooSmall         = fmt.Errorf("%w: bet is below the minimum", ErrValidation)
	ErrBetTooLarge         = fmt.Errorf("%w: bet is above the maximum", ErrValidation)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: bet must have at most two decimal places", ErrValidation)

	// ErrInvalidState - действие недопустимо в текущем состоянии раунда
	ErrInvalidState = errors.New("action is not allowed in the current round state")
	ErrEngineClosed = errors.New("round engine is closed")
)
