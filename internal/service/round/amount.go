package round

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MaxAmountLen Максимальная длина строки суммы ставки
	MaxAmountLen = 32
	// maxAmountExp Предел порядка суммы. Дальше округление до центов становится дорогим
	maxAmountExp = 16
)

// MaxBet Максимальная ставка, с запасом укладывается в NUMERIC(20,2) журнала
var MaxBet = decimal.RequireFromString("1000000000.00")

// ValidateAmount - проверка формы суммы: не больше двух знаков после запятой и не больше MaxBet.
// Порядок проверяется до любой арифметики
func ValidateAmount(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp < -maxAmountExp || exp > maxAmountExp {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(MaxBet) {
		return fmt.Errorf("%w: maximum bet amount is $%s", ErrBetTooLarge, MaxBet.StringFixed(2))
	}
	return nil
}
