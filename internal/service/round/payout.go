package round

import (
	"snakes_backend/internal/model"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Resolve - расчет выплаты по исходу клетки приземления.
// Чистая функция: одинаковые ставка и исход всегда дают одинаковый результат
func Resolve(bet decimal.Decimal, outcome model.Outcome) model.Payout {
	var (
		multiplier decimal.Decimal
		isWinning  bool
	)

	switch outcome.Kind {
	case model.OutcomeLoss:
		multiplier = decimal.Zero
	case model.OutcomeMultiplier:
		multiplier = outcome.Value
		isWinning = outcome.Value.GreaterThan(one)
	default:
		// Start и клетки кубиков недостижимы при корректном пути
		multiplier = one
		isWinning = true
	}

	// Округление до центов, половина - от нуля
	profit := bet.Mul(multiplier).Sub(bet).Round(2)

	return model.Payout{
		Multiplier: multiplier,
		IsWinning:  isWinning,
		Profit:     profit,
	}
}

// ResultOf - итог для уведомления: победа только при положительной прибыли
func ResultOf(p model.Payout) model.RoundResult {
	if p.IsWinning && p.Profit.IsPositive() {
		return model.ResultWin
	}
	return model.ResultLose
}
