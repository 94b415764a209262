package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OutcomeKind - вид исхода клетки поля
type OutcomeKind int

const (
	OutcomeNeutralStart OutcomeKind = iota
	OutcomeMultiplier
	OutcomeLoss
	OutcomeDiceSlot
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNeutralStart:
		return "start"
	case OutcomeMultiplier:
		return "multiplier"
	case OutcomeLoss:
		return "loss"
	case OutcomeDiceSlot:
		return "dice"
	default:
		return "unknown"
	}
}

// Outcome - исход клетки. Value заполнен только для множителя, Slot только для клетки кубика
type Outcome struct {
	Kind  OutcomeKind
	Value decimal.Decimal
	Slot  int
}

func NeutralStart() Outcome {
	return Outcome{Kind: OutcomeNeutralStart}
}

func Multiplier(v decimal.Decimal) Outcome {
	return Outcome{Kind: OutcomeMultiplier, Value: v}
}

func Loss() Outcome {
	return Outcome{Kind: OutcomeLoss}
}

func DiceSlot(slot int) Outcome {
	return Outcome{Kind: OutcomeDiceSlot, Slot: slot}
}

// Label - подпись клетки как на поле: "Start", "4.00x", "lose", "dice1"
func (o Outcome) Label() string {
	switch o.Kind {
	case OutcomeNeutralStart:
		return "Start"
	case OutcomeMultiplier:
		return o.Value.StringFixed(2) + "x"
	case OutcomeLoss:
		return "lose"
	case OutcomeDiceSlot:
		return fmt.Sprintf("dice%d", o.Slot)
	default:
		return ""
	}
}

// BoardLayout - описание поля: 16 клеток и путь фишки
type BoardLayout struct {
	Name  string
	Cells []Outcome
	Path  []int
}
