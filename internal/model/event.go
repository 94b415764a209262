package model

import "time"

// EventKind - тип уведомления для звука и анимации
type EventKind string

const (
	EventDiceRolled    EventKind = "dice_rolled"
	EventStepAdvanced  EventKind = "step_advanced"
	EventRoundResolved EventKind = "round_resolved"
)

// RoundResult - итог раунда для уведомления round_resolved
type RoundResult string

const (
	ResultWin  RoundResult = "win"
	ResultLose RoundResult = "lose"
)

// Event - уведомление движка раунда.
// Seq растет монотонно в пределах сессии, доставка не упорядочена
type Event struct {
	SessionID string
	Seq       uint64
	Kind      EventKind
	Result    RoundResult
	View      RoundView
	At        time.Time
}
