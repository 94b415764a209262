// Package metrics - счетчики Prometheus игрового сервиса.
// Имена метрик: snakes_<name>
package metrics

import (
	"snakes_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelResult = "result"
	labelAction = "action"
	labelReason = "reason"
)

var (
	roundsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snakes_rounds_resolved_total",
		Help: "Завершенные раунды по итогу",
	}, []string{labelResult})

	betAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snakes_bet_amount_total",
		Help: "Сумма принятых ставок",
	})
	creditAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snakes_credit_amount_total",
		Help: "Сумма положительных начислений прибыли",
	})
	lossChargeAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snakes_loss_charge_amount_total",
		Help: "Сумма списаний при проигрыше",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snakes_active_sessions",
		Help: "Открытые игровые сессии",
	})

	rejectedActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snakes_rejected_actions_total",
		Help: "Отклоненные действия игрока",
	}, []string{labelAction, labelReason})

	droppedNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snakes_dropped_notifications_total",
		Help: "Уведомления, не доставленные подписчику из-за переполнения буфера",
	})

	ledgerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snakes_ledger_failures_total",
		Help: "Ошибки записи раундов в журнал",
	})
)

// ObserveRound - учет завершенного раунда
func ObserveRound(rec model.RoundRecord, result model.RoundResult) {
	roundsResolved.WithLabelValues(string(result)).Inc()
	betAmount.Add(rec.Bet.InexactFloat64())
	switch {
	case rec.Profit.IsPositive():
		creditAmount.Add(rec.Profit.InexactFloat64())
	case rec.Profit.IsNegative():
		lossChargeAmount.Add(rec.Profit.Neg().InexactFloat64())
	}
}

func SessionOpened() {
	activeSessions.Inc()
}

func SessionClosed() {
	activeSessions.Dec()
}

// Rejected - учет отклоненного действия (bet, roll, new_round)
func Rejected(action, reason string) {
	rejectedActions.WithLabelValues(action, reason).Inc()
}

func NotificationDropped() {
	droppedNotifications.Inc()
}

func LedgerFailed() {
	ledgerFailures.Inc()
}
