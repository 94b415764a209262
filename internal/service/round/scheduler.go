package round

import "time"

// Scheduler - планировщик отложенных шагов анимации.
// Возвращаемая функция отменяет задачу, если она еще не запущена
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// TimerScheduler - планировщик на time.AfterFunc
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() {
		t.Stop()
	}
}
