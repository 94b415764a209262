// Package notify раздает события движков раундов подписчикам сессии
// (WebSocket-клиентам). Publish никогда не блокирует движок: при
// переполнении буфера подписчика событие отбрасывается и учитывается в метриках.
package notify

import (
	"sync"

	"snakes_backend/internal/metrics"
	"snakes_backend/internal/model"

	"go.uber.org/zap"
)

// DefaultBuffer Размер буфера подписчика по умолчанию
const DefaultBuffer = 64

type subscriber struct {
	ch     chan model.Event
	closed bool
}

// Dispatcher - рассылка событий по подпискам сессий
type Dispatcher struct {
	mtx    sync.RWMutex
	subs   map[string]map[uint64]*subscriber
	nextID uint64
	buffer int
	log    *zap.Logger
}

func NewDispatcher(buffer int, log *zap.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		subs:   make(map[string]map[uint64]*subscriber),
		buffer: buffer,
		log:    log,
	}
}

// Publish - доставляет событие всем подписчикам его сессии.
// Порядок событий для одного подписчика сохраняется
func (d *Dispatcher) Publish(ev model.Event) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()

	for id, sub := range d.subs[ev.SessionID] {
		select {
		case sub.ch <- ev:
		default:
			metrics.NotificationDropped()
			d.log.Warn("subscriber buffer full, event dropped",
				zap.String("session_id", ev.SessionID),
				zap.Uint64("subscriber", id),
				zap.Uint64("seq", ev.Seq),
				zap.String("kind", string(ev.Kind)),
			)
		}
	}
}

// Subscribe - подписка на события сессии.
// Возвращает канал событий и функцию отписки, которая закрывает канал
func (d *Dispatcher) Subscribe(sessionID string) (<-chan model.Event, func()) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.nextID++
	id := d.nextID
	sub := &subscriber{ch: make(chan model.Event, d.buffer)}

	if d.subs[sessionID] == nil {
		d.subs[sessionID] = make(map[uint64]*subscriber)
	}
	d.subs[sessionID][id] = sub

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			d.mtx.Lock()
			defer d.mtx.Unlock()
			d.removeLocked(sessionID, id)
		})
	}
}

// CloseSession - закрывает все подписки сессии
func (d *Dispatcher) CloseSession(sessionID string) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	for id := range d.subs[sessionID] {
		d.removeLocked(sessionID, id)
	}
}

// Subscribers - число подписчиков сессии
func (d *Dispatcher) Subscribers(sessionID string) int {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return len(d.subs[sessionID])
}

func (d *Dispatcher) removeLocked(sessionID string, id uint64) {
	subs := d.subs[sessionID]
	sub, ok := subs[id]
	if !ok {
		return
	}
	if !sub.closed {
		close(sub.ch)
		sub.closed = true
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(d.subs, sessionID)
	}
}
