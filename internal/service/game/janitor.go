package game

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const minJanitorInterval = time.Second

// RunJanitor - периодически закрывает сессии, простаивающие дольше SESSION_TTL.
// Сессии с открытым потоком событий не закрываются
func (s *serv) RunJanitor(ctx context.Context) {
	interval := s.gameCfg.SessionTTL() / 2
	if interval < minJanitorInterval {
		interval = minJanitorInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.reapIdle(ctx, s.now()); n > 0 {
				s.log.Info("idle sessions reaped", zap.Int("count", n))
			}
		}
	}
}

func (s *serv) reapIdle(ctx context.Context, now time.Time) int {
	deadline := now.Add(-s.gameCfg.SessionTTL())

	s.mtx.Lock()
	idle := make([]*session, 0)
	for id, sess := range s.sessions {
		if sess.idleSince().After(deadline) || s.notifier.Subscribers(id) > 0 {
			continue
		}
		delete(s.sessions, id)
		idle = append(idle, sess)
	}
	s.mtx.Unlock()

	for _, sess := range idle {
		s.closeSession(ctx, sess, "idle")
	}
	return len(idle)
}

// Shutdown - закрывает все сессии и ждет завершения записи журнала.
// Раунды, завершившиеся позже, в журнал не попадают
func (s *serv) Shutdown(ctx context.Context) error {
	s.mtx.Lock()
	all := make([]*session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		delete(s.sessions, id)
		all = append(all, sess)
	}
	s.mtx.Unlock()

	for _, sess := range all {
		s.closeSession(ctx, sess, "shutdown")
	}

	s.mtx.Lock()
	s.closed = true
	s.mtx.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	defer s.pool.Release()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
