// Package memory_repo - журнал сессий и раундов в памяти процесса.
// Используется, когда PG_DSN не задан
package memory_repo

import (
	"context"
	"sync"
	"time"

	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"
)

type sessionRepo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepo{
		sessions: make(map[string]model.Session),
	}
}

func (r *sessionRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *sessionRepo) AddRound(_ context.Context, rec model.RoundRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[rec.SessionID]
	if !ok {
		return repository.ErrNotFound
	}
	s.Rounds++
	s.TotalBet = s.TotalBet.Add(rec.Bet)
	s.TotalProfit = s.TotalProfit.Add(rec.Profit)
	s.LastActive = rec.ResolvedAt
	r.sessions[rec.SessionID] = s
	return nil
}

func (r *sessionRepo) CloseSession(_ context.Context, sessionID string, at time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	s.ClosedAt = &at
	r.sessions[sessionID] = s
	return nil
}
