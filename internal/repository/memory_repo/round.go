package memory_repo

import (
	"context"
	"sync"

	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"
)

type roundRepo struct {
	mtx    sync.RWMutex
	rounds map[string][]model.RoundRecord
}

func NewRoundRepository() repository.RoundRepository {
	return &roundRepo{
		rounds: make(map[string][]model.RoundRecord),
	}
}

func (r *roundRepo) SaveRound(_ context.Context, rec model.RoundRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.rounds[rec.SessionID] = append(r.rounds[rec.SessionID], rec)
	return nil
}

// ListRounds - раунды сессии, новые первыми. limit <= 0 возвращает все
func (r *roundRepo) ListRounds(_ context.Context, sessionID string, limit int) ([]model.RoundRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stored := r.rounds[sessionID]
	n := len(stored)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]model.RoundRecord, 0, n)
	for i := len(stored) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
