package repository

import (
	"context"
	"errors"
	"time"

	"snakes_backend/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNotFound - запись не найдена
var ErrNotFound = errors.New("not found")

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	// AddRound - обновляет агрегаты сессии по завершенному раунду
	AddRound(ctx context.Context, rec model.RoundRecord) error
	CloseSession(ctx context.Context, sessionID string, at time.Time) error
}

type RoundRepository interface {
	SaveRound(ctx context.Context, rec model.RoundRecord) error
	// ListRounds - раунды сессии, новые первыми
	ListRounds(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error)
}

type StatsRepository interface {
	UpdateState(bet, payout decimal.Decimal, win bool)
	Stats() model.Stats
}
