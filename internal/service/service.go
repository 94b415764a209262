package service

import (
	"context"

	"snakes_backend/internal/model"
)

type GameService interface {
	// Agree - согласие с условиями открывает игровую сессию
	Agree(ctx context.Context, accepted bool) (*model.AgreementData, error)
	// Authorize - проверяет токен согласия и возвращает ID активной сессии
	Authorize(tokenStr string) (sessionID string, err error)
	EndSession(ctx context.Context, sessionID string) error

	PlaceBet(ctx context.Context, sessionID string, req model.PlaceBet) (model.RoundView, error)
	Roll(ctx context.Context, sessionID string) (model.RoundView, error)
	NewRound(ctx context.Context, sessionID string) (model.RoundView, error)
	State(ctx context.Context, sessionID string) (model.RoundView, error)
	History(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error)
	Subscribe(sessionID string) (<-chan model.Event, func(), error)

	Board() model.BoardLayout
	Stats() model.Stats

	// RunJanitor - закрывает простаивающие сессии до отмены ctx
	RunJanitor(ctx context.Context)
	// Shutdown - закрывает все сессии и дожидается записи журнала
	Shutdown(ctx context.Context) error
}
