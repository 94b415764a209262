package game

import (
	"context"
	"errors"

	"snakes_backend/internal/metrics"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service/round"
)

const (
	actionBet      = "bet"
	actionRoll     = "roll"
	actionNewRound = "new_round"
)

func (s *serv) PlaceBet(_ context.Context, sessionID string, req model.PlaceBet) (model.RoundView, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return model.RoundView{}, err
	}
	view, err := sess.engine.PlaceBet(req)
	return view, s.rejected(actionBet, err)
}

func (s *serv) Roll(_ context.Context, sessionID string) (model.RoundView, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return model.RoundView{}, err
	}
	view, err := sess.engine.Roll()
	return view, s.rejected(actionRoll, err)
}

func (s *serv) NewRound(_ context.Context, sessionID string) (model.RoundView, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return model.RoundView{}, err
	}
	view, err := sess.engine.NewRound()
	return view, s.rejected(actionNewRound, err)
}

func (s *serv) State(_ context.Context, sessionID string) (model.RoundView, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return model.RoundView{}, err
	}
	return sess.engine.View(), nil
}

// History - завершенные раунды сессии, новые первыми
func (s *serv) History(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error) {
	if _, err := s.lookup(sessionID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.roundRepo.ListRounds(ctx, sessionID, limit)
}

// Subscribe - поток событий движка сессии.
// Сессия проверяется повторно после подписки: если ее успели закрыть, подписка снимается
func (s *serv) Subscribe(sessionID string) (<-chan model.Event, func(), error) {
	if _, err := s.lookup(sessionID); err != nil {
		return nil, nil, err
	}
	ch, unsubscribe := s.notifier.Subscribe(sessionID)
	if _, err := s.lookup(sessionID); err != nil {
		unsubscribe()
		return nil, nil, err
	}
	return ch, unsubscribe, nil
}

// rejected - учитывает отказ движка в метриках.
// Закрытый движок означает, что сессия уже завершена
func (s *serv) rejected(action string, err error) error {
	if err == nil {
		return nil
	}
	metrics.Rejected(action, rejectReason(err))
	if errors.Is(err, round.ErrEngineClosed) {
		return ErrSessionNotFound
	}
	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, round.ErrBetTooSmall):
		return "bet_too_small"
	case errors.Is(err, round.ErrBetTooLarge):
		return "bet_too_large"
	case errors.Is(err, round.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, round.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, round.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, round.ErrEngineClosed):
		return "closed"
	default:
		return "other"
	}
}
