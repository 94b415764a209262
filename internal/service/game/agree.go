package game

import (
	"context"
	"errors"
	"fmt"

	"snakes_backend/internal/metrics"
	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"
	"snakes_backend/internal/service/round"
	"snakes_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Agree - открывает сессию после принятия условий.
// Без согласия игра недоступна: ErrConsentDeclined
func (s *serv) Agree(ctx context.Context, accepted bool) (*model.AgreementData, error) {
	if !accepted {
		return nil, ErrConsentDeclined
	}

	now := s.now()
	sessionID := uuid.NewString()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.sessionRepo.CreateSession(txCtx, &model.Session{
			ID:          sessionID,
			AgreedAt:    now,
			TotalBet:    decimal.Zero,
			TotalProfit: decimal.Zero,
			LastActive:  now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	accessToken, err := token.GenerateConsentToken(sessionID, s.jwtCfg.AccessTokenSecretKey(), s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate consent token: %w", err)
	}

	engine := round.NewEngine(round.Config{
		MinBet:         s.gameCfg.MinBet(),
		InitialBalance: s.gameCfg.InitialBalance(),
		RollDelay:      s.gameCfg.RollDelay(),
		StepDelay:      s.gameCfg.StepDelay(),
		SettleDelay:    s.gameCfg.SettleDelay(),
	}, round.Deps{
		SessionID:  sessionID,
		Board:      s.board,
		Roller:     s.roller,
		Scheduler:  s.sched,
		Notifier:   s.notifier,
		OnResolved: s.record,
		Logger:     s.log,
	})

	sess := &session{id: sessionID, engine: engine}
	sess.touch(now)

	s.mtx.Lock()
	s.sessions[sessionID] = sess
	s.mtx.Unlock()

	metrics.SessionOpened()
	s.log.Info("session opened", zap.String("session_id", sessionID))

	return &model.AgreementData{
		SessionID:   sessionID,
		AccessToken: accessToken,
	}, nil
}

// Authorize - ID сессии из токена согласия. Сессия должна быть открыта
func (s *serv) Authorize(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrUnauthorized
	}
	claims, err := token.VerifyToken(tokenStr, s.jwtCfg.AccessTokenSecretKey())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if _, err := s.lookup(claims.Subject); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// EndSession - закрывает сессию: движок останавливается, подписки закрываются
func (s *serv) EndSession(ctx context.Context, sessionID string) error {
	s.mtx.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mtx.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.closeSession(ctx, sess, "ended")
	return nil
}

func (s *serv) closeSession(ctx context.Context, sess *session, reason string) {
	sess.engine.Close()
	s.notifier.CloseSession(sess.id)
	metrics.SessionClosed()

	err := s.sessionRepo.CloseSession(ctx, sess.id, s.now())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.log.Error("close session in ledger", zap.String("session_id", sess.id), zap.Error(err))
	}
	s.log.Info("session closed", zap.String("session_id", sess.id), zap.String("reason", reason))
}
