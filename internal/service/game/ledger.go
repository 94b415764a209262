package game

import (
	"context"

	"snakes_backend/internal/metrics"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service/round"

	"go.uber.org/zap"
)

// record - обработчик завершенного раунда: статистика, метрики и запись в журнал.
// Запись выполняется в пуле, чтобы таймеры движка не ждали базу
func (s *serv) record(rec model.RoundRecord) {
	result := round.ResultOf(model.Payout{
		Multiplier: rec.Multiplier,
		IsWinning:  rec.IsWinning,
		Profit:     rec.Profit,
	})
	s.statsRepo.UpdateState(rec.Bet, rec.Profit, result == model.ResultWin)
	metrics.ObserveRound(rec, result)

	if !s.trackLedger() {
		metrics.LedgerFailed()
		s.log.Warn("service is shut down, round is not written to ledger",
			zap.String("session_id", rec.SessionID),
			zap.Int64("round", rec.Round),
		)
		return
	}

	err := s.pool.Submit(func() {
		defer s.wg.Done()
		s.persist(rec)
	})
	if err != nil {
		defer s.wg.Done()
		s.log.Warn("ledger pool rejected round, writing inline",
			zap.String("session_id", rec.SessionID),
			zap.Int64("round", rec.Round),
			zap.Error(err),
		)
		s.persist(rec)
	}
}

// trackLedger - учитывает запись в wg, пока сервис не закрыт.
// wg.Add выполняется только под мьютексом и только до выставления closed
func (s *serv) trackLedger() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// persist - раунд и агрегаты сессии пишутся одной транзакцией
func (s *serv) persist(rec model.RoundRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
	defer cancel()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roundRepo.SaveRound(txCtx, rec); err != nil {
			return err
		}
		return s.sessionRepo.AddRound(txCtx, rec)
	})
	if err != nil {
		metrics.LedgerFailed()
		s.log.Error("save round",
			zap.String("session_id", rec.SessionID),
			zap.Int64("round", rec.Round),
			zap.Error(err),
		)
	}
}
