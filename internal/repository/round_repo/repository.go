package round_repo

import (
	"context"

	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "rounds"
	colSessionID    = "session_id"
	colRoundNo      = "round_no"
	colBet          = "bet"
	colDice1        = "dice1"
	colDice2        = "dice2"
	colStepCount    = "step_count"
	colLandingCell  = "landing_cell"
	colMultiplier   = "multiplier"
	colProfit       = "profit"
	colIsWinning    = "is_winning"
	colBalanceAfter = "balance_after"
	colResolvedAt   = "resolved_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveRound - записывает завершенный раунд в журнал
func (r *repo) SaveRound(ctx context.Context, rec model.RoundRecord) error {
	query := psql.Insert(table).
		Columns(colSessionID, colRoundNo, colBet, colDice1, colDice2, colStepCount,
			colLandingCell, colMultiplier, colProfit, colIsWinning, colBalanceAfter, colResolvedAt).
		Values(rec.SessionID, rec.Round, rec.Bet, rec.Dice1, rec.Dice2, rec.StepCount,
			rec.LandingCell, rec.Multiplier, rec.Profit, rec.IsWinning, rec.BalanceAfter, rec.ResolvedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListRounds - последние раунды сессии, новые первыми.
// limit <= 0 возвращает все раунды
func (r *repo) ListRounds(ctx context.Context, sessionID string, limit int) ([]model.RoundRecord, error) {
	query := psql.Select(colSessionID, colRoundNo, colBet, colDice1, colDice2, colStepCount,
		colLandingCell, colMultiplier, colProfit, colIsWinning, colBalanceAfter, colResolvedAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colRoundNo + " DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.RoundRecord, 0)
	for rows.Next() {
		var rec model.RoundRecord
		err = rows.Scan(&rec.SessionID, &rec.Round, &rec.Bet, &rec.Dice1, &rec.Dice2, &rec.StepCount,
			&rec.LandingCell, &rec.Multiplier, &rec.Profit, &rec.IsWinning, &rec.BalanceAfter, &rec.ResolvedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
