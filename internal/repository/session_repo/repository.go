package session_repo

import (
	"context"
	"errors"
	"time"

	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "game_sessions"
	colID          = "id"
	colAgreedAt    = "agreed_at"
	colClosedAt    = "closed_at"
	colRounds      = "rounds"
	colTotalBet    = "total_bet"
	colTotalProfit = "total_profit"
	colLastActive  = "last_active"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - создает строку сессии после согласия с условиями
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := psql.Insert(table).
		Columns(colID, colAgreedAt, colRounds, colTotalBet, colTotalProfit, colLastActive).
		Values(session.ID, session.AgreedAt, session.Rounds, session.TotalBet, session.TotalProfit, session.LastActive)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetSession - возвращает сессию с агрегатами по ID
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := psql.Select(colID, colAgreedAt, colClosedAt, colRounds, colTotalBet, colTotalProfit, colLastActive).
		From(table).
		Where(sq.Eq{colID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&s.ID, &s.AgreedAt, &s.ClosedAt, &s.Rounds, &s.TotalBet, &s.TotalProfit, &s.LastActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

// AddRound - увеличивает счетчик раундов и суммы ставок и прибыли сессии
func (r *repo) AddRound(ctx context.Context, rec model.RoundRecord) error {
	query := psql.Update(table).
		Set(colRounds, sq.Expr(colRounds+" + 1")).
		Set(colTotalBet, sq.Expr(colTotalBet+" + ?", rec.Bet)).
		Set(colTotalProfit, sq.Expr(colTotalProfit+" + ?", rec.Profit)).
		Set(colLastActive, rec.ResolvedAt).
		Where(sq.Eq{colID: rec.SessionID})

	return r.exec(ctx, query)
}

// CloseSession - отмечает время закрытия сессии
func (r *repo) CloseSession(ctx context.Context, sessionID string, at time.Time) error {
	query := psql.Update(table).
		Set(colClosedAt, at).
		Where(sq.Eq{colID: sessionID})

	return r.exec(ctx, query)
}

func (r *repo) exec(ctx context.Context, query sq.UpdateBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
