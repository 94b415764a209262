package memory_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"snakes_backend/internal/model"
	"snakes_backend/internal/repository"

	"github.com/shopspring/decimal"
)

// TestListRoundsNewestFirst ensures history comes back newest first and honors the limit.
func TestListRoundsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRoundRepository()
	for i := int64(1); i <= 5; i++ {
		if err := repo.SaveRound(ctx, model.RoundRecord{SessionID: "s1", Round: i}); err != nil {
			t.Fatalf("SaveRound returned error: %v", err)
		}
	}
	if err := repo.SaveRound(ctx, model.RoundRecord{SessionID: "s2", Round: 1}); err != nil {
		t.Fatalf("SaveRound returned error: %v", err)
	}

	all, err := repo.ListRounds(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("ListRounds returned error: %v", err)
	}
	if len(all) != 5 || all[0].Round != 5 || all[4].Round != 1 {
		t.Fatalf("ListRounds = %+v, want rounds 5..1", all)
	}

	last2, _ := repo.ListRounds(ctx, "s1", 2)
	if len(last2) != 2 || last2[0].Round != 5 || last2[1].Round != 4 {
		t.Fatalf("ListRounds(limit 2) = %+v, want rounds 5, 4", last2)
	}

	none, _ := repo.ListRounds(ctx, "unknown", 10)
	if len(none) != 0 {
		t.Fatalf("ListRounds(unknown) = %+v, want empty", none)
	}
}

// TestSessionAggregates ensures AddRound accumulates bets and profit.
func TestSessionAggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Now()

	if err := repo.CreateSession(ctx, &model.Session{ID: "s1", AgreedAt: now, LastActive: now}); err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	recs := []model.RoundRecord{
		{SessionID: "s1", Bet: decimal.NewFromInt(10), Profit: decimal.NewFromInt(30), ResolvedAt: now},
		{SessionID: "s1", Bet: decimal.NewFromInt(20), Profit: decimal.NewFromInt(-20), ResolvedAt: now.Add(time.Second)},
	}
	tx := NewTxManager()
	for _, rec := range recs {
		err := tx.Do(ctx, func(ctx context.Context) error {
			return repo.AddRound(ctx, rec)
		})
		if err != nil {
			t.Fatalf("AddRound returned error: %v", err)
		}
	}

	s, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession returned error: %v", err)
	}
	if s.Rounds != 2 || !s.TotalBet.Equal(decimal.NewFromInt(30)) || !s.TotalProfit.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("session = %+v, want 2 rounds, bet 30, profit 10", s)
	}
	if !s.LastActive.Equal(now.Add(time.Second)) {
		t.Fatalf("LastActive = %s, want %s", s.LastActive, now.Add(time.Second))
	}

	if err := repo.CloseSession(ctx, "s1", now); err != nil {
		t.Fatalf("CloseSession returned error: %v", err)
	}
	s, _ = repo.GetSession(ctx, "s1")
	if s.ClosedAt == nil {
		t.Fatal("ClosedAt is nil after CloseSession")
	}
}

// TestUnknownSession ensures missing sessions report ErrNotFound.
func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	if _, err := repo.GetSession(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetSession error = %v, want ErrNotFound", err)
	}
	if err := repo.AddRound(ctx, model.RoundRecord{SessionID: "nope"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("AddRound error = %v, want ErrNotFound", err)
	}
	if err := repo.CloseSession(ctx, "nope", time.Now()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("CloseSession error = %v, want ErrNotFound", err)
	}
}
