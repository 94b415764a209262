package stats_repo

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestUpdateStateTotals ensures totals, counters and overall RTP follow each round.
func TestUpdateStateTotals(t *testing.T) {
	r := NewStatsRepository(10)

	r.UpdateState(dec("10"), dec("30"), true)
	r.UpdateState(dec("10"), dec("-10"), false)

	s := r.Stats()
	if s.TotalRounds != 2 || s.Wins != 1 || s.Losses != 1 {
		t.Fatalf("counters = %d/%d/%d, want 2/1/1", s.TotalRounds, s.Wins, s.Losses)
	}
	if !s.TotalBet.Equal(dec("20")) || !s.TotalPayout.Equal(dec("20")) {
		t.Fatalf("totals = %s/%s, want 20/20", s.TotalBet, s.TotalPayout)
	}
	if !s.CurrentRTP.Equal(dec("100")) {
		t.Fatalf("CurrentRTP = %s, want 100", s.CurrentRTP)
	}
	if s.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not set")
	}
}

// TestWindowSlides ensures the window RTP only covers the most recent rounds.
func TestWindowSlides(t *testing.T) {
	r := NewStatsRepository(2)

	r.UpdateState(dec("10"), dec("-10"), false)
	r.UpdateState(dec("10"), dec("15"), true)
	r.UpdateState(dec("10"), dec("5"), true)

	s := r.Stats()
	if s.WindowSize != 2 {
		t.Fatalf("WindowSize = %d, want 2", s.WindowSize)
	}
	if !s.WindowRTP.Equal(dec("100")) {
		t.Fatalf("WindowRTP = %s, want 100", s.WindowRTP)
	}
	if !s.CurrentRTP.Equal(dec("33.33")) {
		t.Fatalf("CurrentRTP = %s, want 33.33", s.CurrentRTP)
	}
}

// TestEmptyStats ensures a fresh repository reports zero RTP instead of dividing by zero.
func TestEmptyStats(t *testing.T) {
	s := NewStatsRepository(0).Stats()
	if s.TotalRounds != 0 || !s.CurrentRTP.IsZero() || !s.WindowRTP.IsZero() {
		t.Fatalf("Stats() = %+v, want zeros", s)
	}
}
