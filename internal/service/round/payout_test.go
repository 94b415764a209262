package round

import (
	"testing"

	"snakes_backend/internal/model"
)

// TestResolve covers every outcome kind and rounds half cents away from zero.
func TestResolve(t *testing.T) {
	tcs := []struct {
		name       string
		bet        string
		outcome    model.Outcome
		multiplier string
		profit     string
		isWinning  bool
		result     model.RoundResult
	}{
		{"multiplier", "20", model.Multiplier(dec("2.50")), "2.50", "30.00", true, model.ResultWin},
		{"loss", "20", model.Loss(), "0", "-20.00", false, model.ResultLose},
		{"even multiplier", "20", model.Multiplier(dec("1.00")), "1", "0", false, model.ResultLose},
		{"start", "20", model.NeutralStart(), "1", "0", true, model.ResultLose},
		{"dice slot", "20", model.DiceSlot(1), "1", "0", true, model.ResultLose},
		{"round up", "10.05", model.Multiplier(dec("1.11")), "1.11", "1.11", true, model.ResultWin},
		{"round down", "10.01", model.Multiplier(dec("1.11")), "1.11", "1.10", true, model.ResultWin},
		{"fractional loss", "15", model.Multiplier(dec("0.5")), "0.5", "-7.50", false, model.ResultLose},
		{"positive half cent tie", "10.50", model.Multiplier(dec("1.11")), "1.11", "1.16", true, model.ResultWin},
		{"negative half cent tie", "10.01", model.Multiplier(dec("0.5")), "0.5", "-5.01", false, model.ResultLose},
		{"even cent tie", "12.50", model.Multiplier(dec("1.09")), "1.09", "1.13", true, model.ResultWin},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := Resolve(dec(tc.bet), tc.outcome)
			if !p.Multiplier.Equal(dec(tc.multiplier)) {
				t.Fatalf("multiplier = %s, want %s", p.Multiplier, tc.multiplier)
			}
			if !p.Profit.Equal(dec(tc.profit)) {
				t.Fatalf("profit = %s, want %s", p.Profit, tc.profit)
			}
			if p.IsWinning != tc.isWinning {
				t.Fatalf("isWinning = %v, want %v", p.IsWinning, tc.isWinning)
			}
			if got := ResultOf(p); got != tc.result {
				t.Fatalf("ResultOf = %q, want %q", got, tc.result)
			}
		})
	}
}

// TestResolveIsPure ensures identical inputs give identical payouts.
func TestResolveIsPure(t *testing.T) {
	outcome := model.Multiplier(dec("1.40"))
	first := Resolve(dec("33.33"), outcome)
	for i := 0; i < 10; i++ {
		next := Resolve(dec("33.33"), outcome)
		if !next.Profit.Equal(first.Profit) || !next.Multiplier.Equal(first.Multiplier) || next.IsWinning != first.IsWinning {
			t.Fatalf("Resolve differs on call %d: %+v vs %+v", i, next, first)
		}
	}
}
