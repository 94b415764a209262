package converter

import (
	"fmt"

	dto "snakes_backend/internal/api/dto/game"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service/round"

	"github.com/shopspring/decimal"
)

// ToPlaceBet - разбирает сумму ставки. Неразборная сумма или сумма необычной формы - ошибка валидации
func ToPlaceBet(req dto.BetRequest) (model.PlaceBet, error) {
	if len(req.Amount) > round.MaxAmountLen {
		return model.PlaceBet{}, fmt.Errorf("%w: amount is longer than %d characters", round.ErrInvalidAmount, round.MaxAmountLen)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.PlaceBet{}, fmt.Errorf("%w: amount %q is not a number", round.ErrValidation, req.Amount)
	}
	if err := round.ValidateAmount(amount); err != nil {
		return model.PlaceBet{}, err
	}
	return model.PlaceBet{Amount: amount}, nil
}

func ToRoundViewResponse(v model.RoundView) dto.RoundViewResponse {
	return dto.RoundViewResponse{
		Round:      v.Round,
		State:      v.State.String(),
		BetAmount:  v.BetAmount.StringFixed(2),
		StepCount:  v.StepCount,
		Position:   v.Position,
		Dice1:      v.Dice1,
		Dice2:      v.Dice2,
		Multiplier: v.Multiplier.StringFixed(2) + "x",
		Profit:     v.Profit.StringFixed(2),
		IsWinning:  v.IsWinning,
		Balance:    v.Balance.StringFixed(2),
	}
}

func ToEventResponse(ev model.Event) dto.EventResponse {
	return dto.EventResponse{
		Seq:    ev.Seq,
		Kind:   string(ev.Kind),
		Result: string(ev.Result),
		Round:  ToRoundViewResponse(ev.View),
		At:     ev.At,
	}
}

func ToHistoryResponse(records []model.RoundRecord) dto.HistoryResponse {
	rounds := make([]dto.RoundRecordResponse, 0, len(records))
	for _, rec := range records {
		rounds = append(rounds, dto.RoundRecordResponse{
			Round:        rec.Round,
			Bet:          rec.Bet.StringFixed(2),
			Dice1:        rec.Dice1,
			Dice2:        rec.Dice2,
			StepCount:    rec.StepCount,
			LandingCell:  rec.LandingCell,
			Multiplier:   rec.Multiplier.StringFixed(2) + "x",
			Profit:       rec.Profit.StringFixed(2),
			IsWinning:    rec.IsWinning,
			BalanceAfter: rec.BalanceAfter.StringFixed(2),
			ResolvedAt:   rec.ResolvedAt,
		})
	}
	return dto.HistoryResponse{Rounds: rounds}
}

func ToBoardResponse(layout model.BoardLayout) dto.BoardResponse {
	onPath := make(map[int]bool, len(layout.Path))
	for _, cell := range layout.Path {
		onPath[cell] = true
	}

	cells := make([]dto.CellResponse, 0, len(layout.Cells))
	for i, o := range layout.Cells {
		cell := dto.CellResponse{
			Index:  i,
			Kind:   o.Kind.String(),
			Label:  o.Label(),
			OnPath: onPath[i],
		}
		switch o.Kind {
		case model.OutcomeMultiplier:
			cell.Value = o.Value.StringFixed(2)
		case model.OutcomeDiceSlot:
			cell.Slot = o.Slot
		}
		cells = append(cells, cell)
	}

	path := make([]int, len(layout.Path))
	copy(path, layout.Path)

	return dto.BoardResponse{Name: layout.Name, Cells: cells, Path: path}
}

func ToStatsResponse(s model.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRounds: s.TotalRounds,
		TotalBet:    s.TotalBet.StringFixed(2),
		TotalPayout: s.TotalPayout.StringFixed(2),
		Wins:        s.Wins,
		Losses:      s.Losses,
		CurrentRTP:  s.CurrentRTP.StringFixed(2),
		WindowRTP:   s.WindowRTP.StringFixed(2),
		WindowSize:  s.WindowSize,
		UpdatedAt:   s.UpdatedAt,
	}
}
