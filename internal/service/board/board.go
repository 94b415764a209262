// Package board описывает игровое поле: 16 клеток, путь фишки из 12 шагов
// и таблицу исходов клеток. Поле неизменяемо и безопасно для конкурентного чтения.
package board

import (
	"errors"
	"fmt"

	"snakes_backend/internal/model"

	"github.com/shopspring/decimal"
)

const (
	// CellCount Количество клеток поля 4x4
	CellCount = 16
	// PathLen Длина пути фишки
	PathLen = 12
)

var (
	ErrInvalidCell   = errors.New("cell index out of range")
	ErrInvalidStep   = errors.New("path step out of range")
	ErrInvalidLayout = errors.New("invalid board layout")
)

// Board - поле с таблицей исходов и путем
type Board struct {
	name  string
	cells [CellCount]model.Outcome
	path  [PathLen]int
}

// New - строит поле из раскладки и проверяет ее.
// Ошибка здесь означает ошибку конфигурации, а не ввода игрока
func New(layout model.BoardLayout) (*Board, error) {
	if len(layout.Cells) != CellCount {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidLayout, CellCount, len(layout.Cells))
	}
	if len(layout.Path) != PathLen {
		return nil, fmt.Errorf("%w: want path of %d steps, got %d", ErrInvalidLayout, PathLen, len(layout.Path))
	}

	b := &Board{name: layout.Name}
	for i, o := range layout.Cells {
		switch o.Kind {
		case model.OutcomeNeutralStart, model.OutcomeLoss:
		case model.OutcomeMultiplier:
			if o.Value.IsNegative() {
				return nil, fmt.Errorf("%w: cell %d has negative multiplier %s", ErrInvalidLayout, i, o.Value)
			}
		case model.OutcomeDiceSlot:
			if o.Slot != 1 && o.Slot != 2 {
				return nil, fmt.Errorf("%w: cell %d has dice slot %d", ErrInvalidLayout, i, o.Slot)
			}
		default:
			return nil, fmt.Errorf("%w: cell %d has unknown outcome", ErrInvalidLayout, i)
		}
		b.cells[i] = o
	}

	seen := make(map[int]bool, PathLen)
	for i, cell := range layout.Path {
		if cell < 0 || cell >= CellCount {
			return nil, fmt.Errorf("%w: path step %d points to cell %d", ErrInvalidLayout, i+1, cell)
		}
		if seen[cell] {
			return nil, fmt.Errorf("%w: path visits cell %d twice", ErrInvalidLayout, cell)
		}
		if b.cells[cell].Kind == model.OutcomeDiceSlot {
			return nil, fmt.Errorf("%w: path visits dice slot cell %d", ErrInvalidLayout, cell)
		}
		seen[cell] = true
		b.path[i] = cell
	}
	if b.cells[b.path[0]].Kind != model.OutcomeNeutralStart {
		return nil, fmt.Errorf("%w: path must start on the start cell", ErrInvalidLayout)
	}

	return b, nil
}

// Name - имя раскладки
func (b *Board) Name() string {
	return b.name
}

// OutcomeOf - исход клетки по индексу 0..15
func (b *Board) OutcomeOf(cell int) (model.Outcome, error) {
	if cell < 0 || cell >= CellCount {
		return model.Outcome{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	return b.cells[cell], nil
}

// PathStart - первая клетка пути (Start)
func (b *Board) PathStart() int {
	return b.path[0]
}

// PathLength - длина пути
func (b *Board) PathLength() int {
	return PathLen
}

// PathStepTo - клетка пути на шаге step (с 1)
func (b *Board) PathStepTo(step int) (int, error) {
	if step < 1 || step > PathLen {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	return b.path[step-1], nil
}

// Layout - копия раскладки поля для отдачи клиенту
func (b *Board) Layout() model.BoardLayout {
	cells := make([]model.Outcome, CellCount)
	copy(cells, b.cells[:])
	path := make([]int, PathLen)
	copy(path, b.path[:])
	return model.BoardLayout{Name: b.name, Cells: cells, Path: path}
}

// ClassicLayout - раскладка, которую показывает клиент по умолчанию.
// Клетки 5 и 6 - места для кубиков
func ClassicLayout() model.BoardLayout {
	x := func(s string) model.Outcome {
		return model.Multiplier(decimal.RequireFromString(s))
	}
	return model.BoardLayout{
		Name: "classic",
		Cells: []model.Outcome{
			0:  model.NeutralStart(),
			1:  x("4.00"),
			2:  x("2.50"),
			3:  x("1.40"),
			4:  x("4.00"),
			5:  model.DiceSlot(1),
			6:  model.DiceSlot(2),
			7:  model.Loss(),
			8:  model.Loss(),
			9:  x("1.00"),
			10: x("1.00"),
			11: x("1.11"),
			12: x("1.40"),
			13: model.Loss(),
			14: x("2.50"),
			15: model.Loss(),
		},
		Path: []int{0, 1, 2, 3, 7, 11, 15, 14, 13, 12, 8, 4},
	}
}

// Default - поле с классической раскладкой
func Default() *Board {
	b, err := New(ClassicLayout())
	if err != nil {
		// Раскладка зашита в код и всегда валидна
		panic(err)
	}
	return b
}
