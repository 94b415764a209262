package env

import (
	"errors"
	"fmt"
	"os"

	"snakes_backend/internal/config"
	"snakes_backend/internal/model"
	"snakes_backend/internal/service/board"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultLayoutName = "classic"

type boardEnv struct {
	Path   string `env:"BOARD_CONFIG"`
	Layout string `env:"BOARD_LAYOUT" envDefault:"classic"`
}

type boardConfig struct {
	layout model.BoardLayout
}

// Формат файла раскладок
type boardFile struct {
	Layouts []layoutYAML `yaml:"layouts"`
}

type layoutYAML struct {
	Name  string     `yaml:"name"`
	Path  []int      `yaml:"path"`
	Cells []cellYAML `yaml:"cells"`
}

type cellYAML struct {
	Kind  string `yaml:"kind"`  // start | multiplier | loss | dice
	Value string `yaml:"value"` // множитель, только для multiplier
	Slot  int    `yaml:"slot"`  // 1 или 2, только для dice
}

// NewBoardConfig - раскладка поля из BOARD_CONFIG/BOARD_LAYOUT.
// Без файла используется встроенная классическая раскладка
func NewBoardConfig() (config.BoardConfig, error) {
	var cfg boardEnv
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.Path == "" {
		if cfg.Layout != defaultLayoutName {
			return nil, fmt.Errorf("board layout %q requires BOARD_CONFIG", cfg.Layout)
		}
		return &boardConfig{layout: board.ClassicLayout()}, nil
	}
	return NewBoardConfigFromYAML(cfg.Path, cfg.Layout)
}

// NewBoardConfigFromYAML - читает раскладку name из YAML файла
func NewBoardConfigFromYAML(path, name string) (config.BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board config: %w", err)
	}

	var file boardFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse board config: %w", err)
	}

	for _, l := range file.Layouts {
		if l.Name != name {
			continue
		}
		layout, err := l.toModel()
		if err != nil {
			return nil, fmt.Errorf("board layout %q: %w", name, err)
		}
		return &boardConfig{layout: layout}, nil
	}

	return nil, fmt.Errorf("board layout %q not found in %s", name, path)
}

func (l layoutYAML) toModel() (model.BoardLayout, error) {
	cells := make([]model.Outcome, 0, len(l.Cells))
	for i, c := range l.Cells {
		o, err := c.toOutcome()
		if err != nil {
			return model.BoardLayout{}, fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, o)
	}
	return model.BoardLayout{Name: l.Name, Cells: cells, Path: l.Path}, nil
}

func (c cellYAML) toOutcome() (model.Outcome, error) {
	switch c.Kind {
	case "start":
		return model.NeutralStart(), nil
	case "loss":
		return model.Loss(), nil
	case "dice":
		return model.DiceSlot(c.Slot), nil
	case "multiplier":
		if c.Value == "" {
			return model.Outcome{}, errors.New("multiplier value is empty")
		}
		v, err := decimal.NewFromString(c.Value)
		if err != nil {
			return model.Outcome{}, fmt.Errorf("multiplier value %q: %w", c.Value, err)
		}
		return model.Multiplier(v), nil
	default:
		return model.Outcome{}, fmt.Errorf("unknown cell kind %q", c.Kind)
	}
}

func (cfg *boardConfig) Layout() model.BoardLayout {
	return cfg.layout
}
