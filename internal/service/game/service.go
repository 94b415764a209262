// Package game управляет игровыми сессиями: по одному движку раунда на
// сессию, журнал завершенных раундов, статистика и рассылка событий.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"snakes_backend/internal/config"
	"snakes_backend/internal/model"
	"snakes_backend/internal/notify"
	"snakes_backend/internal/repository"
	"snakes_backend/internal/service"
	"snakes_backend/internal/service/board"
	"snakes_backend/internal/service/round"
	"snakes_backend/pkg/dice"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

const (
	// DefaultHistoryLimit Размер истории по умолчанию
	DefaultHistoryLimit = 20
	// MaxHistoryLimit Максимальный размер истории за один запрос
	MaxHistoryLimit = 100

	ledgerTimeout = 5 * time.Second
)

var (
	ErrConsentDeclined = errors.New("terms must be accepted to play")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthorized    = errors.New("unauthorized")
)

// TxManager - выполняет fn в транзакции журнала
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Deps struct {
	GameCfg     config.GameConfig
	JWTCfg      config.JWTConfig
	Board       *board.Board
	Roller      round.Roller
	Scheduler   round.Scheduler
	TxManager   TxManager
	SessionRepo repository.SessionRepository
	RoundRepo   repository.RoundRepository
	StatsRepo   repository.StatsRepository
	Notifier    *notify.Dispatcher
	Logger      *zap.Logger
	// Clock по умолчанию time.Now
	Clock func() time.Time
}

type session struct {
	id         string
	engine     *round.Engine
	lastActive atomic.Int64
}

func (s *session) touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

func (s *session) idleSince() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

type serv struct {
	gameCfg     config.GameConfig
	jwtCfg      config.JWTConfig
	board       *board.Board
	roller      round.Roller
	sched       round.Scheduler
	txManager   TxManager
	sessionRepo repository.SessionRepository
	roundRepo   repository.RoundRepository
	statsRepo   repository.StatsRepository
	notifier    *notify.Dispatcher
	log         *zap.Logger
	now         func() time.Time

	// pool Пул записи раундов в журнал
	pool *ants.Pool
	wg   sync.WaitGroup

	mtx      sync.RWMutex
	sessions map[string]*session
	// closed Выставляется в Shutdown, после него раунды в журнал не пишутся
	closed bool
}

func NewGameService(deps Deps) (service.GameService, error) {
	if deps.GameCfg == nil || deps.JWTCfg == nil {
		return nil, errors.New("game and jwt config are required")
	}
	if deps.SessionRepo == nil || deps.RoundRepo == nil || deps.StatsRepo == nil || deps.TxManager == nil {
		return nil, errors.New("repositories and tx manager are required")
	}
	if deps.Board == nil {
		deps.Board = board.Default()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = round.TimerScheduler{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewDispatcher(notify.DefaultBuffer, deps.Logger)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Roller == nil {
		r, err := dice.New(deps.GameCfg.DiceSeed())
		if err != nil {
			return nil, fmt.Errorf("create dice roller: %w", err)
		}
		deps.Roller = r
	}

	log := deps.Logger.Named("game")
	pool, err := ants.NewPool(deps.GameCfg.LedgerWorkers(), ants.WithPanicHandler(func(p any) {
		log.Error("ledger worker panic", zap.Any("panic", p))
	}))
	if err != nil {
		return nil, fmt.Errorf("create ledger pool: %w", err)
	}

	return &serv{
		gameCfg:     deps.GameCfg,
		jwtCfg:      deps.JWTCfg,
		board:       deps.Board,
		roller:      deps.Roller,
		sched:       deps.Scheduler,
		txManager:   deps.TxManager,
		sessionRepo: deps.SessionRepo,
		roundRepo:   deps.RoundRepo,
		statsRepo:   deps.StatsRepo,
		notifier:    deps.Notifier,
		log:         log,
		now:         deps.Clock,
		pool:        pool,
		sessions:    make(map[string]*session),
	}, nil
}

// lookup - активная сессия по ID, отмечает активность
func (s *serv) lookup(sessionID string) (*session, error) {
	s.mtx.RLock()
	sess, ok := s.sessions[sessionID]
	s.mtx.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

func (s *serv) Board() model.BoardLayout {
	return s.board.Layout()
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
