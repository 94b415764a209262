package app

import (
	"context"

	agreementAPI "snakes_backend/internal/api/agreement"
	gameAPI "snakes_backend/internal/api/game"
	"snakes_backend/internal/api/middleware"
	"snakes_backend/internal/config"
	"snakes_backend/internal/config/env"
	"snakes_backend/internal/notify"
	"snakes_backend/internal/repository"
	"snakes_backend/internal/repository/memory_repo"
	"snakes_backend/internal/repository/round_repo"
	"snakes_backend/internal/repository/session_repo"
	"snakes_backend/internal/repository/stats_repo"
	"snakes_backend/internal/service"
	"snakes_backend/internal/service/board"
	"snakes_backend/internal/service/game"
	"snakes_backend/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const appName = "snakes"

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager game.TxManager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Ledger
	sessionRepo repository.SessionRepository
	roundRepo   repository.RoundRepository
	statsRepo   repository.StatsRepository

	// Game bits
	gameCfg  config.GameConfig
	boardCfg config.BoardConfig
	jwtCfg   config.JWTConfig
	board    *board.Board
	notifier *notify.Dispatcher
	gameServ service.GameService

	// Handlers
	gameHand      *gameAPI.Handler
	agreementHand *agreementAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(logger.Config{
			Level: sp.LogCfg().Level(),
			App:   appName,
			Dir:   sp.LogCfg().Dir(),
			File:  sp.LogCfg().File(),
		})
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// usePG - журнал в Postgres, если задан PG_DSN
func (sp *ServiceProvider) usePG() bool {
	return sp.PgConfig().DSN() != ""
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) game.TxManager {
	if sp.txManager == nil {
		if !sp.usePG() {
			sp.txManager = memory_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		if sp.usePG() {
			sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
		} else {
			sp.sessionRepo = memory_repo.NewSessionRepository()
		}
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		if sp.usePG() {
			sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
		} else {
			sp.roundRepo = memory_repo.NewRoundRepository()
		}
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) BoardCfg() config.BoardConfig {
	if sp.boardCfg == nil {
		cfg, err := env.NewBoardConfig()
		if err != nil {
			panic("failed to get board config: " + err.Error())
		}
		sp.boardCfg = cfg
	}
	return sp.boardCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) Board() *board.Board {
	if sp.board == nil {
		b, err := board.New(sp.BoardCfg().Layout())
		if err != nil {
			panic("failed to build board: " + err.Error())
		}
		sp.board = b
	}
	return sp.board
}

func (sp *ServiceProvider) Notifier() *notify.Dispatcher {
	if sp.notifier == nil {
		sp.notifier = notify.NewDispatcher(notify.DefaultBuffer, sp.Logger().Named("notify"))
	}
	return sp.notifier
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		serv, err := game.NewGameService(game.Deps{
			GameCfg:     sp.GameCfg(),
			JWTCfg:      sp.JWTCfg(),
			Board:       sp.Board(),
			TxManager:   sp.TXManager(ctx),
			SessionRepo: sp.SessionRepository(ctx),
			RoundRepo:   sp.RoundRepository(ctx),
			StatsRepo:   sp.StatsRepository(),
			Notifier:    sp.Notifier(),
			Logger:      sp.Logger(),
		})
		if err != nil {
			panic("failed to create game service: " + err.Error())
		}
		sp.gameServ = serv
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger().Named("api"),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) AgreementHandler(ctx context.Context) *agreementAPI.Handler {
	if sp.agreementHand == nil {
		sp.agreementHand = agreementAPI.NewHandler(agreementAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger().Named("api"),
		})
	}
	return sp.agreementHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()
		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		gameHandler := sp.GameHandler(ctx)
		agreementHandler := sp.AgreementHandler(ctx)
		auth := middleware.ConsentAuth(sp.GameService(ctx), sp.Logger().Named("api"))

		// Public endpoints
		r.Post("/agreement", agreementHandler.Agree)
		r.Get("/board", gameHandler.Board)
		r.Get("/stats", gameHandler.Stats)
		r.Handle("/metrics", promhttp.Handler())

		// Session endpoints
		r.With(auth).Delete("/session", agreementHandler.End)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(auth)
			rr.Post("/bet", gameHandler.Bet)
			rr.Post("/roll", gameHandler.Roll)
			rr.Post("/new-round", gameHandler.NewRound)
			rr.Get("/state", gameHandler.State)
			rr.Get("/history", gameHandler.History)
			rr.Get("/events", gameHandler.Events)
		})

		sp.router = r
	}

	return sp.router
}
