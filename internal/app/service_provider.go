package app

import (
	simulationAPI "classic_slot/internal/api/simulation"
	slotAPI "classic_slot/internal/api/slot"
	"classic_slot/internal/config"
	"classic_slot/internal/config/env"
	"classic_slot/internal/logger"
	"classic_slot/internal/repository"
	"classic_slot/internal/repository/play_stats_repo"
	"classic_slot/internal/repository/simulation_mem_repo"
	"classic_slot/internal/repository/simulation_repo"
	"classic_slot/internal/service"
	"classic_slot/internal/service/simulation"
	"classic_slot/internal/service/slot"
	"classic_slot/pkg/rng"
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database, опционально
	pgConfig config.PGConfig
	pgLoaded bool
	dbClient *pgxpool.Pool

	// Machine bits
	machineCfg config.MachineConfig
	definition *slot.Definition

	// Slot bits
	playStatsRepo repository.PlayStatsRepository
	slotServ      service.SlotService
	slotHand      *slotAPI.Handler

	// Simulation bits
	simCfg         config.SimulationConfig
	simulationRepo repository.SimulationRepository
	simulationServ service.SimulationService
	simulationHand *simulationAPI.Handler

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
		l, err := logger.New(sp.LogCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

// PgConfig nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgLoaded {
		cfg, err := env.NewPGConfig()
		if err != nil && !errors.Is(err, env.ErrPGNotConfigured) {
			sp.Logger().Fatal("failed to get database config", zap.Error(err))
		}
		sp.pgConfig = cfg
		sp.pgLoaded = true
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			sp.Logger().Fatal("failed to create db pool", zap.Error(err))
		}
		err = dbc.Ping(ctx)
		if err != nil {
			sp.Logger().Fatal("failed to ping db", zap.Error(err))
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			sp.Logger().Fatal("failed to create tx manager", zap.Error(err))
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) MachineCfg() config.MachineConfig {
	if sp.machineCfg == nil {
		cfg, err := env.NewMachineConfig()
		if err != nil {
			sp.Logger().Fatal("failed to get machine config", zap.Error(err))
		}
		sp.machineCfg = cfg
	}
	return sp.machineCfg
}

// Definition автомат собирается один раз, ошибка конфигурации завершает процесс до первого спина
func (sp *ServiceProvider) Definition() *slot.Definition {
	if sp.definition == nil {
		def, err := slot.NewDefinition(sp.MachineCfg())
		if err != nil {
			sp.Logger().Fatal("invalid machine configuration", zap.Error(err))
		}
		sp.definition = def
	}
	return sp.definition
}

func (sp *ServiceProvider) PlayStatsRepository() repository.PlayStatsRepository {
	if sp.playStatsRepo == nil {
		sp.playStatsRepo = play_stats_repo.NewPlayStatsRepository(0)
	}
	return sp.playStatsRepo
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.Definition(), sp.PlayStatsRepository(), rng.Default(), sp.Logger())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simCfg == nil {
		cfg, err := env.NewSimulationConfig()
		if err != nil {
			sp.Logger().Fatal("failed to get simulation config", zap.Error(err))
		}
		sp.simCfg = cfg
	}
	return sp.simCfg
}

// SimulationRepository Postgres при заданном PG_DSN, иначе в памяти
func (sp *ServiceProvider) SimulationRepository(ctx context.Context) repository.SimulationRepository {
	if sp.simulationRepo == nil {
		if sp.PgConfig() == nil {
			sp.Logger().Info("PG_DSN not set, simulation runs are kept in memory")
			sp.simulationRepo = simulation_mem_repo.NewSimulationRepository()
			return sp.simulationRepo
		}

		if err := simulation_repo.EnsureSchema(ctx, sp.DBClient(ctx)); err != nil {
			sp.Logger().Fatal("failed to create simulation schema", zap.Error(err))
		}
		sp.simulationRepo = simulation_repo.NewSimulationRepository(sp.DBClient(ctx), sp.TXManager(ctx))
	}
	return sp.simulationRepo
}

func (sp *ServiceProvider) SimulationService(ctx context.Context) service.SimulationService {
	if sp.simulationServ == nil {
		def := sp.Definition()
		sp.simulationServ = simulation.NewSimulationService(
			def.Machine,
			def.Paytable,
			sp.SimulationRepository(ctx),
			sp.SimulationCfg(),
			sp.Logger(),
		)
	}
	return sp.simulationServ
}

func (sp *ServiceProvider) SimulationHandler(ctx context.Context) *simulationAPI.Handler {
	if sp.simulationHand == nil {
		sp.simulationHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{Serv: sp.SimulationService(ctx)})
	}
	return sp.simulationHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			sp.Logger().Fatal("failed to get http config", zap.Error(err))
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Slot endpoints
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/evaluate", slotHandler.Evaluate)
			rr.Get("/machine", slotHandler.Machine)
			rr.Get("/stats", slotHandler.Stats)
		})

		// Simulation endpoints
		simulationHandler := sp.SimulationHandler(ctx)
		r.Route("/simulation", func(rr chi.Router) {
			rr.Post("/run", simulationHandler.Run)
			rr.Get("/runs", simulationHandler.List)
			rr.Get("/runs/{id}", simulationHandler.Get)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений и сбрасывает логгер
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
