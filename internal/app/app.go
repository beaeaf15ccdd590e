package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/kilmacud/teamsheet/internal/config"
	"github.com/kilmacud/teamsheet/internal/domain/fixture"
	"github.com/kilmacud/teamsheet/internal/domain/player"
	"github.com/kilmacud/teamsheet/internal/domain/squad"
	cachedrepo "github.com/kilmacud/teamsheet/internal/infrastructure/repository/cache"
	"github.com/kilmacud/teamsheet/internal/infrastructure/repository/memory"
	"github.com/kilmacud/teamsheet/internal/infrastructure/repository/postgres"
	"github.com/kilmacud/teamsheet/internal/interfaces/httpapi"
	basecache "github.com/kilmacud/teamsheet/internal/platform/cache"
	idgen "github.com/kilmacud/teamsheet/internal/platform/id"
	"github.com/kilmacud/teamsheet/internal/platform/logging"
	"github.com/kilmacud/teamsheet/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fixtureRepo, squadRepo, playerRepo, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	squadSvc := usecase.NewSquadService(
		fixtureRepo,
		squadRepo,
		idgen.NewRandomGenerator(),
		logger,
	)
	rosterSvc := usecase.NewRosterService(playerRepo, idgen.NewRandomGenerator(), logger)
	teamStatusSvc := usecase.NewTeamStatusService(fixtureRepo, squadSvc, cfg.StatusMaxWorkers, logger)

	handler := httpapi.NewHandler(squadSvc, rosterSvc, teamStatusSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (fixture.Repository, squad.Repository, player.Repository, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("postgres storage ready", "db", dbNameFromURL(cfg.DBURL))

		var (
			fixtureRepo fixture.Repository = postgres.NewFixtureRepository(db)
			squadRepo   squad.Repository   = postgres.NewSquadRepository(db)
			playerRepo  player.Repository  = postgres.NewPlayerRepository(db)
		)
		if cfg.CacheEnabled {
			store := basecache.NewStore(cfg.CacheTTL)
			fixtureRepo = cachedrepo.NewFixtureRepository(fixtureRepo, store)
			playerRepo = cachedrepo.NewPlayerRepository(playerRepo, store)
			logger.Info("repository cache enabled", "ttl", cfg.CacheTTL)
		}

		return fixtureRepo, squadRepo, playerRepo, nil
	case config.StorageMemory:
		fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
		squadRepo := memory.NewSquadRepository()
		playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

		return fixtureRepo, squadRepo, playerRepo, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	return otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
}
