package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/hitting-tracker/internal/config"
	"github.com/riskibarqy/hitting-tracker/internal/domain/outing"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
	cachedrepo "github.com/riskibarqy/hitting-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hitting-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hitting-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hitting-tracker/internal/interfaces/httpapi"
	"github.com/riskibarqy/hitting-tracker/internal/platform/cache"
	idgen "github.com/riskibarqy/hitting-tracker/internal/platform/id"
	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
	"github.com/riskibarqy/hitting-tracker/internal/platform/resilience"
	"github.com/riskibarqy/hitting-tracker/internal/usecase"
)

type repositories struct {
	players player.Repository
	outings outing.Repository
	closers []func() error
}

func (r *repositories) close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases storage and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewUUIDGenerator()
	playerSvc := usecase.NewPlayerService(repos.players, repos.outings, ids)
	outingSvc := usecase.NewOutingService(repos.players, repos.outings, ids)
	statsSvc := usecase.NewStatsService(repos.players, repos.outings, cfg.StatsWorkers, logger)

	handler := httpapi.NewHandler(playerSvc, outingSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*repositories, error) {
	repos := &repositories{}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		repos.closers = append(repos.closers, db.Close)

		breaker := newDBBreaker(cfg.DBCircuit, logger)
		repos.players = postgres.NewPlayerRepository(db, breaker)
		repos.outings = postgres.NewOutingRepository(db, breaker)
	default:
		var (
			players []player.Player
			outings []outing.Outing
		)
		if cfg.SeedDemoData {
			players = memory.SeedPlayers()
			outings = memory.SeedOutings()
		}
		repos.players = memory.NewPlayerRepository(players)
		repos.outings = memory.NewOutingRepository(outings)
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver, "seeded", cfg.SeedDemoData && cfg.StorageDriver != config.StoragePostgres)

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		stopSweeper := startCacheSweeper(store, cfg.CacheTTL, logger)
		repos.closers = append(repos.closers, func() error {
			stopSweeper()
			return nil
		})

		repos.players = cachedrepo.NewPlayerRepository(repos.players, store)
		repos.outings = cachedrepo.NewOutingRepository(repos.outings, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL)
	}

	return repos, nil
}

// newDBBreaker returns nil when the circuit is disabled; the repositories
// treat a nil breaker as pass-through.
func newDBBreaker(cfg resilience.BreakerConfig, logger *logging.Logger) *resilience.Breaker {
	if !cfg.Enabled {
		logger.Info("db circuit breaker disabled", "reason", "DB_CIRCUIT_ENABLED=false")
		return nil
	}

	breaker := resilience.NewBreaker(cfg)
	breaker.OnStateChange(func(from, to resilience.BreakerState) {
		logger.Warn("db circuit breaker state changed", "from", from, "to", to)
	})
	return breaker
}

// startCacheSweeper evicts expired entries every ttl until stop is called.
func startCacheSweeper(store *cache.Store, ttl time.Duration, logger *logging.Logger) (stop func()) {
	ticker := time.NewTicker(ttl)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if n := store.Sweep(); n > 0 {
					logger.Debug("cache swept", "evicted", n, "remaining", store.Len())
				}
			}
		}
	}()

	return func() { close(done) }
}
