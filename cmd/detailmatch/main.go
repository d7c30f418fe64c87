package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/detailmatch/internal/config"
	"github.com/kailas-cloud/detailmatch/internal/db"
	dbMemory "github.com/kailas-cloud/detailmatch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/detailmatch/internal/db/redis"
	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
	logpkg "github.com/kailas-cloud/detailmatch/internal/logger"
	"github.com/kailas-cloud/detailmatch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/detailmatch/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/detailmatch/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/detailmatch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/detailmatch/internal/usecase/health"
	matchuc "github.com/kailas-cloud/detailmatch/internal/usecase/match"
	"github.com/kailas-cloud/detailmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting detailmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
		zap.Strings("catalog_addrs", cfg.Catalog.Addrs),
	)

	store, err := newStore(cfg.Catalog)
	if err != nil {
		logger.Fatal("Failed to create catalog store", zap.Error(err))
	}
	defer store.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Catalog.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}
	logger.Info("Connected to catalog store")

	vocab := vocabulary.Default()
	if cfg.Vocabulary.File != "" {
		vocab, err = vocabulary.LoadFile(cfg.Vocabulary.File)
		if err != nil {
			logger.Fatal("Failed to load vocabulary", zap.Error(err))
		}
		logger.Info("Vocabulary loaded", zap.String("file", cfg.Vocabulary.File))
	}

	// Register metrics explicitly (no init())
	metrics.Register()
	observer := metrics.NewObserver()

	repo := catalogrepo.New(store, cfg.Catalog.KeyPrefix)
	catalogSvc := cataloguc.New(repo).
		WithMaxBatchSize(cfg.Catalog.MaxBatchSize).
		WithObserver(observer)
	matchSvc := matchuc.New(catalogSvc, vocab).WithObserver(observer)
	healthSvc := healthuc.New(store, catalogSvc)

	if !cfg.Catalog.SkipSeed {
		seed := detail.DefaultCatalog()
		if cfg.Catalog.SeedFile != "" {
			seed, err = detail.LoadSeedFile(cfg.Catalog.SeedFile)
			if err != nil {
				logger.Fatal("Failed to load seed file", zap.Error(err))
			}
		}
		if _, err := catalogSvc.Seed(ctx, seed); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}
	// Publish the initial size for a pre-populated store.
	if _, err := catalogSvc.List(ctx); err != nil {
		logger.Warn("Failed to read catalog", zap.Error(err))
	}

	server := chiTransport.NewServer(catalogSvc, matchSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped gracefully")
}

func newStore(cfg config.CatalogConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return dbMemory.NewStore(), nil
	case config.DriverValkey, config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}
}
