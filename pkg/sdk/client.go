package detailmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/detailmatch/internal/db"
	dbMemory "github.com/kailas-cloud/detailmatch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/detailmatch/internal/db/redis"
	dombatch "github.com/kailas-cloud/detailmatch/internal/domain/batch"
	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
	catalogrepo "github.com/kailas-cloud/detailmatch/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/detailmatch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/detailmatch/internal/usecase/health"
	matchuc "github.com/kailas-cloud/detailmatch/internal/usecase/match"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "detailmatch:"
)

// Internal interfaces, swapped for mocks in tests.
type catalogUseCase interface {
	Add(ctx context.Context, label string) (bool, error)
	Remove(ctx context.Context, label string) error
	List(ctx context.Context) ([]string, error)
	Import(ctx context.Context, labels []string) []dombatch.Result
	Seed(ctx context.Context, labels []string) (int, error)
}

type matchUseCase interface {
	FindBest(ctx context.Context, q query.Query) (dommatch.Result, error)
}

// Client is the detailmatch SDK entry point.
type Client struct {
	store      db.Store
	catalogSvc catalogUseCase
	matchSvc   matchUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client, connects to the store and seeds an empty catalog.
// Without WithValkey or WithRedis the catalog lives in process memory.
// The provided context is used for the readiness check and seeding.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: defaultKeyPrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("detailmatch: store not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	c := wireClient(store, vocab, cfg, obs)

	if !cfg.skipSeed {
		seed := cfg.seed
		if seed == nil {
			seed = detail.DefaultCatalog()
		}
		if _, err := c.catalogSvc.Seed(ctx, seed); err != nil {
			store.Close()
			return nil, fmt.Errorf("detailmatch: seed catalog: %w", err)
		}
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("detailmatch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("detailmatch: unknown driver %q", cfg.driver)
	}
}

func loadVocabulary(cfg *clientConfig) (vocabulary.Vocabulary, error) {
	var (
		v   vocabulary.Vocabulary
		err error
	)
	switch {
	case cfg.vocabulary != nil:
		v, err = vocabulary.New(cfg.vocabulary.synonyms, cfg.vocabulary.stopWords, cfg.vocabulary.functional)
	case cfg.vocabularyFile != "":
		v, err = vocabulary.LoadFile(cfg.vocabularyFile)
	default:
		v = vocabulary.Default()
	}
	if err != nil {
		return vocabulary.Vocabulary{}, fmt.Errorf("detailmatch: %w", err)
	}
	if cfg.unicodeFold {
		v = v.WithUnicodeFold(true)
	}
	return v, nil
}

func wireClient(store db.Store, vocab vocabulary.Vocabulary, cfg *clientConfig, obs *observer) *Client {
	repo := catalogrepo.New(store, cfg.keyPrefix)

	catalogSvc := cataloguc.New(repo)
	if cfg.maxBatchSize > 0 {
		catalogSvc = catalogSvc.WithMaxBatchSize(cfg.maxBatchSize)
	}

	return &Client{
		store:      store,
		catalogSvc: catalogSvc,
		matchSvc:   matchuc.New(catalogSvc, vocab),
		healthSvc:  healthuc.New(store, catalogSvc),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Details returns the catalog management service.
func (c *Client) Details() *DetailService {
	return &DetailService{svc: c.catalogSvc, obs: c.obs}
}
