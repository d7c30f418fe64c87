package detailmatch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type vocabularyTables struct {
	synonyms   map[string]string
	stopWords  []string
	functional []string
}

type clientConfig struct {
	driver    string // "memory", "valkey" or "redis"
	addrs     []string
	password  string
	keyPrefix string

	vocabularyFile string
	vocabulary     *vocabularyTables
	unicodeFold    bool

	seed         []string
	skipSeed     bool
	maxBatchSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey stores the catalog in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores the catalog in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix namespaces catalog keys. Default: "detailmatch:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithVocabularyFile loads synonym, stop-word and functional-keyword tables
// from a YAML file instead of the built-in ones.
func WithVocabularyFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.vocabularyFile = path
	})
}

// WithVocabulary replaces the built-in tables. Entries are lowercased.
func WithVocabulary(synonyms map[string]string, stopWords, functionalKeywords []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.vocabulary = &vocabularyTables{
			synonyms:   synonyms,
			stopWords:  stopWords,
			functional: functionalKeywords,
		}
	})
}

// WithUnicodeFold folds ligatures, full-width letters and other compatibility
// characters to ASCII before tokenizing. Off by default.
func WithUnicodeFold() Option {
	return optionFunc(func(c *clientConfig) {
		c.unicodeFold = true
	})
}

// WithSeed replaces the built-in detail library used to seed an empty catalog.
func WithSeed(labels ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.seed = labels
	})
}

// WithoutSeed leaves an empty catalog empty.
func WithoutSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.skipSeed = true
	})
}

// WithMaxBatchSize sets the maximum number of labels per import.
// Default: 100.
func WithMaxBatchSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxBatchSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
