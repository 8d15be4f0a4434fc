package bibleorgsys

import "go.uber.org/zap"

// Option configures catalog loading and validation runs.
type Option interface{ apply(*config) }

type config struct {
	logger    *zap.SugaredLogger
	catalogID string
	runID     string
}

type optionFunc func(*config)

func (f optionFunc) apply(cfg *config) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithLogger injects a logger for load and validation diagnostics. The
// engine is silent without one.
func WithLogger(logger *zap.SugaredLogger) Option {
	return optionFunc(func(cfg *config) {
		cfg.logger = logger
	})
}

// WithCatalogID overrides the generated catalog instance id.
func WithCatalogID(id string) Option {
	return optionFunc(func(cfg *config) {
		cfg.catalogID = id
	})
}

// WithRunID overrides the generated validation run id.
func WithRunID(id string) Option {
	return optionFunc(func(cfg *config) {
		cfg.runID = id
	})
}

func (c *config) fillDefaults() {
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	cfg.fillDefaults()
	return cfg
}
