package seqs

import "go.uber.org/zap"

type gridConfig struct {
	log  *zap.Logger
	name string
}

// GridOption configures a GridEnumerator.
type GridOption func(*gridConfig)

// WithLogger sets the logger used for exhaustion and misconfiguration events.
// A nil logger is ignored.
func WithLogger(log *zap.Logger) GridOption {
	return func(c *gridConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithName names the enumerator's logger, e.g. "pixels" or "tiles".
func WithName(name string) GridOption {
	return func(c *gridConfig) {
		c.name = name
	}
}

func newGridConfig(opts []GridOption) gridConfig {
	cfg := gridConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name != "" {
		cfg.log = cfg.log.Named(cfg.name)
	}
	return cfg
}
