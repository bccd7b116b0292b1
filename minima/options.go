// SPDX-License-Identifier: MIT
// Package minima: functional options.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors panic on meaningless inputs (nil logger);
//     algorithms never panic on user input.
//   - Defaults: SMAWK strategy, no logging.

package minima

import "github.com/sirupsen/logrus"

// Option customizes RowMinima, ColumnMinima and OnlineColumnMinima.
type Option func(*config)

// config aggregates resolved options. Passed by value.
type config struct {
	strategy Strategy
	log      *logrus.Logger // nil means silent
}

// newConfig applies opts over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{strategy: SMAWK}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy selects the algorithm used by RowMinima and ColumnMinima.
// OnlineColumnMinima ignores it.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger enables tracing: dispatch decisions at Debug, online engine
// steps at Trace. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("minima: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// tracing reports whether lvl would be emitted by the configured logger.
func (c config) tracing(lvl logrus.Level) bool {
	return c.log != nil && c.log.IsLevelEnabled(lvl)
}
