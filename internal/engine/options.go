// Package engine orchestrates assignee recommendation for tasks.
package engine

import (
	"github.com/okian/rostra/internal/domain/scoring"
	"github.com/okian/rostra/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer sets the scorer used for ranking and selection.
func WithScorer(s *scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithBatchWorkers bounds the number of goroutines RecommendBatch uses.
func WithBatchWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchWorkers = n
		}
	}
}

// WithLogger sets a logger for per-decision debug output. Nil (the
// default) disables it.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
