// Package scoring computes assignment scores for roster members.
package scoring

import "github.com/okian/rostra/internal/domain/rolematch"

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithMatcher sets the role matcher used for phase and task-text
// classification.
func WithMatcher(m *rolematch.Matcher) Option {
	return func(s *Scorer) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithWeights sets the scoring weight table. Zero or negative weights
// are accepted; callers own the semantics of unusual tables.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}
