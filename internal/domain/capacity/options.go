// Package capacity computes weekly capacity utilization.
package capacity

import "github.com/shopspring/decimal"

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithFallbackProfile sets the weekly hours assumed for members without
// a capacity profile. Non-positive max hours are ignored.
func WithFallbackProfile(maxHours, defaultHours float64) Option {
	return func(a *Aggregator) {
		if maxHours > 0 {
			a.fallbackMax = decimal.NewFromFloat(maxHours)
		}
		if defaultHours > 0 {
			a.fallbackDefault = decimal.NewFromFloat(defaultHours)
		}
	}
}
