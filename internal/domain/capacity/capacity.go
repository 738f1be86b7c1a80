// Package capacity computes weekly capacity utilization from a
// member's allocation rows and capacity profile.
//
// All hour arithmetic is decimal, never float: allocation hours arrive
// as strings from the persistence layer and are summed exactly.
// Malformed values count as zero; utilization always returns a number.
package capacity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/rostra/internal/domain/model"
)

// Fallback weekly hours when no capacity profile exists for a member.
const (
	defaultMaxHoursPerWeek     = 40
	defaultDefaultHoursPerWeek = 40
)

const percentMultiplier = 100

// Utilization is one member's capacity snapshot as of a date.
type Utilization struct {
	MemberID            string
	AllocatedHours      decimal.Decimal
	MaxHoursPerWeek     decimal.Decimal
	DefaultHoursPerWeek decimal.Decimal
	AvailableHours      decimal.Decimal
	UtilizationPercent  decimal.Decimal
	IsOverAllocated     bool
}

// Aggregator computes per-member utilization. Each member is computed
// independently; there is no cross-member normalization or shared pool.
type Aggregator struct {
	fallbackMax     decimal.Decimal
	fallbackDefault decimal.Decimal
}

// New creates an Aggregator with the 40/40 fallback profile,
// overridable via options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		fallbackMax:     decimal.NewFromInt(defaultMaxHoursPerWeek),
		fallbackDefault: decimal.NewFromInt(defaultDefaultHoursPerWeek),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Utilization aggregates the member's active allocations as of the
// given date. profile may be nil, in which case the fallback hours
// apply. Allocations belonging to other members are skipped, expired
// ones (end date before asOf) contribute nothing, and unparseable hour
// strings count as zero.
func (a *Aggregator) Utilization(memberID string, allocations []model.Allocation, profile *model.CapacityProfile, asOf time.Time) Utilization {
	allocated := decimal.Zero
	for _, alloc := range allocations {
		if alloc.MemberID != memberID || !alloc.ActiveAsOf(asOf) {
			continue
		}
		allocated = allocated.Add(parseHours(alloc.HoursPerWeek))
	}

	maxHours := a.fallbackMax
	defaultHours := a.fallbackDefault
	if profile != nil {
		maxHours = decimal.NewFromFloat(profile.MaxHoursPerWeek)
		defaultHours = decimal.NewFromFloat(profile.DefaultHoursPerWeek)
	}

	available := maxHours.Sub(allocated)
	if available.IsNegative() {
		available = decimal.Zero
	}

	pct := decimal.Zero
	if maxHours.IsPositive() {
		pct = allocated.Div(maxHours).Mul(decimal.NewFromInt(percentMultiplier))
	}

	return Utilization{
		MemberID:            memberID,
		AllocatedHours:      allocated,
		MaxHoursPerWeek:     maxHours,
		DefaultHoursPerWeek: defaultHours,
		AvailableHours:      available,
		UtilizationPercent:  pct,
		IsOverAllocated:     allocated.GreaterThan(maxHours),
	}
}

// parseHours converts a raw hour string to a decimal, degrading to zero
// on malformed or negative input rather than erroring.
func parseHours(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
