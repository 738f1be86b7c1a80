// Package model contains the snapshot types passed between layers.
//
// Every type here is a read-only snapshot assembled by the caller per
// invocation. The engine never mutates them and holds no reference to them
// across calls.
package model

import (
	"fmt"
	"time"
)

// Member is one candidate on a roster snapshot.
type Member struct {
	ID               string // opaque identifier, unique within a roster
	Name             string
	RoleName         string
	RoleDescription  string // optional free text
	CurrentTaskCount int    // non-negative
	IsOverworked     bool   // supplied by the caller, never derived here
}

// RoleText returns the combined role name and description used for
// keyword matching.
func (m Member) RoleText() string {
	if m.RoleDescription == "" {
		return m.RoleName
	}
	return m.RoleName + " " + m.RoleDescription
}

// Phase is a named stage of a project's workflow.
type Phase struct {
	Number int    // positive; need not be contiguous across a project
	Name   string // may be empty
}

// DisplayName returns the phase name, substituting "Phase {n}" when the
// caller supplied none.
func (p Phase) DisplayName() string {
	if p.Name == "" {
		return fmt.Sprintf("Phase %d", p.Number)
	}
	return p.Name
}

// CandidateTask is the task being matched against a roster. Immutable
// input to scoring.
type CandidateTask struct {
	Title       string
	Description string // optional
	PhaseNumber int    // 0 means unconstrained by phase
}

// Text returns the combined title and description used for keyword
// classification.
func (t CandidateTask) Text() string {
	if t.Description == "" {
		return t.Title
	}
	return t.Title + " " + t.Description
}

// Allocation is one time-bounded weekly-hour commitment for a member.
// HoursPerWeek is kept as the raw string the persistence layer handed
// over; parsing happens in the capacity aggregator and degrades to zero
// on malformed input.
type Allocation struct {
	MemberID     string
	HoursPerWeek string     // non-negative decimal, possibly malformed
	StartDate    *time.Time // informational only, not filtered on
	EndDate      *time.Time // nil means open-ended
}

// ActiveAsOf reports whether the allocation counts toward a member's
// load on the given date: end date absent or on/after it. Start date is
// deliberately not consulted (see the capacity package doc).
func (a Allocation) ActiveAsOf(asOf time.Time) bool {
	return a.EndDate == nil || !a.EndDate.Before(asOf)
}

// CapacityProfile declares a member's weekly working hours. At most one
// active profile per member is assumed.
type CapacityProfile struct {
	MemberID            string
	MaxHoursPerWeek     float64 // expected > 0
	DefaultHoursPerWeek float64
}

// ScoredCandidate pairs a member with its assignment score. Ordering is
// the only externally meaningful property.
type ScoredCandidate struct {
	MemberID string
	Score    float64
}
