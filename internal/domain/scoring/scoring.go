// Package scoring computes assignment scores for roster members.
//
// There is exactly one scoring function in the system. Its weight table
// is injectable so callers and tests can tune it, but the rules are
// never duplicated elsewhere; anything that needs to describe them
// (such as the prompt adapter) renders them from the same Weights value.
package scoring

import (
	"github.com/okian/rostra/internal/domain/model"
	"github.com/okian/rostra/internal/domain/rolematch"
)

// Default weight table. Phase fit outweighs task-text fit, and the
// overworked penalty cancels a task-text bonus but not a phase bonus,
// so an overworked specialist can still beat an idle generalist.
const (
	defaultPhaseFitBonus     = 3.0
	defaultTaskFitBonus      = 2.0
	defaultTaskLoadPenalty   = 0.1
	defaultOverworkedPenalty = 2.0
)

// Weights is the canonical scoring weight table.
type Weights struct {
	// PhaseFitBonus is added when the member's role matches a category
	// implied by the phase name.
	PhaseFitBonus float64

	// TaskFitBonus is added when the member's role matches a category
	// implied by the task title+description.
	TaskFitBonus float64

	// TaskLoadPenalty is subtracted once per task the member already
	// carries. A continuous tie-breaker, not a dominant signal.
	TaskLoadPenalty float64

	// OverworkedPenalty is subtracted when the member is flagged
	// overworked by the caller.
	OverworkedPenalty float64
}

// DefaultWeights returns the canonical weight table.
func DefaultWeights() Weights {
	return Weights{
		PhaseFitBonus:     defaultPhaseFitBonus,
		TaskFitBonus:      defaultTaskFitBonus,
		TaskLoadPenalty:   defaultTaskLoadPenalty,
		OverworkedPenalty: defaultOverworkedPenalty,
	}
}

// Scorer scores one task against roster members.
type Scorer struct {
	matcher *rolematch.Matcher
	weights Weights
}

// New creates a Scorer with the default matcher and weights.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		matcher: rolematch.New(),
		weights: DefaultWeights(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Weights returns the weight table the scorer was built with.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes the assignment score for one member. Point-based sum:
// phase-fit bonus, task-text-fit bonus, per-task load penalty,
// overworked penalty. A phase or task that implies no category
// contributes exactly zero.
func (s *Scorer) Score(task model.CandidateTask, phase model.Phase, m model.Member) float64 {
	score := 0.0

	phaseCats := s.matcher.CategoriesForPhase(phase.DisplayName())
	if len(phaseCats) > 0 && s.matcher.RoleMatches(m.RoleName, m.RoleDescription, phaseCats) {
		score += s.weights.PhaseFitBonus
	}

	taskCats := s.matcher.CategoriesForTask(task.Title, task.Description)
	if s.matcher.RoleMatches(m.RoleName, m.RoleDescription, taskCats) {
		score += s.weights.TaskFitBonus
	}

	score -= s.weights.TaskLoadPenalty * float64(m.CurrentTaskCount)

	if m.IsOverworked {
		score -= s.weights.OverworkedPenalty
	}

	return score
}

// Rank scores every roster member and returns candidates in descending
// score order. The sort is stable, so roster order breaks ties.
func (s *Scorer) Rank(task model.CandidateTask, phase model.Phase, roster []model.Member) []model.ScoredCandidate {
	if len(roster) == 0 {
		return nil
	}

	ranked := make([]model.ScoredCandidate, 0, len(roster))
	for _, m := range roster {
		ranked = append(ranked, model.ScoredCandidate{
			MemberID: m.ID,
			Score:    s.Score(task, phase, m),
		})
	}

	// Insertion sort: stable, and rosters are small.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Score > ranked[j-1].Score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	return ranked
}

// Pick returns the highest-scoring member id, but only when its score
// is strictly positive. A false result means "leave unassigned" and is
// an expected outcome, not an error.
func (s *Scorer) Pick(task model.CandidateTask, phase model.Phase, roster []model.Member) (string, bool) {
	ranked := s.Rank(task, phase, roster)
	if len(ranked) == 0 || ranked[0].Score <= 0 {
		return "", false
	}
	return ranked[0].MemberID, true
}

// LeastLoaded returns the member with the fewest current tasks, roster
// order breaking ties. Used as the fallback when someone must be chosen
// even though no candidate scored positive.
func LeastLoaded(roster []model.Member) (string, bool) {
	if len(roster) == 0 {
		return "", false
	}

	best := roster[0]
	for _, m := range roster[1:] {
		if m.CurrentTaskCount < best.CurrentTaskCount {
			best = m
		}
	}
	return best.ID, true
}
