// Package engine orchestrates assignee recommendation for tasks.
//
// The engine is a pure function of its inputs: it performs no I/O,
// keeps no state between calls, and is safe to invoke from any number
// of goroutines as long as callers do not mutate a roster snapshot
// while a call is in flight.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/okian/rostra/internal/domain/model"
	"github.com/okian/rostra/internal/domain/scoring"
	"github.com/okian/rostra/pkg/logger"
	"github.com/okian/rostra/pkg/metrics"
)

// defaultBatchWorkers bounds concurrent scoring in RecommendBatch.
const defaultBatchWorkers = 4

// Recommendation is the outcome of one task's assignment decision.
// Assigned false means "leave unassigned", a first-class outcome.
type Recommendation struct {
	Task     model.CandidateTask
	MemberID string
	Assigned bool
}

// Engine recommends assignees for tasks against a roster snapshot.
type Engine struct {
	scorer       *scoring.Scorer
	batchWorkers int
	logger       logger.Logger
}

// New creates an Engine with a default scorer, overridable via options.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorer:       scoring.New(),
		batchWorkers: defaultBatchWorkers,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Scorer returns the scorer the engine was built with. The prompt
// adapter uses it to render the canonical rule table.
func (e *Engine) Scorer() *scoring.Scorer {
	return e.scorer
}

// Recommend picks an assignee for one task, or declines. The winner
// must score strictly positive; an empty roster or an all-non-positive
// field returns false.
func (e *Engine) Recommend(ctx context.Context, task model.CandidateTask, phase model.Phase, roster []model.Member) (string, bool) {
	id, ok := e.scorer.Pick(task, phase, roster)

	if ok {
		metrics.RecordRecommendation()
	} else {
		metrics.RecordUnassigned()
	}
	if e.logger != nil {
		e.logger.Debug(ctx, "recommendation computed",
			logger.String("task", task.Title),
			logger.String("member_id", id),
			logger.Any("assigned", ok),
		)
	}

	return id, ok
}

// RecommendWithFallback behaves like Recommend but always names a
// member when the roster is non-empty: if no candidate scores positive,
// the least-loaded member is chosen instead.
func (e *Engine) RecommendWithFallback(ctx context.Context, task model.CandidateTask, phase model.Phase, roster []model.Member) (string, bool) {
	if id, ok := e.Recommend(ctx, task, phase, roster); ok {
		return id, true
	}

	id, ok := scoring.LeastLoaded(roster)
	if ok {
		metrics.RecordFallbackAssignment()
	}
	return id, ok
}

// RecommendBatch applies the single-task contract to each task, fanning
// the scoring out over a bounded worker pool. Results come back in task
// order regardless of which worker scored them. Cancellation leaves the
// not-yet-scored tasks unassigned.
func (e *Engine) RecommendBatch(ctx context.Context, tasks []model.CandidateTask, phase model.Phase, roster []model.Member) []Recommendation {
	if len(tasks) == 0 {
		return nil
	}

	start := time.Now()

	out := make([]Recommendation, len(tasks))
	jobs := make(chan int)

	workers := e.batchWorkers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				id, ok := e.Recommend(ctx, tasks[i], phase, roster)
				out[i] = Recommendation{Task: tasks[i], MemberID: id, Assigned: ok}
			}
		}()
	}

	for i := range tasks {
		if ctx.Err() != nil {
			// Not-yet-dispatched tasks stay unassigned.
			for j := i; j < len(tasks); j++ {
				out[j] = Recommendation{Task: tasks[j]}
			}
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	metrics.RecordBatchDuration(float64(time.Since(start).Nanoseconds()) / 1e6)

	return out
}
