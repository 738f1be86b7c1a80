// Package prompt renders the scoring context as natural-language
// instructions for an external text-generation step, and reconciles the
// token that step echoes back.
//
// The rule text is rendered from the one canonical scoring weight
// table; the rules are never restated by hand anywhere else.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okian/rostra/internal/domain/model"
	"github.com/okian/rostra/internal/domain/scoring"
	"github.com/okian/rostra/internal/domain/shortid"
	"github.com/okian/rostra/pkg/metrics"
)

// tokenPattern extracts the first short-id token from a free-text reply.
var tokenPattern = regexp.MustCompile(`\bM\d+\b`)

// Builder renders assignment prompts from a scoring weight table.
type Builder struct {
	weights scoring.Weights
}

// NewBuilder creates a Builder rendering the given weight table.
func NewBuilder(w scoring.Weights) *Builder {
	return &Builder{weights: w}
}

// Build renders the task, phase, and short-id roster lines along with
// the selection rules, and returns the reverse map needed to resolve
// the reply. The external step is asked to answer with a bare token or
// NONE.
func (b *Builder) Build(task model.CandidateTask, phase model.Phase, roster []model.Member) (string, shortid.Map) {
	lines, m := shortid.Encode(roster)

	var sb strings.Builder

	sb.WriteString("task_title: ")
	sb.WriteString(task.Title)
	sb.WriteString("\n")

	if task.Description != "" {
		sb.WriteString("task_description: ")
		sb.WriteString(task.Description)
		sb.WriteString("\n")
	}

	sb.WriteString("project_phase: ")
	sb.WriteString(phase.DisplayName())
	sb.WriteString("\n\ncandidates:\n")

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(b.rules())
	sb.WriteString("\nAnswer with exactly one candidate token (e.g. M2), or NONE if nobody fits.\n")

	return sb.String(), m
}

// Resolve extracts the first short-id token from the reply and decodes
// it. A reply without a token, or with a token Encode never produced,
// fails with a distinguishable error the caller maps to "no assignee".
func (b *Builder) Resolve(reply string, m shortid.Map) (string, error) {
	token := tokenPattern.FindString(reply)
	if token == "" {
		metrics.RecordUnknownToken()
		return "", fmt.Errorf("%w: %q", ErrNoToken, reply)
	}

	id, err := shortid.Decode(token, m)
	if err != nil {
		metrics.RecordUnknownToken()
		return "", err
	}
	return id, nil
}

// rules renders the selection rules from the weight table.
func (b *Builder) rules() string {
	return fmt.Sprintf(
		"Selection rules:\n"+
			"- +%.1f when the candidate's role fits the project phase.\n"+
			"- +%.1f when the candidate's role fits the task text.\n"+
			"- -%.1f per task the candidate already carries.\n"+
			"- -%.1f when the candidate is marked [BUSY].\n"+
			"Pick the highest total; only answer a token when the total is above zero.\n",
		b.weights.PhaseFitBonus,
		b.weights.TaskFitBonus,
		b.weights.TaskLoadPenalty,
		b.weights.OverworkedPenalty,
	)
}
