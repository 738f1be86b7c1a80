// Package simulate builds roster/allocation snapshots for the CLI:
// either loaded from a YAML file or generated with random but plausible
// members, phases, tasks, and allocations.
package simulate

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/rostra/internal/domain/model"
)

// Snapshot is everything one engine pass needs: roster, phases, the
// tasks to place, and the capacity rows per member.
type Snapshot struct {
	Members     []memberRow     `koanf:"members"`
	Phases      []phaseRow      `koanf:"phases"`
	Tasks       []taskRow       `koanf:"tasks"`
	Allocations []allocationRow `koanf:"allocations"`
	Profiles    []profileRow    `koanf:"profiles"`
}

type memberRow struct {
	ID              string `koanf:"id"`
	Name            string `koanf:"name"`
	Role            string `koanf:"role"`
	RoleDescription string `koanf:"role_description"`
	TaskCount       int    `koanf:"task_count"`
	Overworked      bool   `koanf:"overworked"`
}

type phaseRow struct {
	Number int    `koanf:"number"`
	Name   string `koanf:"name"`
}

type taskRow struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	Phase       int    `koanf:"phase"`
}

type allocationRow struct {
	MemberID string `koanf:"member_id"`
	Hours    string `koanf:"hours"`
	Start    string `koanf:"start"` // RFC 3339 date, optional
	End      string `koanf:"end"`   // RFC 3339 date, optional
}

type profileRow struct {
	MemberID     string  `koanf:"member_id"`
	MaxHours     float64 `koanf:"max_hours"`
	DefaultHours float64 `koanf:"default_hours"`
}

// Load reads a snapshot from a YAML file.
func Load(path string) (*Snapshot, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := k.UnmarshalWithConf("", &snap, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// Roster converts the member rows to the engine's snapshot type.
func (s *Snapshot) Roster() []model.Member {
	roster := make([]model.Member, 0, len(s.Members))
	for _, m := range s.Members {
		roster = append(roster, model.Member{
			ID:               m.ID,
			Name:             m.Name,
			RoleName:         m.Role,
			RoleDescription:  m.RoleDescription,
			CurrentTaskCount: m.TaskCount,
			IsOverworked:     m.Overworked,
		})
	}
	return roster
}

// PhaseByNumber returns the named phase, or a bare "Phase {n}" stand-in
// when the number references nothing.
func (s *Snapshot) PhaseByNumber(n int) model.Phase {
	for _, p := range s.Phases {
		if p.Number == n {
			return model.Phase{Number: p.Number, Name: p.Name}
		}
	}
	return model.Phase{Number: n}
}

// CandidateTasks converts the task rows.
func (s *Snapshot) CandidateTasks() []model.CandidateTask {
	tasks := make([]model.CandidateTask, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, model.CandidateTask{
			Title:       t.Title,
			Description: t.Description,
			PhaseNumber: t.Phase,
		})
	}
	return tasks
}

// ModelAllocations converts the allocation rows. Unparseable dates are
// treated as absent, matching the engine's degrade-don't-fail posture.
func (s *Snapshot) ModelAllocations() []model.Allocation {
	allocs := make([]model.Allocation, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		allocs = append(allocs, model.Allocation{
			MemberID:     a.MemberID,
			HoursPerWeek: a.Hours,
			StartDate:    parseDate(a.Start),
			EndDate:      parseDate(a.End),
		})
	}
	return allocs
}

// ProfileFor returns the member's capacity profile, or nil when none
// exists.
func (s *Snapshot) ProfileFor(memberID string) *model.CapacityProfile {
	for _, p := range s.Profiles {
		if p.MemberID == memberID {
			return &model.CapacityProfile{
				MemberID:            p.MemberID,
				MaxHoursPerWeek:     p.MaxHours,
				DefaultHoursPerWeek: p.DefaultHours,
			}
		}
	}
	return nil
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
