package simulate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Generation bounds.
const (
	minMembers      = 4
	memberSpread    = 5
	minTasks        = 3
	taskSpread      = 6
	maxTaskCount    = 8
	overworkedEvery = 4
	maxHoursChoices = 3
)

// Role archetypes sampled for generated members. Names and descriptions
// are phrased the way real rosters phrase them so the keyword matcher
// has something to bite on.
var roleArchetypes = []struct {
	role string
	desc string
}{
	{"Backend Engineer", "APIs, databases, and server-side services"},
	{"Frontend Developer", "web UI implementation and styling"},
	{"UX Designer", "wireframes, mockups, and visual design"},
	{"QA Engineer", "test planning, regression coverage, verification"},
	{"Product Manager", "roadmap, requirements, and user research"},
	{"Marketing Lead", "campaigns, outreach, and growth experiments"},
	{"Full Stack Developer", ""},
}

var phaseNames = []string{
	"Research & Discovery",
	"Design & Prototyping",
	"Build Accelerator",
	"Testing & Quality Assurance",
	"Launch & Marketing",
}

var taskArchetypes = []struct {
	title string
	desc  string
	phase int
}{
	{"Interview five target users", "Summarize findings for the roadmap", 1},
	{"Produce onboarding wireframes", "Mockups for the first-run flow", 2},
	{"Implement billing API endpoint", "Server-side work against the database", 3},
	{"Fix signup redirect bug", "", 3},
	{"Write regression tests", "Cover the login flow", 4},
	{"Draft launch campaign brief", "Pricing and outreach plan", 5},
}

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// Generate builds a random but internally consistent snapshot: every
// allocation and profile references a generated member, and every task
// references a generated phase.
func Generate(asOf time.Time) *Snapshot {
	snap := &Snapshot{}

	for i, name := range phaseNames {
		snap.Phases = append(snap.Phases, phaseRow{Number: i + 1, Name: name})
	}

	memberCount := minMembers + randomInt(memberSpread)
	for i := 0; i < memberCount; i++ {
		archetype := roleArchetypes[randomInt(len(roleArchetypes))]
		snap.Members = append(snap.Members, memberRow{
			ID:              uuid.New().String(),
			Name:            fmt.Sprintf("Member %d", i+1),
			Role:            archetype.role,
			RoleDescription: archetype.desc,
			TaskCount:       randomInt(maxTaskCount),
			Overworked:      randomInt(overworkedEvery) == 0,
		})
	}

	taskCount := minTasks + randomInt(taskSpread)
	for i := 0; i < taskCount; i++ {
		archetype := taskArchetypes[randomInt(len(taskArchetypes))]
		snap.Tasks = append(snap.Tasks, taskRow{
			Title:       archetype.title,
			Description: archetype.desc,
			Phase:       archetype.phase,
		})
	}

	hourChoices := []string{"10", "20.5", "32"}
	for _, m := range snap.Members {
		end := asOf.AddDate(0, 0, 7*(1+randomInt(8)))
		snap.Allocations = append(snap.Allocations, allocationRow{
			MemberID: m.ID,
			Hours:    hourChoices[randomInt(maxHoursChoices)],
			Start:    asOf.AddDate(0, 0, -30).Format("2006-01-02"),
			End:      end.Format("2006-01-02"),
		})

		if randomInt(2) == 0 {
			snap.Profiles = append(snap.Profiles, profileRow{
				MemberID:     m.ID,
				MaxHours:     40,
				DefaultHours: 40,
			})
		}
	}

	return snap
}
