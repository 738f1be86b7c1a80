package scoring_test

import (
	"testing"

	"github.com/okian/rostra/internal/domain/model"
	"github.com/okian/rostra/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func qaRoster() []model.Member {
	return []model.Member{
		{ID: "A", RoleName: "QA Engineer", CurrentTaskCount: 1},
		{ID: "B", RoleName: "Frontend Developer", CurrentTaskCount: 5, IsOverworked: true},
	}
}

func TestScorer_Score(t *testing.T) {
	Convey("Given the canonical scorer", t, func() {
		s := scoring.New()
		task := model.CandidateTask{Title: "Write regression tests", Description: "Cover the login flow"}
		phase := model.Phase{Number: 3, Name: "Testing & Quality Assurance"}

		Convey("When scoring a fitting, lightly loaded member", func() {
			score := s.Score(task, phase, qaRoster()[0])

			Convey("Then phase fit, task fit, and load penalty sum to 4.9", func() {
				So(score, ShouldAlmostEqual, 4.9)
			})
		})

		Convey("When scoring a non-fitting, overworked member", func() {
			score := s.Score(task, phase, qaRoster()[1])

			Convey("Then only penalties apply, summing to -2.5", func() {
				So(score, ShouldAlmostEqual, -2.5)
			})
		})

		Convey("When the phase matches no category", func() {
			neutral := model.Phase{Number: 7, Name: "Miscellaneous"}
			fitting := s.Score(task, neutral, qaRoster()[0])
			nonFitting := s.Score(task, neutral, model.Member{ID: "C", RoleName: "QA Engineer", CurrentTaskCount: 1})

			Convey("Then phase fit contributes exactly zero, never a penalty", func() {
				So(fitting, ShouldAlmostEqual, 2-0.1)
				So(nonFitting, ShouldAlmostEqual, fitting)
			})
		})

		Convey("When an unnamed phase falls back to its display name", func() {
			score := s.Score(task, model.Phase{Number: 4}, qaRoster()[0])

			Convey("Then 'Phase 4' implies no category and only task fit applies", func() {
				So(score, ShouldAlmostEqual, 2-0.1)
			})
		})

		Convey("When comparing phase fit against overworked task fit", func() {
			// Overworked dominance bound: phase fit (3) must beat a
			// task-text-only match on an overworked member (2 - 2 = 0).
			phaseOnly := model.Member{ID: "P", RoleName: "QA Engineer"}
			textOnly := model.Member{ID: "T", RoleName: "QA Engineer", IsOverworked: true}
			textTask := model.CandidateTask{Title: "Verify the release", Description: ""}
			qaPhase := model.Phase{Number: 1, Name: "Quality Gate"}
			neutralPhase := model.Phase{Number: 2, Name: "Everything Else"}

			So(s.Score(model.CandidateTask{Title: "Do a thing"}, qaPhase, phaseOnly), ShouldAlmostEqual, 3)
			So(s.Score(textTask, neutralPhase, textOnly), ShouldAlmostEqual, 0)
		})

		Convey("When scoring is repeated with identical inputs", func() {
			first := s.Score(task, phase, qaRoster()[0])
			for i := 0; i < 100; i++ {
				So(s.Score(task, phase, qaRoster()[0]), ShouldEqual, first)
			}
		})
	})
}

func TestScorer_Rank(t *testing.T) {
	Convey("Given the canonical scorer", t, func() {
		s := scoring.New()
		task := model.CandidateTask{Title: "Write regression tests", Description: "Cover the login flow"}
		phase := model.Phase{Number: 3, Name: "Testing & Quality Assurance"}

		Convey("When ranking the example roster", func() {
			ranked := s.Rank(task, phase, qaRoster())

			Convey("Then candidates come back in descending score order", func() {
				So(ranked, ShouldHaveLength, 2)
				So(ranked[0].MemberID, ShouldEqual, "A")
				So(ranked[1].MemberID, ShouldEqual, "B")
				So(ranked[0].Score, ShouldBeGreaterThan, ranked[1].Score)
			})
		})

		Convey("When two members tie", func() {
			roster := []model.Member{
				{ID: "first", RoleName: "QA Engineer"},
				{ID: "second", RoleName: "Test Analyst"},
			}
			ranked := s.Rank(task, phase, roster)

			Convey("Then roster order breaks the tie", func() {
				So(ranked[0].Score, ShouldEqual, ranked[1].Score)
				So(ranked[0].MemberID, ShouldEqual, "first")
			})
		})

		Convey("When the roster is empty", func() {
			So(s.Rank(task, phase, nil), ShouldBeNil)
		})
	})
}

func TestScorer_Pick(t *testing.T) {
	Convey("Given the canonical scorer", t, func() {
		s := scoring.New()
		task := model.CandidateTask{Title: "Write regression tests", Description: "Cover the login flow"}
		phase := model.Phase{Number: 3, Name: "Testing & Quality Assurance"}

		Convey("When a candidate scores positive", func() {
			id, ok := s.Pick(task, phase, qaRoster())
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "A")
		})

		Convey("When nobody scores strictly positive", func() {
			roster := []model.Member{
				{ID: "X", RoleName: "Accountant", CurrentTaskCount: 3, IsOverworked: true},
				{ID: "Y", RoleName: "Lawyer", CurrentTaskCount: 2},
			}
			neutralTask := model.CandidateTask{Title: "Order team lunch"}
			id, ok := s.Pick(neutralTask, model.Phase{Number: 9, Name: "Misc"}, roster)

			Convey("Then no assignee is returned, by design", func() {
				So(ok, ShouldBeFalse)
				So(id, ShouldBeEmpty)
			})
		})

		Convey("When a candidate scores exactly zero", func() {
			roster := []model.Member{{ID: "Z", RoleName: "Lawyer", CurrentTaskCount: 0}}
			_, ok := s.Pick(model.CandidateTask{Title: "Order team lunch"}, model.Phase{Number: 9, Name: "Misc"}, roster)

			Convey("Then zero is not strictly positive and nobody wins", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the roster is empty", func() {
			_, ok := s.Pick(task, phase, nil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLeastLoaded(t *testing.T) {
	Convey("Given rosters for the fallback rule", t, func() {
		Convey("When members carry different loads", func() {
			roster := []model.Member{
				{ID: "heavy", CurrentTaskCount: 6},
				{ID: "light", CurrentTaskCount: 1},
				{ID: "medium", CurrentTaskCount: 3},
			}
			id, ok := scoring.LeastLoaded(roster)
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "light")
		})

		Convey("When loads tie", func() {
			roster := []model.Member{
				{ID: "first", CurrentTaskCount: 2},
				{ID: "second", CurrentTaskCount: 2},
			}
			id, ok := scoring.LeastLoaded(roster)
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "first")
		})

		Convey("When the roster is empty", func() {
			_, ok := scoring.LeastLoaded(nil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestScorer_WithWeights(t *testing.T) {
	Convey("Given a scorer with a custom weight table", t, func() {
		s := scoring.New(scoring.WithWeights(scoring.Weights{
			PhaseFitBonus:     10,
			TaskFitBonus:      1,
			TaskLoadPenalty:   0.5,
			OverworkedPenalty: 4,
		}))
		task := model.CandidateTask{Title: "Write regression tests"}
		phase := model.Phase{Number: 3, Name: "Testing & Quality Assurance"}
		m := model.Member{ID: "A", RoleName: "QA Engineer", CurrentTaskCount: 2, IsOverworked: true}

		Convey("Then the injected weights drive the sum", func() {
			So(s.Score(task, phase, m), ShouldAlmostEqual, 10+1-1-4)
		})

		Convey("And the table is readable back for rendering", func() {
			So(s.Weights().PhaseFitBonus, ShouldEqual, 10)
		})
	})
}
