package capacity_test

import (
	"testing"
	"time"

	"github.com/okian/rostra/internal/domain/capacity"
	"github.com/okian/rostra/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregator_Utilization(t *testing.T) {
	Convey("Given an aggregator and an as-of date", t, func() {
		agg := capacity.New()
		asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

		Convey("When active allocations sum past the maximum", func() {
			allocs := []model.Allocation{
				{MemberID: "m1", HoursPerWeek: "20", EndDate: datePtr(2026, time.June, 1)},
				{MemberID: "m1", HoursPerWeek: "25", EndDate: nil},
			}
			profile := &model.CapacityProfile{MemberID: "m1", MaxHoursPerWeek: 40, DefaultHoursPerWeek: 40}

			u := agg.Utilization("m1", allocs, profile, asOf)

			Convey("Then 45 of 40 hours reads as 112.5% over-allocated with zero available", func() {
				So(u.AllocatedHours.String(), ShouldEqual, "45")
				So(u.AvailableHours.String(), ShouldEqual, "0")
				So(u.UtilizationPercent.StringFixed(1), ShouldEqual, "112.5")
				So(u.IsOverAllocated, ShouldBeTrue)
			})
		})

		Convey("When allocations have expired", func() {
			allocs := []model.Allocation{
				{MemberID: "m1", HoursPerWeek: "15", EndDate: datePtr(2026, time.February, 28)},
				{MemberID: "m1", HoursPerWeek: "10", EndDate: datePtr(2026, time.March, 2)},
				{MemberID: "m1", HoursPerWeek: "5", EndDate: nil},
			}

			u := agg.Utilization("m1", allocs, nil, asOf)

			Convey("Then only the on-or-after-as-of and open-ended rows count", func() {
				So(u.AllocatedHours.String(), ShouldEqual, "15")
				So(u.AvailableHours.String(), ShouldEqual, "25")
				So(u.IsOverAllocated, ShouldBeFalse)
			})
		})

		Convey("When another member's allocations are interleaved", func() {
			allocs := []model.Allocation{
				{MemberID: "m1", HoursPerWeek: "10"},
				{MemberID: "m2", HoursPerWeek: "30"},
			}

			u := agg.Utilization("m1", allocs, nil, asOf)

			Convey("Then they are ignored entirely", func() {
				So(u.AllocatedHours.String(), ShouldEqual, "10")
			})
		})

		Convey("When allocation hours are malformed", func() {
			allocs := []model.Allocation{
				{MemberID: "m1", HoursPerWeek: "not-a-number"},
				{MemberID: "m1", HoursPerWeek: ""},
				{MemberID: "m1", HoursPerWeek: "12.5"},
			}

			u := agg.Utilization("m1", allocs, nil, asOf)

			Convey("Then bad rows count as zero instead of erroring", func() {
				So(u.AllocatedHours.String(), ShouldEqual, "12.5")
			})
		})

		Convey("When the member has no capacity profile", func() {
			u := agg.Utilization("m1", []model.Allocation{{MemberID: "m1", HoursPerWeek: "20"}}, nil, asOf)

			Convey("Then the 40/40 fallback applies", func() {
				So(u.MaxHoursPerWeek.String(), ShouldEqual, "40")
				So(u.DefaultHoursPerWeek.String(), ShouldEqual, "40")
				So(u.UtilizationPercent.StringFixed(1), ShouldEqual, "50.0")
			})
		})

		Convey("When the profile declares zero max hours", func() {
			profile := &model.CapacityProfile{MemberID: "m1", MaxHoursPerWeek: 0, DefaultHoursPerWeek: 40}
			u := agg.Utilization("m1", []model.Allocation{{MemberID: "m1", HoursPerWeek: "10"}}, profile, asOf)

			Convey("Then percentage degrades to zero instead of dividing by zero", func() {
				So(u.UtilizationPercent.IsZero(), ShouldBeTrue)
				So(u.IsOverAllocated, ShouldBeTrue)
			})
		})

		Convey("When the member has no allocations at all", func() {
			u := agg.Utilization("m1", nil, nil, asOf)

			Convey("Then everything is zero except availability", func() {
				So(u.AllocatedHours.IsZero(), ShouldBeTrue)
				So(u.AvailableHours.String(), ShouldEqual, "40")
				So(u.UtilizationPercent.IsZero(), ShouldBeTrue)
				So(u.IsOverAllocated, ShouldBeFalse)
			})
		})

		Convey("When an allocation's hours increase", func() {
			base := []model.Allocation{{MemberID: "m1", HoursPerWeek: "10"}}
			bumped := []model.Allocation{{MemberID: "m1", HoursPerWeek: "17"}}

			before := agg.Utilization("m1", base, nil, asOf)
			after := agg.Utilization("m1", bumped, nil, asOf)

			Convey("Then availability strictly drops and percentage strictly rises", func() {
				So(after.AvailableHours.LessThan(before.AvailableHours), ShouldBeTrue)
				So(after.UtilizationPercent.GreaterThan(before.UtilizationPercent), ShouldBeTrue)
			})
		})

		Convey("When computed twice with identical inputs", func() {
			allocs := []model.Allocation{{MemberID: "m1", HoursPerWeek: "33.3"}}
			first := agg.Utilization("m1", allocs, nil, asOf)
			second := agg.Utilization("m1", allocs, nil, asOf)

			Convey("Then the outputs are identical", func() {
				So(second.AllocatedHours.Equal(first.AllocatedHours), ShouldBeTrue)
				So(second.UtilizationPercent.Equal(first.UtilizationPercent), ShouldBeTrue)
			})
		})
	})

	Convey("Given an aggregator with a custom fallback profile", t, func() {
		agg := capacity.New(capacity.WithFallbackProfile(30, 25))
		asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

		u := agg.Utilization("m1", []model.Allocation{{MemberID: "m1", HoursPerWeek: "15"}}, nil, asOf)

		Convey("Then the injected fallback replaces 40/40", func() {
			So(u.MaxHoursPerWeek.String(), ShouldEqual, "30")
			So(u.DefaultHoursPerWeek.String(), ShouldEqual, "25")
			So(u.UtilizationPercent.StringFixed(1), ShouldEqual, "50.0")
		})
	})
}

func TestAllocation_ActiveAsOf(t *testing.T) {
	Convey("Given the activity window rule", t, func() {
		asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

		Convey("Then open-ended allocations are active", func() {
			So(model.Allocation{}.ActiveAsOf(asOf), ShouldBeTrue)
		})

		Convey("Then end on the as-of date is still active", func() {
			So(model.Allocation{EndDate: datePtr(2026, time.March, 2)}.ActiveAsOf(asOf), ShouldBeTrue)
		})

		Convey("Then end before the as-of date is expired", func() {
			So(model.Allocation{EndDate: datePtr(2026, time.March, 1)}.ActiveAsOf(asOf), ShouldBeFalse)
		})

		Convey("Then a future start date does not exclude the row", func() {
			// Start dates are informational in the current contract.
			So(model.Allocation{StartDate: datePtr(2026, time.April, 1)}.ActiveAsOf(asOf), ShouldBeTrue)
		})
	})
}
