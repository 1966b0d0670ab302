package progress_test

import (
	"math"
	"testing"

	"github.com/okian/salesboard/internal/domain/progress"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEvaluate(t *testing.T) {
	Convey("Given a monthly target of 900", t, func() {
		const target = 900.0

		Convey("When the period total equals the target", func() {
			r := progress.Evaluate(target, target)
			So(r.Percentage, ShouldEqual, 100)
			So(r.Status, ShouldEqual, progress.StatusAchieved)
		})

		Convey("When the period total is 75% of the target", func() {
			r := progress.Evaluate(0.75*target, target)
			So(r.Percentage, ShouldEqual, 75)
			So(r.Status, ShouldEqual, progress.StatusOnTrack)
		})

		Convey("When the period total is 50% of the target", func() {
			r := progress.Evaluate(0.50*target, target)
			So(r.Percentage, ShouldEqual, 50)
			So(r.Status, ShouldEqual, progress.StatusNeedsPush)
		})

		Convey("When the period total is 49% of the target", func() {
			r := progress.Evaluate(0.49*target, target)
			So(r.Percentage, ShouldAlmostEqual, 49, 1e-9)
			So(r.Status, ShouldEqual, progress.StatusBehind)
		})

		Convey("When the period total exceeds the target", func() {
			r := progress.Evaluate(2500, target)

			Convey("Then the percentage should be capped at 100", func() {
				So(r.Percentage, ShouldEqual, 100)
				So(r.Status, ShouldEqual, progress.StatusAchieved)
				So(r.PeriodTotal, ShouldEqual, 2500)
			})
		})

		Convey("When the period total grows", func() {
			Convey("Then the percentage should never decrease", func() {
				prev := -1.0
				for total := 0.0; total <= 2*target; total += 7.5 {
					r := progress.Evaluate(total, target)
					So(r.Percentage, ShouldBeGreaterThanOrEqualTo, prev)
					if total >= target {
						So(r.Percentage, ShouldEqual, 100)
					}
					prev = r.Percentage
				}
			})
		})
	})

	Convey("Given a zero or missing target", t, func() {
		Convey("Then any total should yield 0% BEHIND", func() {
			for _, total := range []float64{0, 1, 675, 1e9, -3} {
				r := progress.Evaluate(total, 0)
				So(r.Percentage, ShouldEqual, 0)
				So(r.Status, ShouldEqual, progress.StatusBehind)
			}
		})
	})

	Convey("Given malformed inputs", t, func() {
		Convey("When the period total is negative", func() {
			r := progress.Evaluate(-50, 100)
			So(r.PeriodTotal, ShouldEqual, 0)
			So(r.Percentage, ShouldEqual, 0)
			So(r.Status, ShouldEqual, progress.StatusBehind)
		})

		Convey("When the target is negative", func() {
			r := progress.Evaluate(50, -100)
			So(r.Target, ShouldEqual, 0)
			So(r.Percentage, ShouldEqual, 0)
		})

		Convey("When inputs are not finite", func() {
			So(progress.Evaluate(math.NaN(), 100).Percentage, ShouldEqual, 0)
			So(progress.Evaluate(math.Inf(1), 100).Percentage, ShouldEqual, 0)
			So(progress.Evaluate(50, math.Inf(1)).Percentage, ShouldEqual, 0)
			So(progress.Evaluate(50, math.NaN()).Status, ShouldEqual, progress.StatusBehind)
		})
	})
}

func TestStatusFor(t *testing.T) {
	Convey("Given the canonical status table", t, func() {
		Convey("Then boundaries should be inclusive", func() {
			So(progress.StatusFor(100), ShouldEqual, progress.StatusAchieved)
			So(progress.StatusFor(99.999), ShouldEqual, progress.StatusOnTrack)
			So(progress.StatusFor(75), ShouldEqual, progress.StatusOnTrack)
			So(progress.StatusFor(74.999), ShouldEqual, progress.StatusNeedsPush)
			So(progress.StatusFor(50), ShouldEqual, progress.StatusNeedsPush)
			So(progress.StatusFor(49.999), ShouldEqual, progress.StatusBehind)
			So(progress.StatusFor(0), ShouldEqual, progress.StatusBehind)
		})

		Convey("Then the 90% list-view threshold should not exist", func() {
			So(progress.StatusFor(90), ShouldEqual, progress.StatusOnTrack)
		})

		Convey("And Thresholds should return a copy", func() {
			th := progress.Thresholds()
			So(len(th), ShouldEqual, 3)
			th[0].Min = 1
			So(progress.Thresholds()[0].Min, ShouldEqual, 100)
		})
	})
}
