package targets_test

import (
	"math"
	"testing"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/targets"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given the organizational defaults", t, func() {
		defaults := targets.Defaults()

		Convey("Then they should be 30/210/900", func() {
			So(defaults.Daily, ShouldEqual, 30)
			So(defaults.Weekly, ShouldEqual, 210)
			So(defaults.Monthly, ShouldEqual, 900)
			So(defaults.IsCustom, ShouldBeFalse)
		})

		Convey("When no override exists", func() {
			got := targets.Resolve(nil, defaults)

			Convey("Then the defaults should be used and not marked custom", func() {
				So(got, ShouldResemble, targets.Set{Daily: 30, Weekly: 210, Monthly: 900})
			})
		})

		Convey("When a complete override exists", func() {
			override := &targets.Set{Daily: 10, Weekly: 70, Monthly: 300}
			got := targets.Resolve(override, defaults)

			Convey("Then it should be returned unchanged and marked custom", func() {
				So(got, ShouldResemble, targets.Set{Daily: 10, Weekly: 70, Monthly: 300, IsCustom: true})
			})

			Convey("And the caller's override should not be mutated", func() {
				So(override.IsCustom, ShouldBeFalse)
			})
		})

		Convey("When the override has a zero, negative or non-finite field", func() {
			cases := []targets.Set{
				{Daily: 0, Weekly: 70, Monthly: 300},
				{Daily: 10, Weekly: -1, Monthly: 300},
				{Daily: 10, Weekly: 70},
				{Daily: math.NaN(), Weekly: 70, Monthly: 300},
				{Daily: 10, Weekly: 70, Monthly: math.Inf(1)},
			}

			Convey("Then the defaults should win", func() {
				for _, c := range cases {
					override := c
					got := targets.Resolve(&override, defaults)
					So(got, ShouldResemble, targets.Set{Daily: 30, Weekly: 210, Monthly: 900})
				}
			})
		})

		Convey("When the defaults themselves are broken", func() {
			got := targets.Resolve(nil, targets.Set{Daily: 0, Weekly: 140, Monthly: -5})

			Convey("Then every field should still be positive", func() {
				So(got.Valid(), ShouldBeTrue)
				So(got.Daily, ShouldEqual, targets.DefaultDaily)
				So(got.Weekly, ShouldEqual, 140)
				So(got.Monthly, ShouldEqual, targets.DefaultMonthly)
				So(got.IsCustom, ShouldBeFalse)
			})
		})

		Convey("When resolving arbitrary inputs", func() {
			values := []float64{-10, -0.5, 0, 0.5, 1, 30, 900, math.NaN(), math.Inf(1), math.Inf(-1)}

			Convey("Then the result should always have three positive fields", func() {
				for _, a := range values {
					for _, b := range values {
						override := &targets.Set{Daily: a, Weekly: b, Monthly: a}
						got := targets.Resolve(override, targets.Set{Daily: b, Weekly: a, Monthly: b})
						So(got.Valid(), ShouldBeTrue)
						So(got.IsCustom, ShouldEqual, override.Valid())
					}
				}
			})
		})
	})
}

func TestSetFor(t *testing.T) {
	Convey("Given a target set", t, func() {
		s := targets.Set{Daily: 1, Weekly: 2, Monthly: 3}

		Convey("Then each period should map to its field", func() {
			So(s.For(model.PeriodDaily), ShouldEqual, 1)
			So(s.For(model.PeriodWeekly), ShouldEqual, 2)
			So(s.For(model.PeriodMonthly), ShouldEqual, 3)
			So(s.For(model.Period("yearly")), ShouldEqual, 0)
		})
	})
}

func TestResolver(t *testing.T) {
	Convey("Given a resolver with configured defaults", t, func() {
		r := targets.NewResolver(targets.WithDefaults(targets.Set{Daily: 40, Weekly: 280, Monthly: 1200}))

		Convey("When the override record is absent", func() {
			got := r.ResolveRecord(nil)
			So(got, ShouldResemble, targets.Set{Daily: 40, Weekly: 280, Monthly: 1200})
		})

		Convey("When the override record is complete", func() {
			got := r.ResolveRecord(&model.TargetOverride{UserID: "u1", Daily: 5, Weekly: 35, Monthly: 150})
			So(got, ShouldResemble, targets.Set{Daily: 5, Weekly: 35, Monthly: 150, IsCustom: true})
		})

		Convey("When the override record is partial", func() {
			got := r.ResolveRecord(&model.TargetOverride{UserID: "u1", Daily: 5})
			So(got.IsCustom, ShouldBeFalse)
			So(got.Monthly, ShouldEqual, 1200)
		})
	})

	Convey("Given a resolver with no options", t, func() {
		r := targets.NewResolver()
		So(r.Defaults(), ShouldResemble, targets.Defaults())
	})
}
