package config_test

import (
	"errors"
	"testing"

	"github.com/okian/salesboard/internal/config"
	"github.com/okian/salesboard/internal/domain/targets"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.DefaultDailyTarget, convey.ShouldEqual, 30)
			convey.So(cfg.DefaultWeeklyTarget, convey.ShouldEqual, 210)
			convey.So(cfg.DefaultMonthlyTarget, convey.ShouldEqual, 900)
			convey.So(cfg.MaxLeaderboardSize, convey.ShouldEqual, 500)
			convey.So(cfg.MaxBatchSize, convey.ShouldEqual, 1000)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the default targets match the built-in organizational targets", func() {
			convey.So(cfg.DefaultTargets(), convey.ShouldResemble, targets.Defaults())
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid values", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":            func(c *config.Config) { c.Addr = "" },
			"zero daily target":     func(c *config.Config) { c.DefaultDailyTarget = 0 },
			"negative weekly":       func(c *config.Config) { c.DefaultWeeklyTarget = -1 },
			"zero leaderboard size": func(c *config.Config) { c.MaxLeaderboardSize = 0 },
			"zero batch size":       func(c *config.Config) { c.MaxBatchSize = 0 },
			"unknown log format":    func(c *config.Config) { c.LogFormat = "xml" },
		}

		for name, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()

			convey.Convey("Then "+name+" is rejected as invalid config", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
