package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseRole(t *testing.T) {
	convey.Convey("Given role names from the users API", t, func() {
		convey.Convey("When parsing canonical names", func() {
			for _, r := range model.Roles() {
				got, err := model.ParseRole(string(r))
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, r)
			}
		})

		convey.Convey("When parsing loosely formatted names", func() {
			got, err := model.ParseRole("super-admin")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, model.RoleSuperAdmin)

			got, err = model.ParseRole(" Team Head ")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, model.RoleTeamHead)

			got, err = model.ParseRole("salesperson")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, model.RoleSalesperson)
		})

		convey.Convey("When parsing an unknown name", func() {
			_, err := model.ParseRole("manager")
			convey.So(errors.Is(err, model.ErrUnknownRole), convey.ShouldBeTrue)
			convey.So(model.Role("manager").Valid(), convey.ShouldBeFalse)
		})
	})
}

func TestParsePeriodAndMetric(t *testing.T) {
	convey.Convey("Given period and metric names", t, func() {
		p, err := model.ParsePeriod("Monthly")
		convey.So(err, convey.ShouldBeNil)
		convey.So(p, convey.ShouldEqual, model.PeriodMonthly)

		_, err = model.ParsePeriod("yearly")
		convey.So(errors.Is(err, model.ErrUnknownPeriod), convey.ShouldBeTrue)

		m, err := model.ParseCompetitionMetric("REVENUE")
		convey.So(err, convey.ShouldBeNil)
		convey.So(m, convey.ShouldEqual, model.MetricRevenue)

		_, err = model.ParseCompetitionMetric("calls")
		convey.So(errors.Is(err, model.ErrUnknownMetric), convey.ShouldBeTrue)
	})
}

func TestCompetitionValidate(t *testing.T) {
	convey.Convey("Given competition windows", t, func() {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(72 * time.Hour)

		convey.Convey("Then a forward window is valid", func() {
			c := model.Competition{StartDate: start, EndDate: end}
			convey.So(c.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then a zero-length window is valid", func() {
			c := model.Competition{StartDate: start, EndDate: start}
			convey.So(c.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then an inverted window is rejected", func() {
			c := model.Competition{StartDate: end, EndDate: start}
			convey.So(errors.Is(c.Validate(), model.ErrInvertedWindow), convey.ShouldBeTrue)
		})

		convey.Convey("Then a missing end date is rejected", func() {
			c := model.Competition{StartDate: start}
			convey.So(errors.Is(c.Validate(), model.ErrMissingWindow), convey.ShouldBeTrue)
		})
	})
}

func TestRecordDecoding(t *testing.T) {
	convey.Convey("Given raw JSON from the system of record", t, func() {
		convey.Convey("When decoding a leaderboard row without revenue", func() {
			var e model.RawLeaderboardEntry
			err := json.Unmarshal([]byte(`{"participantId":"p1","user":{"name":"Ana","email":"ana@example.com"},"units":12}`), &e)
			convey.So(err, convey.ShouldBeNil)
			convey.So(e.ParticipantID, convey.ShouldEqual, "p1")
			convey.So(e.User.Name, convey.ShouldEqual, "Ana")
			convey.So(*e.Units, convey.ShouldEqual, 12)
			convey.So(e.Revenue, convey.ShouldBeNil)
		})

		convey.Convey("When decoding a user", func() {
			var u model.User
			err := json.Unmarshal([]byte(`{"id":"u1","firstName":"Ana","lastName":"Lima","role":"ADMIN","createdAt":"2026-01-02T03:04:05Z"}`), &u)
			convey.So(err, convey.ShouldBeNil)
			convey.So(u.Role, convey.ShouldEqual, model.RoleAdmin)
			convey.So(u.FullName(), convey.ShouldEqual, "Ana Lima")
			convey.So(u.CreatedAt.Year(), convey.ShouldEqual, 2026)
		})

		convey.Convey("When a user has only a first name", func() {
			u := model.User{FirstName: "Ana"}
			convey.So(u.FullName(), convey.ShouldEqual, "Ana")
		})
	})
}
