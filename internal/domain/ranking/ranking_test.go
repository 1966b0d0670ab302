package ranking_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/salesboard/internal/domain/model"
	"github.com/okian/salesboard/internal/domain/ranking"
	"github.com/okian/salesboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func f(v float64) *float64 { return &v }

func ids(entries []types.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ParticipantID
	}
	return out
}

func ranks(entries []types.LeaderboardEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Rank
	}
	return out
}

func TestRank(t *testing.T) {
	Convey("Given participants with a tie on units", t, func() {
		entries := []ranking.RawEntry{
			{ParticipantID: "A", DisplayName: "A", Units: f(10)},
			{ParticipantID: "B", DisplayName: "B", Units: f(20)},
			{ParticipantID: "C", DisplayName: "C", Units: f(20)},
			{ParticipantID: "D", DisplayName: "D", Units: f(5)},
		}

		Convey("When ranking by units", func() {
			got := ranking.Rank(entries, ranking.KindUnits)

			Convey("Then equal values should keep input order and get distinct ranks", func() {
				So(ids(got), ShouldResemble, []string{"B", "C", "A", "D"})
				So(ranks(got), ShouldResemble, []int{1, 2, 3, 4})
				So(got[0].MetricValue, ShouldEqual, 20)
				So(got[3].MetricValue, ShouldEqual, 5)
			})

			Convey("And re-ranking the result should not change it", func() {
				again := ranking.RankValues(got)
				So(again, ShouldResemble, got)
			})
		})

		Convey("When the input order of the tied entries is swapped", func() {
			swapped := []ranking.RawEntry{entries[0], entries[2], entries[1], entries[3]}
			got := ranking.Rank(swapped, ranking.KindUnits)
			So(ids(got), ShouldResemble, []string{"C", "B", "A", "D"})
		})

		Convey("Then the caller's slice should not be reordered", func() {
			_ = ranking.Rank(entries, ranking.KindUnits)
			So(entries[0].ParticipantID, ShouldEqual, "A")
		})
	})

	Convey("Given participants with both metrics", t, func() {
		entries := []ranking.RawEntry{
			{ParticipantID: "A", Units: f(1), Revenue: f(500)},
			{ParticipantID: "B", Units: f(9), Revenue: f(100)},
			{ParticipantID: "C", Units: f(5)},
		}

		Convey("When ranking by revenue", func() {
			got := ranking.Rank(entries, ranking.KindRevenue)

			Convey("Then revenue should order the board and missing revenue should count as zero", func() {
				So(ids(got), ShouldResemble, []string{"A", "B", "C"})
				So(got[2].MetricValue, ShouldEqual, 0)
			})
		})

		Convey("When ranking by units", func() {
			got := ranking.Rank(entries, ranking.KindUnits)
			So(ids(got), ShouldResemble, []string{"B", "C", "A"})
		})
	})

	Convey("Given malformed metric values", t, func() {
		entries := []ranking.RawEntry{
			{ParticipantID: "neg", Units: f(-4)},
			{ParticipantID: "nan", Units: f(math.NaN())},
			{ParticipantID: "ok", Units: f(1)},
			{ParticipantID: "missing"},
		}

		Convey("Then they should count as zero and keep input order among themselves", func() {
			got := ranking.Rank(entries, ranking.KindUnits)
			So(ids(got), ShouldResemble, []string{"ok", "neg", "nan", "missing"})
			So(got[1].MetricValue, ShouldEqual, 0)
			So(got[2].MetricValue, ShouldEqual, 0)
		})
	})

	Convey("Given no participants", t, func() {
		got := ranking.Rank(nil, ranking.KindUnits)

		Convey("Then the leaderboard should be empty", func() {
			So(got, ShouldNotBeNil)
			So(len(got), ShouldEqual, 0)
		})
	})
}

func TestRankValues(t *testing.T) {
	Convey("Given entries carrying stale ranks", t, func() {
		entries := []types.LeaderboardEntry{
			{Rank: 1, ParticipantID: "x", MetricValue: 3},
			{Rank: 2, ParticipantID: "y", MetricValue: 8},
		}

		Convey("When re-ranking", func() {
			got := ranking.RankValues(entries)

			Convey("Then ranks should be recomputed from values", func() {
				So(ids(got), ShouldResemble, []string{"y", "x"})
				So(ranks(got), ShouldResemble, []int{1, 2})
			})

			Convey("And the input should be untouched", func() {
				So(entries[0].ParticipantID, ShouldEqual, "x")
				So(entries[0].Rank, ShouldEqual, 1)
			})
		})
	})
}

func TestTop(t *testing.T) {
	Convey("Given a ranked board of three", t, func() {
		board := ranking.RankValues([]types.LeaderboardEntry{
			{ParticipantID: "a", MetricValue: 3},
			{ParticipantID: "b", MetricValue: 2},
			{ParticipantID: "c", MetricValue: 1},
		})

		So(len(ranking.Top(board, 2)), ShouldEqual, 2)
		So(len(ranking.Top(board, 0)), ShouldEqual, 3)
		So(len(ranking.Top(board, 10)), ShouldEqual, 3)
	})
}

func TestFromRecords(t *testing.T) {
	Convey("Given raw leaderboard rows", t, func() {
		rows := []model.RawLeaderboardEntry{
			{ParticipantID: "p1", User: model.LeaderboardUser{Name: "Ana Lima", Email: "ana@example.com"}, Units: f(3)},
			{ParticipantID: "p2", User: model.LeaderboardUser{Email: "bo@example.com"}, Revenue: f(10)},
			{ParticipantID: "p3"},
		}

		Convey("When adapting them", func() {
			got := ranking.FromRecords(rows)

			Convey("Then display names should fall back from name to email to id", func() {
				So(got[0].DisplayName, ShouldEqual, "Ana Lima")
				So(got[1].DisplayName, ShouldEqual, "bo@example.com")
				So(got[2].DisplayName, ShouldEqual, "p3")
			})

			Convey("And metrics should be carried through", func() {
				So(got[0].Value(ranking.KindUnits), ShouldEqual, 3)
				So(got[1].Value(ranking.KindRevenue), ShouldEqual, 10)
				So(got[1].Value(ranking.KindUnits), ShouldEqual, 0)
			})
		})
	})
}

func TestKinds(t *testing.T) {
	Convey("Given competition metrics", t, func() {
		So(ranking.KindForMetric(model.MetricRevenue), ShouldEqual, ranking.KindRevenue)
		So(ranking.KindForMetric(model.MetricUnits), ShouldEqual, ranking.KindUnits)
		So(ranking.KindForMetric(model.MetricCustomers), ShouldEqual, ranking.KindUnits)
	})

	Convey("Given kind names", t, func() {
		k, err := ranking.ParseKind("revenue")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, ranking.KindRevenue)

		_, err = ranking.ParseKind("points")
		So(errors.Is(err, ranking.ErrUnknownKind), ShouldBeTrue)
	})
}
