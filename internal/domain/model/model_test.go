package model_test

import (
	"testing"

	"github.com/okian/starfest/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func validPayload() model.MatchPayload {
	return model.MatchPayload{
		TeamMode: true,
		Teams: []model.TeamEntry{
			{TeamID: "t1", Score: 10, Rank: 1},
			{TeamID: "t2", Score: 8, Rank: 2},
		},
		Players: []model.PlayerEntry{
			{PlayerID: "p1", Nickname: "Ann", TeamID: "t1", Stars: 6, Rank: 1},
		},
	}
}

func TestMatchPayloadValidate(t *testing.T) {
	Convey("Given a well-formed match payload", t, func() {
		payload := validPayload()

		Convey("Then it validates", func() {
			So(payload.Validate(), ShouldBeNil)
		})

		Convey("When the payload reports nothing at all", func() {
			payload.Teams = nil
			payload.Players = nil
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a team mode payload has no team entries", func() {
			payload.Teams = nil
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a team entry is missing its id", func() {
			payload.Teams[0].TeamID = "  "
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a team entry has a non-positive rank", func() {
			payload.Teams[1].Rank = 0
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a player entry is missing its player id", func() {
			payload.Players[0].PlayerID = ""
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a player entry is missing its team", func() {
			payload.Players[0].TeamID = ""
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When a player entry has negative stars", func() {
			payload.Players[0].Stars = -1
			Convey("Then validation fails", func() {
				So(payload.Validate(), ShouldWrap, model.ErrInvalidPayload)
			})
		})

		Convey("When only players are reported in a non-team-mode match", func() {
			payload.TeamMode = false
			payload.Teams = nil
			Convey("Then it still validates", func() {
				So(payload.Validate(), ShouldBeNil)
			})
		})
	})
}

func TestNewEventStats(t *testing.T) {
	Convey("Given an event roster", t, func() {
		event := model.Event{
			ID:   "e1",
			Name: "Event One",
			Teams: map[string]model.Team{
				"t1": {Name: "Alpha"},
				"t2": {Name: "Beta"},
			},
		}

		Convey("When building fresh stats", func() {
			stats := model.NewEventStats(event)

			Convey("Then there is one zero-valued TeamStats per roster team", func() {
				So(stats.Teams, ShouldHaveLength, 2)
				So(stats.Teams["t1"].Name, ShouldEqual, "Alpha")
				So(stats.Teams["t1"].Points, ShouldEqual, 0)
				So(stats.Teams["t1"].TotalStars, ShouldEqual, 0)
				So(stats.Teams["t1"].MatchesWon, ShouldEqual, 0)
			})

			Convey("And no player records exist yet", func() {
				So(stats.Players, ShouldBeEmpty)
			})
		})
	})
}

func TestEventStatsClone(t *testing.T) {
	Convey("Given populated event stats", t, func() {
		stats := &model.EventStats{
			Teams: map[string]*model.TeamStats{
				"t1": {Name: "Alpha", Points: 3, TotalStars: 10, MatchesWon: 1},
			},
			Players: map[string]*model.PlayerRecord{
				"p1": {
					Nickname: "Ann",
					Teams: map[string]*model.PlayerTeamStats{
						"t1": {MatchesPlayed: 1, TotalStars: 6, Wins: 1, TopThree: 1},
					},
				},
			},
		}

		Convey("When cloning", func() {
			clone := stats.Clone()

			Convey("Then the clone matches the original", func() {
				So(clone.Teams["t1"].Points, ShouldEqual, 3)
				So(clone.Players["p1"].Teams["t1"].Wins, ShouldEqual, 1)
			})

			Convey("And mutating the clone leaves the original untouched", func() {
				clone.Teams["t1"].Points = 99
				clone.Players["p1"].Teams["t1"].Wins = 99
				clone.Players["p1"].Nickname = "Other"
				So(stats.Teams["t1"].Points, ShouldEqual, 3)
				So(stats.Players["p1"].Teams["t1"].Wins, ShouldEqual, 1)
				So(stats.Players["p1"].Nickname, ShouldEqual, "Ann")
			})
		})

		Convey("When cloning a nil stats pointer", func() {
			var nilStats *model.EventStats
			Convey("Then the clone is nil too", func() {
				So(nilStats.Clone(), ShouldBeNil)
			})
		})
	})
}
