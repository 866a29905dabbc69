package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/starfest/internal/adapters/repository"
	"github.com/okian/starfest/internal/adapters/storage"
	service "github.com/okian/starfest/internal/app"
	"github.com/okian/starfest/internal/catalog"
	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

const activeEvents = `
events:
  - id: E1
    name: First Starfest
    active: true
    teams:
      T1:
        name: Alpha
      T2:
        name: Beta
`

const inactiveEvents = `
events:
  - id: E1
    name: First Starfest
    active: false
    teams:
      T1:
        name: Alpha
`

func loadCatalog(t *testing.T, content string) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write events file: %v", err)
	}
	cat, err := catalog.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func specMatch() model.MatchPayload {
	return model.MatchPayload{
		TeamMode: true,
		Teams: []model.TeamEntry{
			{TeamID: "T1", Score: 10, Rank: 1},
			{TeamID: "T2", Score: 8, Rank: 2},
		},
		Players: []model.PlayerEntry{
			{PlayerID: "P1", Nickname: "Ann", TeamID: "T1", Stars: 6, Rank: 1},
		},
	}
}

func startService(t *testing.T, cat *catalog.Catalog, dataDir string) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithCatalog(cat),
		service.WithDataDir(dataDir),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	return svc
}

func TestService_SubmitMatch(t *testing.T) {
	Convey("Given a started service for an active event", t, func() {
		ctx := context.Background()
		dataDir := t.TempDir()
		svc := startService(t, loadCatalog(t, activeEvents), dataDir)
		defer svc.Stop()

		Convey("When submitting the reference match", func() {
			snapshot, err := svc.SubmitMatch(ctx, specMatch())
			So(err, ShouldBeNil)

			Convey("Then the snapshot carries the event info", func() {
				So(snapshot.Info.ID, ShouldEqual, "E1")
				So(snapshot.Info.Name, ShouldEqual, "First Starfest")
			})

			Convey("And the team aggregates follow the scoring rules", func() {
				So(snapshot.Stats.Teams["T1"].Points, ShouldEqual, 3)
				So(snapshot.Stats.Teams["T1"].MatchesWon, ShouldEqual, 1)
				So(snapshot.Stats.Teams["T1"].TotalStars, ShouldEqual, 10)
				So(snapshot.Stats.Teams["T2"].Points, ShouldEqual, 2)
				So(snapshot.Stats.Teams["T2"].TotalStars, ShouldEqual, 8)
			})

			Convey("And the player bucket is created with the match's line", func() {
				bucket := snapshot.Stats.Players["P1"].Teams["T1"]
				So(bucket.MatchesPlayed, ShouldEqual, 1)
				So(bucket.TotalStars, ShouldEqual, 6)
				So(bucket.Wins, ShouldEqual, 1)
				So(bucket.TopThree, ShouldEqual, 1)
			})

			Convey("And the match log grew by one", func() {
				So(svc.MatchLogLen(), ShouldEqual, 1)
			})
		})

		Convey("When submitting the identical match twice", func() {
			_, err := svc.SubmitMatch(ctx, specMatch())
			So(err, ShouldBeNil)
			snapshot, err := svc.SubmitMatch(ctx, specMatch())
			So(err, ShouldBeNil)

			Convey("Then everything doubles; there is no implicit dedup", func() {
				So(snapshot.Stats.Teams["T1"].Points, ShouldEqual, 6)
				So(snapshot.Stats.Teams["T1"].MatchesWon, ShouldEqual, 2)
				So(snapshot.Stats.Teams["T1"].TotalStars, ShouldEqual, 20)
				So(snapshot.Stats.Teams["T2"].Points, ShouldEqual, 4)
				So(snapshot.Stats.Teams["T2"].TotalStars, ShouldEqual, 16)
				So(snapshot.Stats.Players["P1"].Teams["T1"].MatchesPlayed, ShouldEqual, 2)
				So(svc.MatchLogLen(), ShouldEqual, 2)
			})
		})

		Convey("When submitting a malformed match", func() {
			payload := specMatch()
			payload.Players[0].PlayerID = ""
			_, err := svc.SubmitMatch(ctx, payload)

			Convey("Then it is rejected as a validation failure", func() {
				So(err, ShouldWrap, model.ErrInvalidPayload)
			})

			Convey("And no log entry or mutation is left behind", func() {
				So(svc.MatchLogLen(), ShouldEqual, 0)
				snapshot, err := svc.CurrentEvent(ctx)
				So(err, ShouldBeNil)
				So(snapshot.Stats.Teams["T1"].TotalStars, ShouldEqual, 0)
				So(snapshot.Stats.Players, ShouldBeEmpty)
			})
		})

		Convey("When the persisted state is restored by a second service", func() {
			_, err := svc.SubmitMatch(ctx, specMatch())
			So(err, ShouldBeNil)
			svc.Stop()

			second := startService(t, loadCatalog(t, activeEvents), dataDir)
			defer second.Stop()

			Convey("Then the accumulated totals survive the restart", func() {
				snapshot, err := second.CurrentEvent(ctx)
				So(err, ShouldBeNil)
				So(snapshot.Stats.Teams["T1"].Points, ShouldEqual, 3)
				So(snapshot.Stats.Players["P1"].Teams["T1"].Wins, ShouldEqual, 1)
				So(second.MatchLogLen(), ShouldEqual, 1)
			})

			Convey("And further matches accumulate on top of the restored state", func() {
				snapshot, err := second.SubmitMatch(ctx, specMatch())
				So(err, ShouldBeNil)
				So(snapshot.Stats.Teams["T1"].Points, ShouldEqual, 6)
				So(second.MatchLogLen(), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a started service with no active event", t, func() {
		ctx := context.Background()
		svc := startService(t, loadCatalog(t, inactiveEvents), t.TempDir())
		defer svc.Stop()

		Convey("When submitting a match", func() {
			_, err := svc.SubmitMatch(ctx, specMatch())

			Convey("Then it fails with no active event", func() {
				So(err, ShouldWrap, service.ErrNoActiveEvent)
			})

			Convey("And the match log was not appended", func() {
				So(svc.MatchLogLen(), ShouldEqual, 0)
			})
		})

		Convey("When querying the current event", func() {
			_, err := svc.CurrentEvent(ctx)

			Convey("Then it fails with no active event", func() {
				So(err, ShouldWrap, service.ErrNoActiveEvent)
			})
		})

		Convey("When querying players and teams", func() {
			_, perr := svc.Player(ctx, "P1")
			_, terr := svc.Team(ctx, "T1")

			Convey("Then both report no active event", func() {
				So(perr, ShouldWrap, service.ErrNoActiveEvent)
				So(terr, ShouldWrap, service.ErrNoActiveEvent)
			})
		})
	})

	Convey("Given a service whose data directory disappears", t, func() {
		ctx := context.Background()
		dataDir := filepath.Join(t.TempDir(), "data")
		svc := startService(t, loadCatalog(t, activeEvents), dataDir)
		defer svc.Stop()

		So(os.RemoveAll(dataDir), ShouldBeNil)

		Convey("When submitting a match", func() {
			_, err := svc.SubmitMatch(ctx, specMatch())

			Convey("Then the storage failure surfaces to the caller", func() {
				So(err, ShouldWrap, storage.ErrSave)
			})

			Convey("And the in-memory store remains authoritative", func() {
				snapshot, err := svc.CurrentEvent(ctx)
				So(err, ShouldBeNil)
				So(snapshot.Stats.Teams["T1"].TotalStars, ShouldEqual, 10)
				So(svc.MatchLogLen(), ShouldEqual, 1)
			})
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a service with one ingested match", t, func() {
		ctx := context.Background()
		svc := startService(t, loadCatalog(t, activeEvents), t.TempDir())
		defer svc.Stop()
		_, err := svc.SubmitMatch(ctx, specMatch())
		So(err, ShouldBeNil)

		Convey("When querying a known player", func() {
			snapshot, err := svc.Player(ctx, "P1")

			Convey("Then the projection is returned", func() {
				So(err, ShouldBeNil)
				So(snapshot.Nickname, ShouldEqual, "Ann")
				So(snapshot.Teams["T1"].TotalStars, ShouldEqual, 6)
			})
		})

		Convey("When querying an unknown player", func() {
			_, err := svc.Player(ctx, "nobody")

			Convey("Then it reports not found", func() {
				So(err, ShouldWrap, repository.ErrPlayerNotFound)
			})
		})

		Convey("When querying a known team", func() {
			snapshot, err := svc.Team(ctx, "T1")

			Convey("Then the aggregates and derived roster are returned", func() {
				So(err, ShouldBeNil)
				So(snapshot.Team.Points, ShouldEqual, 3)
				So(snapshot.Players, ShouldHaveLength, 1)
				So(snapshot.Players[0].Nickname, ShouldEqual, "Ann")
			})
		})

		Convey("When querying an unknown team", func() {
			_, err := svc.Team(ctx, "ghost")

			Convey("Then it reports not found", func() {
				So(err, ShouldWrap, repository.ErrTeamNotFound)
			})
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()
		dataDir := t.TempDir()
		cat := loadCatalog(t, activeEvents)

		Convey("When starting twice", func() {
			svc := startService(t, cat, dataDir)
			defer svc.Stop()

			Convey("Then the second start is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})

		Convey("When constructed without a catalog", func() {
			svc := service.New(service.WithDataDir(dataDir))

			Convey("Then start fails", func() {
				So(svc.Start(ctx), ShouldWrap, service.ErrMissingCatalog)
			})
		})

		Convey("When a custom clock is supplied", func() {
			fixed := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
			gateway, err := storage.New(ctx, dataDir)
			So(err, ShouldBeNil)
			svc := service.New(
				service.WithCatalog(cat),
				service.WithDataDir(dataDir),
				service.WithGateway(gateway),
				service.WithClock(func() time.Time { return fixed }),
			)
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			_, err = svc.SubmitMatch(ctx, specMatch())
			So(err, ShouldBeNil)

			Convey("Then the persisted record carries the clock's timestamp", func() {
				matchLog, _, err := gateway.Restore(ctx)
				So(err, ShouldBeNil)
				So(matchLog, ShouldHaveLength, 1)
				So(matchLog[0].ReportedAt.Equal(fixed), ShouldBeTrue)
				So(matchLog[0].ID, ShouldNotBeEmpty)
			})
		})
	})
}
