package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/starfest/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithNamespace("testns"),
			metrics.WithSubsystem("testsub"),
			metrics.WithHistogramBuckets([]float64{1, 10, 100}),
		)

		Convey("Then it registers without panicking", func() {
			So(m, ShouldNotBeNil)
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			// Counters with no observations are not exported yet; gathering
			// must still succeed.
			So(families, ShouldNotBeNil)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording through the package helpers", func() {
			metrics.RecordMatchIngested()
			metrics.RecordMatchRejected("invalid_payload")
			metrics.RecordIngestLatency(12.5)
			metrics.RecordSaveDuration(3.0)
			metrics.RecordSaveError()
			metrics.UpdateMatchLogSize(4)
			metrics.UpdateTrackedTeams(2)
			metrics.UpdateTrackedPlayers(7)
			metrics.RecordHTTPRequest("matches", "POST", "200")
			metrics.RecordHTTPRequestDuration("matches", "POST", "200", 1.5)

			Convey("Then the custom registry exposes the metric families", func() {
				families, err := metrics.GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["starfest_stats_matches_ingested_total"], ShouldBeTrue)
				So(names["starfest_stats_matches_rejected_total"], ShouldBeTrue)
				So(names["starfest_stats_match_log_size"], ShouldBeTrue)
				So(names["starfest_stats_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}
