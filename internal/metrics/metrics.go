package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
)

var (
	projectsDesc = prometheus.NewDesc(
		"cohort_projects_total",
		"Number of published projects",
		nil,
		nil,
	)
	submissionsDesc = prometheus.NewDesc(
		"cohort_submissions",
		"Candidate submissions by review status",
		[]string{"status"},
		nil,
	)
	interviewRequestsDesc = prometheus.NewDesc(
		"cohort_interview_requests",
		"Interview requests by follow-up status",
		[]string{"status"},
		nil,
	)
	corruptLoadsDesc = prometheus.NewDesc(
		"cohort_storage_corrupt_loads_total",
		"Loads that found an unparseable stored value and treated it as empty",
		nil,
		nil,
	)

	transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cohort_status_transitions_total",
		Help: "Status changes saved by the repositories",
	}, []string{"entity", "status"})
)

// Collector is a custom Prometheus collector that reads record counts from
// the repositories on each scrape.
type Collector struct {
	db *db.DB
}

// NewCollector returns a collector over database.
func NewCollector(database *db.DB) *Collector {
	return &Collector{db: database}
}

// Describe sends the metric descriptors to the channel.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- projectsDesc
	ch <- submissionsDesc
	ch <- interviewRequestsDesc
	ch <- corruptLoadsDesc
}

// Collect loads the collections and emits their counts as gauges.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	ch <- prometheus.MustNewConstMetric(corruptLoadsDesc, prometheus.CounterValue, float64(c.db.Records.CorruptLoads()))

	overview, err := c.db.Overview(ctx)
	if err != nil {
		slog.Error("failed to collect record metrics", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(projectsDesc, prometheus.GaugeValue, float64(overview.Projects))
	for status, n := range overview.Submissions {
		ch <- prometheus.MustNewConstMetric(submissionsDesc, prometheus.GaugeValue, float64(n), status)
	}
	for status, n := range overview.InterviewRequests {
		ch <- prometheus.MustNewConstMetric(interviewRequestsDesc, prometheus.GaugeValue, float64(n), status)
	}
}

var initOnce sync.Once

// Init registers the collector and the transition counter.
// Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewCollector(database), transitions)
	})
}

// RecordTransition counts a status change saved for entity. It is passed to
// db.Options.OnTransition.
func RecordTransition(entity, status string) {
	transitions.WithLabelValues(entity, status).Inc()
}
