package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	OutcomeAccepted  = "accepted"
	OutcomeFlagged   = "flagged"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

type MetricsService struct {
	Registry       *prometheus.Registry
	submissions    *prometheus.CounterVec
	outOfRange     *prometheus.CounterVec
	orphansRemoved prometheus.Counter
}

func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	m := &MetricsService{
		Registry: registry,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coldbox_submissions_total",
			Help: "Ice exchange submissions by outcome.",
		}, []string{"outcome"}),
		outOfRange: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coldbox_readings_out_of_range_total",
			Help: "Submitted temperature readings outside the acceptable range.",
		}, []string{"reading", "box_model"}),
		orphansRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coldbox_orphan_photos_removed_total",
			Help: "Unattached photos removed by the janitor.",
		}),
	}
	registry.MustRegister(
		m.submissions,
		m.outOfRange,
		m.orphansRemoved,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *MetricsService) Submission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *MetricsService) OutOfRange(reading, boxModelID string) {
	m.outOfRange.WithLabelValues(reading, boxModelID).Inc()
}

func (m *MetricsService) OrphansRemoved(count int) {
	m.orphansRemoved.Add(float64(count))
}
