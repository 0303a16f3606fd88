package report

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spt_reports_generated_total",
		Help: "Reports generated, by outcome.",
	}, []string{"status"})

	renderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spt_report_render_seconds",
		Help:    "Time to lay out and write one report.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	})
)

func observe(status string, start time.Time) {
	reportsGenerated.WithLabelValues(status).Inc()
	renderSeconds.Observe(time.Since(start).Seconds())
}
