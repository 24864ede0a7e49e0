package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SearchSourceLive     = "live"
	SearchSourceFallback = "fallback"
)

var (
	SearchesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applyai_searches_total",
			Help: "Total number of job searches, labeled by result source.",
		},
		[]string{"source"},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "applyai_applications_total",
			Help: "Total number of application records created.",
		},
	)
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applyai_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ExternalSearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "applyai_external_search_duration_seconds",
			Help:    "Duration of calls to the external job provider.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SearchesCounter)
		prometheus.MustRegister(ApplicationsCounter)
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(ExternalSearchDuration)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
