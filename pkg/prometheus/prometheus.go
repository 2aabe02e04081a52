package prometheus

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinebase_api_requests_total",
			Help: "Count of backend API requests",
		},
		[]string{"operation", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinebase_api_request_duration_seconds",
			Help:    "Time taken by backend API requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)
	RequestFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinebase_api_failures_total",
			Help: "Count of backend API transport failures",
		},
		[]string{"operation"},
	)
	ActiveFetches = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinebase_active_fetches_total",
			Help: "Current number of in-flight list fetches",
		},
	)

	ListRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinebase_list_refreshes_total",
			Help: "Count of list fetches issued after filter changes",
		},
		[]string{"kind"},
	)

	UploadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinebase_upload_bytes_total",
			Help: "Total photo bytes uploaded",
		},
	)

	ThumbnailFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinebase_thumbnail_fetches_total",
			Help: "Count of photo downloads for card display",
		},
		[]string{"result"}, // cached, fetched, error
	)
)

func Init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDuration,
		RequestFailures,
		ActiveFetches,
		ListRefreshes,
		UploadBytes,
		ThumbnailFetches,
	)
}
