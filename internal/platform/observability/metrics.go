package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_analyses_total",
		Help: "The total number of emotion analyses by primary emotion and outcome",
	}, []string{"emotion", "status"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_cache_hits_total",
		Help: "Total number of analysis result cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_cache_misses_total",
		Help: "Total number of analysis result cache misses",
	})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_store_errors_total",
		Help: "Total number of swallowed key-value store errors by operation",
	}, []string{"op"})

	ClassifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "emotion_classify_duration_seconds",
		Help:    "Duration of classifier inference",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	HistoryEntriesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_history_entries_written_total",
		Help: "Total number of history entries recorded",
	})

	HistoryEntriesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_history_entries_deleted_total",
		Help: "Total number of history entries removed by explicit clear",
	})

	ExpiredEntriesSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emotion_expired_entries_swept_total",
		Help: "Total number of expired store rows removed by the cleanup worker",
	})

	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_api_requests_total",
		Help: "Total number of API requests by endpoint and status code",
	}, []string{"endpoint", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emotion_api_request_duration_seconds",
		Help:    "Duration of API requests by endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
