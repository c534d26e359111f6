package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byaura_api_requests_total",
			Help: "Arka uca gönderilen toplam API istek sayısı",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "byaura_api_request_duration_seconds",
			Help:    "API istek süresi (saniye)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byaura_cache_hits_total",
			Help: "Önbellek isabet sayısı",
		},
		[]string{"resource"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byaura_cache_misses_total",
			Help: "Önbellek isabet etmeme sayısı",
		},
		[]string{"resource"},
	)

	AutoSaveSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byaura_autosave_submissions_total",
			Help: "Otomatik kayıt denemesi sayısı",
		},
		[]string{"result"},
	)

	SessionRestores = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byaura_session_restores_total",
			Help: "Oturum geri yükleme sayısı",
		},
		[]string{"result"},
	)
)

func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordCacheHit(resource string) {
	CacheHits.WithLabelValues(resource).Inc()
}

func RecordCacheMiss(resource string) {
	CacheMisses.WithLabelValues(resource).Inc()
}

func RecordAutoSave(result string) {
	AutoSaveSubmissions.WithLabelValues(result).Inc()
}

func RecordSessionRestore(result string) {
	SessionRestores.WithLabelValues(result).Inc()
}
