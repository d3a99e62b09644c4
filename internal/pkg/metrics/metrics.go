package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry - отдельный реестр Prometheus для сервиса
	Registry = prometheus.NewRegistry()

	// HTTPRequests считает запросы по методу, маршруту и статусу
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration - длительность запросов в секундах
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)

	// ProviderCalls считает обращения к внешним провайдерам матрицы по исходу
	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "matrix_provider_calls_total", Help: "Upstream matrix provider calls by provider and outcome."},
		[]string{"provider", "outcome"},
	)

	// ProviderLatency - время ответа провайдера матрицы
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "matrix_provider_latency_seconds", Help: "Upstream matrix provider latency in seconds.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}},
		[]string{"provider"},
	)

	// CacheLookups - попадания и промахи кешей (matrix, geocode)
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cache_lookups_total", Help: "Cache lookups by cache name and result."},
		[]string{"cache", "result"},
	)

	// RoutesOptimized считает построенные маршруты, degraded - с недостижимыми переездами
	RoutesOptimized = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "routes_optimized_total", Help: "Optimized routes by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// Register регистрирует коллекторы в Registry. Повторные вызовы безопасны.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ProviderCalls)
		Registry.MustRegister(ProviderLatency)
		Registry.MustRegister(CacheLookups)
		Registry.MustRegister(RoutesOptimized)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
