package gateway

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records backend calls. A nil *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the gateway collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "content_hub",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Backend calls by method, resource and status (0 for transport failures).",
		}, []string{"method", "resource", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "content_hub",
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Backend call latency by method and resource.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "resource"}),
	}
}

func (m *Metrics) observe(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	resource := resourceLabel(path)
	m.calls.WithLabelValues(method, resource, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

// resourceLabel keeps the first path segment after /api/ so entity ids do
// not become label values: /api/properties/42 -> properties.
func resourceLabel(path string) string {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimPrefix(p, "api/")
	p, _, _ = strings.Cut(p, "?")
	first, _, _ := strings.Cut(p, "/")
	if first == "" {
		return "root"
	}
	return first
}
