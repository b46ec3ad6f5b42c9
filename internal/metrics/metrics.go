package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fileserver"

const (
	ReasonEmpty   = "empty"
	ReasonFavicon = "favicon"
)

// Metrics counts what the connection loop does. Each instance has its own
// registry so servers in the same process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	suppressed    *prometheus.CounterVec
	responseBytes prometheus.Counter
	panics        prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Requests answered and logged, by status code",
			},
			[]string{"status"},
		),
		suppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suppressed_total",
				Help:      "Connections closed without a response or log entry",
			},
			[]string{"reason"},
		),
		responseBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "response_bytes_total",
				Help:      "Body bytes sent to clients",
			},
		),
		panics: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_total",
				Help:      "Panics recovered while handling a connection",
			},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveResponse(status, size int) {
	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
	m.responseBytes.Add(float64(size))
}

func (m *Metrics) ObserveSuppressed(reason string) {
	m.suppressed.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObservePanic() {
	m.panics.Inc()
}

// Snapshot sums every counter family, keyed by metric name.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		out[mf.GetName()] = sum(mf)
	}
	return out, nil
}

func sum(mf *dto.MetricFamily) float64 {
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	return total
}
