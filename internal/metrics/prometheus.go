package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics agrupa as métricas da camada de persistência
type StoreMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New cria as métricas em um registro próprio (evita colisão entre testes)
func New() *StoreMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &StoreMetrics{
		registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kvstore_operations_total",
				Help: "Total de operações no key-value store por driver, operação e resultado",
			},
			[]string{"driver", "op", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kvstore_operation_seconds",
				Help:    "Duração das operações no key-value store",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"driver", "op"},
		),
	}
}

func (m *StoreMetrics) Observe(driver, op, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(driver, op, result).Inc()
	m.duration.WithLabelValues(driver, op).Observe(elapsed.Seconds())
}

func (m *StoreMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe o registro no formato do Prometheus
func (m *StoreMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
