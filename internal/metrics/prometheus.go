package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"grouping-service/internal/domain"
)

// PrometheusCollector реализует domain.MetricsCollector поверх Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	drops          *prometheus.CounterVec
	commits        *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

var _ domain.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus создает сборщик метрик. Если reg равен nil, используется
// prometheus.DefaultRegisterer, пустой namespace заменяется на "grouping".
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "grouping"
	}

	p := &PrometheusCollector{reg: reg, namespace: namespace}
	p.ensureRegistered()
	return p
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.drops = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "drops_total",
			Help:      "Total finished drags by outcome.",
		}, []string{"result"})

		p.commits = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "commits_total",
			Help:      "Total pool assignment commits by result (ok, failed, dropped).",
		}, []string{"result"})

		p.activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "sessions_active",
			Help:      "Current number of open editor sessions.",
		})

		p.reg.MustRegister(p.drops, p.commits, p.activeSessions)
	})
}

// RecordDrop учитывает завершение перетаскивания.
func (p *PrometheusCollector) RecordDrop(result string) {
	p.drops.WithLabelValues(result).Inc()
}

// RecordCommit учитывает результат фиксации назначения.
func (p *PrometheusCollector) RecordCommit(result string) {
	p.commits.WithLabelValues(result).Inc()
}

// SetActiveSessions выставляет число открытых сессий редактора.
func (p *PrometheusCollector) SetActiveSessions(count int) {
	p.activeSessions.Set(float64(count))
}
