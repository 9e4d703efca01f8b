package metrics

import "grouping-service/internal/domain"

// NopMetrics отбрасывает все метрики. Используется в тестах.
type NopMetrics struct{}

var _ domain.MetricsCollector = (*NopMetrics)(nil)

// NewNop создает сборщик метрик, который ничего не делает.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) RecordDrop(_ string) {}

func (n *NopMetrics) RecordCommit(_ string) {}

func (n *NopMetrics) SetActiveSessions(_ int) {}
