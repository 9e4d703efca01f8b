package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouping-service/internal/domain"
	"grouping-service/internal/metrics"
)

func TestPrometheusCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "")

	collector.RecordDrop("assigned")
	collector.RecordDrop("assigned")
	collector.RecordDrop("unmatched")
	collector.RecordCommit(domain.CommitResultOK)
	collector.RecordCommit(domain.CommitResultDropped)
	collector.SetActiveSessions(3)

	count, err := testutil.GatherAndCount(reg, "grouping_drops_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				label := ""
				if len(metric.GetLabel()) > 0 {
					label = metric.GetLabel()[0].GetValue()
				}
				values[family.GetName()+"/"+label] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[family.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["grouping_drops_total/assigned"])
	assert.Equal(t, 1.0, values["grouping_drops_total/unmatched"])
	assert.Equal(t, 1.0, values["grouping_commits_total/ok"])
	assert.Equal(t, 1.0, values["grouping_commits_total/dropped"])
	assert.Equal(t, 3.0, values["grouping_sessions_active"])
}

func TestPrometheusCollector_CustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "athletica")

	collector.SetActiveSessions(1)

	count, err := testutil.GatherAndCount(reg, "athletica_sessions_active")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNopMetrics(t *testing.T) {
	var collector domain.MetricsCollector = metrics.NewNop()

	assert.NotPanics(t, func() {
		collector.RecordDrop("assigned")
		collector.RecordCommit(domain.CommitResultFailed)
		collector.SetActiveSessions(0)
	})
}
