package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()
	a.Exports.WithLabelValues("csv", "success").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(a.Exports.WithLabelValues("csv", "success")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.Exports.WithLabelValues("csv", "success")), 0)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(a.PageRenders))
}
