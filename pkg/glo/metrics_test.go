package glo_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/pkg/glo"
)

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	collector, err := glo.NewMetricsCollector(registry)
	require.NoError(t, err)

	chain := collector.Register(glo.NewInterceptorChain())
	ctx := context.Background()

	for _, status := range []int{200, 200, 404} {
		req := &glo.Request{Operation: "boards.get", Method: "GET", Path: "/boards/b1"}

		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &glo.Response{StatusCode: status}))
	}

	families, err := registry.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}

	for _, family := range families {
		if family.GetName() != "glo_client_requests_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}

			assert.Equal(t, "boards.get", labels["operation"])
			assert.Equal(t, "GET", labels["method"])
			counts[labels["status"]] = metric.GetCounter().GetValue()
		}
	}

	assert.InDelta(t, 2, counts["200"], 0)
	assert.InDelta(t, 1, counts["404"], 0)

	histograms, err := testutil.GatherAndCount(registry, "glo_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, histograms)
}

func TestMetricsCollector_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	_, err := glo.NewMetricsCollector(registry)
	require.NoError(t, err)

	_, err = glo.NewMetricsCollector(registry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registering glo client metrics")
}

func TestMetricsCollector_TransportErrorCountsAsZero(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	collector, err := glo.NewMetricsCollector(registry)
	require.NoError(t, err)

	req := &glo.Request{Operation: "user.get", Method: "GET"}
	require.NoError(t, collector.ResponseInterceptor()(context.Background(), req, &glo.Response{Error: context.Canceled}))

	count, err := testutil.GatherAndCount(registry, "glo_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
