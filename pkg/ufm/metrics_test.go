package ufm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fivetwenty-io/ufm/pkg/ufm"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/ufmRest/resources/pkeys":                   "resources/pkeys",
		"/ufmRest/resources/pkeys/0x7fff":            "resources/pkeys",
		"/ufmRest/resources/pkeys/0x5?qos_conf=true": "resources/pkeys",
		"/ufmRest/resources/ports":                   "resources/ports",
		"/ufmRest/actions/remove_guids_from_pkey":    "actions/remove_guids_from_pkey",
		"/ufmRest/app/ufm_version":                   "app/ufm_version",
	}

	for path, expected := range tests {
		assert.Equal(t, expected, ufm.ResourceName(path), path)
	}
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	collector, err := ufm.NewMetricsCollector(registry)
	require.NoError(t, err)

	chain := ufm.NewInterceptorChain()
	collector.Register(chain)

	ctx := context.Background()
	exchange := func(method, path string, resp *ufm.Response) {
		req := &ufm.Request{Method: method, Path: path}
		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, resp))
	}

	exchange("GET", "/ufmRest/resources/pkeys/0x5", &ufm.Response{StatusCode: 200})
	exchange("GET", "/ufmRest/resources/pkeys/0x6", &ufm.Response{StatusCode: 200})
	exchange("DELETE", "/ufmRest/resources/pkeys/0x6", &ufm.Response{StatusCode: 404})
	exchange("GET", "/ufmRest/resources/ports", &ufm.Response{Error: context.DeadlineExceeded})

	assert.InDelta(t, 2, testutil.ToFloat64(collector.Requests.WithLabelValues("GET", "resources/pkeys", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.Requests.WithLabelValues("DELETE", "resources/pkeys", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.Requests.WithLabelValues("GET", "resources/ports", "error")), 0)

	expected := `
# HELP ufm_client_requests_total Total number of UFM API requests, labeled by method, resource, and HTTP status code.
# TYPE ufm_client_requests_total counter
ufm_client_requests_total{code="200",method="GET",resource="resources/pkeys"} 2
ufm_client_requests_total{code="404",method="DELETE",resource="resources/pkeys"} 1
ufm_client_requests_total{code="error",method="GET",resource="resources/ports"} 1
`
	err = testutil.GatherAndCompare(registry, strings.NewReader(expected), "ufm_client_requests_total")
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)

	var histogram *dto.MetricFamily

	for _, family := range families {
		if family.GetName() == "ufm_client_request_duration_seconds" {
			histogram = family
		}
	}

	require.NotNil(t, histogram)
	assert.Equal(t, dto.MetricType_HISTOGRAM, histogram.GetType())

	var samples uint64
	for _, metric := range histogram.GetMetric() {
		samples += metric.GetHistogram().GetSampleCount()
	}

	assert.Equal(t, uint64(4), samples)
}

func TestNewMetricsCollector_Reregister(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	first, err := ufm.NewMetricsCollector(registry)
	require.NoError(t, err)

	second, err := ufm.NewMetricsCollector(registry)
	require.NoError(t, err)

	assert.Same(t, first.Requests, second.Requests)
	assert.Same(t, first.Durations, second.Durations)
}
