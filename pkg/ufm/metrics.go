package ufm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsStartTimeKey = "metrics_start_time"

// MetricsCollector records Prometheus metrics for UFM API calls. Wire it
// into a client with Interceptors.
type MetricsCollector struct {
	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec
}

// NewMetricsCollector registers the client metrics against reg, defaulting to
// the global Prometheus registry when nil. Registering twice against the same
// registry reuses the existing collectors.
func NewMetricsCollector(reg prometheus.Registerer) (*MetricsCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ufm_client_requests_total",
		Help: "Total number of UFM API requests, labeled by method, resource, and HTTP status code.",
	}, []string{"method", "resource", "code"})

	err := reg.Register(requests)
	if err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("registering ufm_client_requests_total: %w", err)
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("ufm_client_requests_total registered with unexpected type %T", are.ExistingCollector)
		}

		requests = existing
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ufm_client_request_duration_seconds",
		Help:    "UFM API request latency in seconds.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "resource"})

	err = reg.Register(durations)
	if err != nil {
		are := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("registering ufm_client_request_duration_seconds: %w", err)
		}

		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("ufm_client_request_duration_seconds registered with unexpected type %T", are.ExistingCollector)
		}

		durations = existing
	}

	return &MetricsCollector{
		Requests:  requests,
		Durations: durations,
	}, nil
}

// Register adds the collector's interceptors to chain.
func (c *MetricsCollector) Register(chain *InterceptorChain) {
	chain.AddRequestInterceptor(c.RequestInterceptor())
	chain.AddResponseInterceptor(c.ResponseInterceptor())
}

// RequestInterceptor records the request start time.
func (c *MetricsCollector) RequestInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metricsStartTimeKey] = time.Now()

		return nil
	}
}

// ResponseInterceptor records the request count and latency.
func (c *MetricsCollector) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		resource := ResourceName(req.Path)

		code := "error"
		if resp.StatusCode > 0 {
			code = strconv.Itoa(resp.StatusCode)
		}

		c.Requests.WithLabelValues(req.Method, resource, code).Inc()

		if start, ok := req.Metadata[metricsStartTimeKey].(time.Time); ok {
			c.Durations.WithLabelValues(req.Method, resource).Observe(time.Since(start).Seconds())
		}

		return nil
	}
}

// ResourceName reduces a UFM API path to a low-cardinality label, e.g.
// "/ufmRest/resources/pkeys/0x7fff?qos_conf=true" becomes "resources/pkeys".
func ResourceName(path string) string {
	path, _, _ = strings.Cut(path, "?")
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimPrefix(path, "ufmRest/")

	segments := strings.Split(path, "/")
	if len(segments) > 2 {
		segments = segments[:2]
	}

	return strings.Join(segments, "/")
}
