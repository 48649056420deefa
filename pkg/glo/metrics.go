package glo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsStartTimeKey = "metrics_start_time"

// MetricsCollector records request counts and latencies as Prometheus
// metrics. Attach it to an InterceptorChain with Register.
type MetricsCollector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsCollector creates the collector's metrics and registers them
// with registerer.
func NewMetricsCollector(registerer prometheus.Registerer) (*MetricsCollector, error) {
	collector := &MetricsCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glo",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Glo API requests by operation, method and HTTP status (0 for transport errors).",
		}, []string{"operation", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "glo",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Glo API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "method"}),
	}

	for _, c := range []prometheus.Collector{collector.requests, collector.duration} {
		err := registerer.Register(c)
		if err != nil {
			return nil, fmt.Errorf("registering glo client metrics: %w", err)
		}
	}

	return collector, nil
}

// Register adds the collector's interceptors to chain.
func (m *MetricsCollector) Register(chain *InterceptorChain) *InterceptorChain {
	return chain.
		AddRequestInterceptor(m.RequestInterceptor()).
		AddResponseInterceptor(m.ResponseInterceptor())
}

// RequestInterceptor records the request start time.
func (m *MetricsCollector) RequestInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metricsStartTimeKey] = time.Now()

		return nil
	}
}

// ResponseInterceptor counts the response and observes its latency.
func (m *MetricsCollector) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		m.requests.WithLabelValues(req.Operation, req.Method, strconv.Itoa(resp.StatusCode)).Inc()

		if startTime, ok := req.Metadata[metricsStartTimeKey].(time.Time); ok {
			m.duration.WithLabelValues(req.Operation, req.Method).Observe(time.Since(startTime).Seconds())
		}

		return nil
	}
}
