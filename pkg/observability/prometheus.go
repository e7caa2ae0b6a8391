package observability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements every hook interface with Prometheus collectors.
type Prometheus struct {
	layouts         *prometheus.CounterVec
	layoutDuration  *prometheus.HistogramVec
	layoutNodes     prometheus.Histogram
	renders         *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	cacheLookups    *prometheus.CounterVec
	cacheBytes      *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var durationBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// NewPrometheus registers the dskit collectors with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		layouts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dskit_layouts_total",
			Help: "Layouts computed, labelled by kind and status.",
		}, []string{"kind", "status"}),
		layoutDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dskit_layout_duration_seconds",
			Help:    "Layout computation latency.",
			Buckets: durationBuckets,
		}, []string{"kind"}),
		layoutNodes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dskit_layout_nodes",
			Help:    "Node count of laid out documents.",
			Buckets: []float64{2, 4, 6, 8, 16, 32, 64, 128, 256},
		}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dskit_renders_total",
			Help: "Render runs, labelled by formats and status.",
		}, []string{"formats", "status"}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dskit_render_duration_seconds",
			Help:    "Render latency across all requested formats.",
			Buckets: durationBuckets,
		}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dskit_cache_lookups_total",
			Help: "Cache lookups, labelled by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dskit_cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}, []string{"key_type"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dskit_http_requests_total",
			Help: "HTTP requests, labelled by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dskit_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: durationBuckets,
		}, []string{"method", "route"}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *Prometheus) OnLayoutStart(_ context.Context, _ string, nodeCount int) {
	p.layoutNodes.Observe(float64(nodeCount))
}

func (p *Prometheus) OnLayoutComplete(_ context.Context, kind string, d time.Duration, err error) {
	p.layouts.WithLabelValues(kind, status(err)).Inc()
	p.layoutDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *Prometheus) OnRenderStart(context.Context, []string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	p.renders.WithLabelValues(strings.Join(formats, ","), status(err)).Inc()
	p.renderDuration.Observe(d.Seconds())
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheLookups.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheLookups.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (p *Prometheus) OnRequest(_ context.Context, method, route string, code int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	p.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Prometheus)(nil)
	_ CacheHooks    = (*Prometheus)(nil)
	_ ServerHooks   = (*Prometheus)(nil)
)
