package observability

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

const namespace = "meshviz"

// PrometheusHooks implements every hook interface by updating Prometheus
// collectors registered on a caller-supplied registry.
type PrometheusHooks struct {
	gatherer prometheus.Gatherer

	scenes        prometheus.Counter
	sceneDuration prometheus.Histogram
	lastScene     *prometheus.GaugeVec

	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec

	cacheOps   *prometheus.CounterVec
	cacheBytes *prometheus.CounterVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewPrometheusHooks creates the collectors and registers them on reg.
func NewPrometheusHooks(reg *prometheus.Registry) *PrometheusHooks {
	h := &PrometheusHooks{
		gatherer: reg,
		scenes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenes_built_total",
			Help:      "Number of scenes built.",
		}),
		sceneDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scene_build_seconds",
			Help:      "Time spent building a scene.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		lastScene: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_scene_elements",
			Help:      "Element counts of the most recently built scene.",
		}, []string{"kind"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render calls by visualization type and outcome.",
		}, []string{"viz_type", "outcome"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_seconds",
			Help:      "Time spent rendering artifacts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"viz_type"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes by key type.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache by key type.",
		}, []string{"key_type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses by route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
	}

	reg.MustRegister(
		h.scenes, h.sceneDuration, h.lastScene,
		h.renders, h.renderDuration,
		h.cacheOps, h.cacheBytes,
		h.requests, h.requestDuration, h.inFlight,
	)
	return h
}

// Handler serves the registry in the Prometheus exposition format.
func (h *PrometheusHooks) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}

func (h *PrometheusHooks) OnSceneStart(context.Context, topology.Params) {}

func (h *PrometheusHooks) OnSceneComplete(_ context.Context, _ topology.Params, c SceneCounts, d time.Duration) {
	h.scenes.Inc()
	h.sceneDuration.Observe(d.Seconds())
	h.lastScene.WithLabelValues("xnodes").Set(float64(c.XNodes))
	h.lastScene.WithLabelValues("vms").Set(float64(c.VMs))
	h.lastScene.WithLabelValues("connections").Set(float64(c.Connections))
}

func (h *PrometheusHooks) OnRenderStart(context.Context, string, []string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, vizType string, _ []string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.renders.WithLabelValues(vizType, outcome).Inc()
	h.renderDuration.WithLabelValues(vizType).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inFlight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.inFlight.Dec()
	method = strings.ToUpper(method)
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
