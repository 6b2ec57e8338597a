// Package metrics mirrors graph-engine statistics and simulation activity into
// Prometheus metrics held in a private registry.
//
// Every method is safe on a nil *Collector, so callers may leave metrics
// unconfigured without guarding each call site.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/giantgraph/core"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "giantgraph"

// Edge sources recorded on EdgesAdded.
const (
	SourceSpring   = "spring"
	SourceRandom   = "random"
	SourceGenerate = "generate"
)

// Collector holds all Prometheus metrics for one process.
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// Simulation activity
	EdgesAdded         *prometheus.CounterVec
	Resets             prometheus.Counter
	ThresholdCrossings prometheus.Counter
	StepDuration       prometheus.Histogram

	// Engine state, refreshed from core.Stats
	Nodes            prometheus.Gauge
	Edges            prometheus.Gauge
	EdgeProbability  prometheus.Gauge
	GiantComponent   prometheus.Gauge
	ExpectedGiant    prometheus.Gauge
	SizeEntropy      prometheus.Gauge
	TotalCycles      prometheus.Gauge
	ComponentsByKind *prometheus.GaugeVec
	AboveThreshold   prometheus.Gauge
	GraphVersion     prometheus.Gauge

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry. An empty namespace
// falls back to DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()

	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}

	c := &Collector{
		registry: registry,
		EdgesAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_added_total",
				Help:      "Total number of undirected edges inserted, by source",
			},
			[]string{"source"},
		),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Total number of engine resets",
		}),
		ThresholdCrossings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "threshold_crossings_total",
			Help:      "Total number of upward giant-component threshold crossings",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Duration of one mutation plus re-analysis",
			Buckets:   prometheus.DefBuckets,
		}),
		Nodes:           gauge("nodes", "Number of nodes in the graph"),
		Edges:           gauge("edges", "Number of canonical edges in the graph"),
		EdgeProbability: gauge("edge_probability", "Edges divided by N(N-1)/2"),
		GiantComponent:  gauge("giant_component_size", "Vertex count of the largest component"),
		ExpectedGiant:   gauge("expected_giant_component_size", "Fixed-point estimate of the giant component size"),
		SizeEntropy:     gauge("component_size_entropy_bits", "Shannon entropy of the component size distribution"),
		TotalCycles:     gauge("cycles", "Sum of independent cycles over all components"),
		ComponentsByKind: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "components",
				Help:      "Number of components per classification",
			},
			[]string{"kind"},
		),
		AboveThreshold: gauge("above_threshold", "1 when edge probability ≥ 1/N"),
		GraphVersion:   gauge("graph_version", "Mutation counter of the current engine"),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	// Register all metrics with the registry
	registry.MustRegister(
		c.EdgesAdded,
		c.Resets,
		c.ThresholdCrossings,
		c.StepDuration,
		c.Nodes,
		c.Edges,
		c.EdgeProbability,
		c.GiantComponent,
		c.ExpectedGiant,
		c.SizeEntropy,
		c.TotalCycles,
		c.ComponentsByKind,
		c.AboveThreshold,
		c.GraphVersion,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveStats copies an engine snapshot into the state gauges.
func (c *Collector) ObserveStats(s core.Stats) {
	if c == nil {
		return
	}
	c.Nodes.Set(float64(s.NodeCount))
	c.Edges.Set(float64(s.EdgeCount))
	c.EdgeProbability.Set(s.EdgeProbability)
	c.GiantComponent.Set(float64(s.GiantComponentSize))
	c.ExpectedGiant.Set(float64(s.ExpectedGiantComponentSize))
	c.SizeEntropy.Set(s.ComponentSizeEntropy)
	c.TotalCycles.Set(float64(s.TotalCycleCount))
	c.GraphVersion.Set(float64(s.Version))
	if s.AboveThreshold {
		c.AboveThreshold.Set(1)
	} else {
		c.AboveThreshold.Set(0)
	}
	c.ComponentsByKind.WithLabelValues(core.KindIsolated.String()).Set(float64(s.TypeCounts.Isolated))
	c.ComponentsByKind.WithLabelValues(core.KindTree.String()).Set(float64(s.TypeCounts.Tree))
	c.ComponentsByKind.WithLabelValues(core.KindUnicyclic.String()).Set(float64(s.TypeCounts.Unicyclic))
	c.ComponentsByKind.WithLabelValues(core.KindMulticyclic.String()).Set(float64(s.TypeCounts.Multicyclic))
}

// EdgeAdded counts n inserted edges from source.
func (c *Collector) EdgeAdded(source string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.EdgesAdded.WithLabelValues(source).Add(float64(n))
}

// ResetObserved counts one engine reset.
func (c *Collector) ResetObserved() {
	if c == nil {
		return
	}
	c.Resets.Inc()
}

// ThresholdCrossed counts one upward threshold crossing.
func (c *Collector) ThresholdCrossed() {
	if c == nil {
		return
	}
	c.ThresholdCrossings.Inc()
}

// ObserveStep records how long one mutation and its re-analysis took.
func (c *Collector) ObserveStep(d time.Duration) {
	if c == nil {
		return
	}
	c.StepDuration.Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
