// Package metrics defines Prometheus metrics for friendgraph.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/persistorai/friendgraph/internal/graph"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "friendgraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "friendgraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "friendgraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	LoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "friendgraph_load_duration_seconds",
			Help:    "Time spent reading the data file and building the graph",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "friendgraph_analysis_duration_seconds",
			Help:    "Analysis duration in seconds by operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	BFSRuns = prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "friendgraph_bfs_runs_total",
			Help: "Breadth-first traversals run over the graph",
		},
		func() float64 { return float64(graph.Traversals()) },
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "friendgraph_nodes_total",
			Help: "Node count of the loaded graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "friendgraph_edges_total",
			Help: "Edge count of the loaded graph, parallel edges included",
		},
	)

	ComponentCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "friendgraph_components_total",
			Help: "Connected components of the loaded graph",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		LoadDuration, AnalysisDuration, BFSRuns,
		NodeCount, EdgeCount, ComponentCount,
	)
}
