package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/analysis"
	"github.com/persistorai/friendgraph/internal/domain"
	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/metrics"
	"github.com/persistorai/friendgraph/internal/models"
)

// Compile-time check: *AnalysisService must satisfy domain.AnalysisService.
var _ domain.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs traversals and statistics over one immutable graph.
// It holds no mutable state, so concurrent callers need no locking.
type AnalysisService struct {
	g          *graph.Graph
	components int
	log        *logrus.Logger
}

// NewAnalysisService creates an AnalysisService over g.
func NewAnalysisService(g *graph.Graph, log *logrus.Logger) *AnalysisService {
	return &AnalysisService{g: g, components: graph.Components(g), log: log}
}

// NodeCount returns the number of nodes in the graph.
func (s *AnalysisService) NodeCount() int { return s.g.Len() }

// EdgeCount returns the number of edges in the graph, parallel edges included.
func (s *AnalysisService) EdgeCount() int { return s.g.EdgeCount() }

// Report computes the full analysis from source. An empty source selects the
// first node seen in the input.
func (s *AnalysisService) Report(_ context.Context, source string) (*models.Report, error) {
	defer observe("report", time.Now())

	source, err := s.resolveSource(source)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"source": source,
		"nodes":  s.g.Len(),
	}).Debug("analysis.report")

	dist := graph.ShortestDistances(s.g, source)

	paths, err := analysis.PathMetrics(dist)
	if err != nil {
		return nil, fmt.Errorf("path metrics from %s: %w", source, err)
	}

	return &models.Report{
		Nodes:       s.g.Len(),
		Edges:       s.g.EdgeCount(),
		Components:  s.components,
		Source:      source,
		Reached:     len(dist),
		Paths:       paths,
		Degree:      analysis.DegreeDistribution(s.g),
		SecondOrder: analysis.SecondOrderDistribution(s.g),
		Averages:    analysis.AverageDegrees(s.g),
	}, nil
}

// Distances returns the hop distance from source to every reachable node.
func (s *AnalysisService) Distances(_ context.Context, source string) (*models.DistanceResult, error) {
	defer observe("distances", time.Now())

	s.log.WithField("source", source).Debug("analysis.distances")

	if !s.g.Has(source) {
		return nil, fmt.Errorf("%w: %s", models.ErrNodeNotFound, source)
	}

	dist := graph.ShortestDistances(s.g, source)

	return &models.DistanceResult{Source: source, Reached: len(dist), Distances: dist}, nil
}

// Neighbors returns the adjacency list of nodeID.
func (s *AnalysisService) Neighbors(_ context.Context, nodeID string) (*models.NeighborResult, error) {
	s.log.WithField("node_id", nodeID).Debug("analysis.neighbors")

	neighbors, ok := s.g.Neighbors(nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNodeNotFound, nodeID)
	}

	return &models.NeighborResult{ID: nodeID, Degree: len(neighbors), Neighbors: neighbors}, nil
}

// ShortestPath returns one shortest hop path between two nodes.
func (s *AnalysisService) ShortestPath(_ context.Context, fromID, toID string) (*models.PathResult, error) {
	defer observe("shortest_path", time.Now())

	s.log.WithFields(logrus.Fields{
		"from_id": fromID,
		"to_id":   toID,
	}).Debug("analysis.shortest_path")

	for _, id := range []string{fromID, toID} {
		if !s.g.Has(id) {
			return nil, fmt.Errorf("%w: %s", models.ErrNodeNotFound, id)
		}
	}

	path, ok := graph.ShortestPath(s.g, fromID, toID)
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", models.ErrNoPath, fromID, toID)
	}

	return &models.PathResult{From: fromID, To: toID, Hops: len(path) - 1, Path: path}, nil
}

// DegreeHistogram returns the degree distribution of the graph.
func (s *AnalysisService) DegreeHistogram(_ context.Context) (models.Histogram, error) {
	defer observe("degree_histogram", time.Now())

	s.log.Debug("analysis.degree_histogram")

	return analysis.DegreeDistribution(s.g), nil
}

// SecondOrderHistogram returns the distribution of distance-2 reach.
func (s *AnalysisService) SecondOrderHistogram(_ context.Context) (models.Histogram, error) {
	defer observe("second_order_histogram", time.Now())

	s.log.Debug("analysis.second_order_histogram")

	return analysis.SecondOrderDistribution(s.g), nil
}

func (s *AnalysisService) resolveSource(source string) (string, error) {
	if source == "" {
		first, ok := s.g.First()
		if !ok {
			return "", models.ErrEmptyGraph
		}

		return first, nil
	}

	if !s.g.Has(source) {
		return "", fmt.Errorf("%w: %s", models.ErrNodeNotFound, source)
	}

	return source, nil
}

func observe(op string, start time.Time) {
	metrics.AnalysisDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
