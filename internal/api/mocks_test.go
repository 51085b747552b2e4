package api_test

import (
	"context"

	"github.com/persistorai/friendgraph/internal/models"
)

// mockAnalysis implements api.AnalysisService for testing.
type mockAnalysis struct {
	reportFn      func(ctx context.Context, source string) (*models.Report, error)
	distancesFn   func(ctx context.Context, source string) (*models.DistanceResult, error)
	neighborsFn   func(ctx context.Context, nodeID string) (*models.NeighborResult, error)
	pathFn        func(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	degreeFn      func(ctx context.Context) (models.Histogram, error)
	secondOrderFn func(ctx context.Context) (models.Histogram, error)
}

func (m *mockAnalysis) Report(ctx context.Context, source string) (*models.Report, error) {
	return m.reportFn(ctx, source)
}

func (m *mockAnalysis) Distances(ctx context.Context, source string) (*models.DistanceResult, error) {
	return m.distancesFn(ctx, source)
}

func (m *mockAnalysis) Neighbors(ctx context.Context, nodeID string) (*models.NeighborResult, error) {
	return m.neighborsFn(ctx, nodeID)
}

func (m *mockAnalysis) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	return m.pathFn(ctx, fromID, toID)
}

func (m *mockAnalysis) DegreeHistogram(ctx context.Context) (models.Histogram, error) {
	return m.degreeFn(ctx)
}

func (m *mockAnalysis) SecondOrderHistogram(ctx context.Context) (models.Histogram, error) {
	return m.secondOrderFn(ctx)
}

// mockStats implements api.GraphStats for testing.
type mockStats struct {
	nodes, edges int
}

func (m mockStats) NodeCount() int { return m.nodes }
func (m mockStats) EdgeCount() int { return m.edges }
