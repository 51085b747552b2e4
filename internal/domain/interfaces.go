// Package domain defines the service interfaces shared by the HTTP API and
// the CLI. Consumers depend on these rather than on concrete services.
package domain

import (
	"context"

	"github.com/persistorai/friendgraph/internal/models"
)

// AnalysisService answers questions about the loaded acquaintance graph.
type AnalysisService interface {
	Report(ctx context.Context, source string) (*models.Report, error)
	Distances(ctx context.Context, source string) (*models.DistanceResult, error)
	Neighbors(ctx context.Context, nodeID string) (*models.NeighborResult, error)
	ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	DegreeHistogram(ctx context.Context) (models.Histogram, error)
	SecondOrderHistogram(ctx context.Context) (models.Histogram, error)
}

// GraphStats reports the size of the loaded graph.
type GraphStats interface {
	NodeCount() int
	EdgeCount() int
}
