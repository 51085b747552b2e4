package api

import "github.com/persistorai/friendgraph/internal/domain"

// AnalysisService is the read-only analysis surface used by AnalysisHandler.
type AnalysisService = domain.AnalysisService

// GraphStats is the size information used by HealthHandler.
type GraphStats = domain.GraphStats
