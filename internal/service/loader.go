// Package service provides the operations the CLI and HTTP API run against a
// loaded acquaintance graph.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/ingest"
	"github.com/persistorai/friendgraph/internal/metrics"
	"github.com/persistorai/friendgraph/internal/models"
)

// Loader reads a data file and builds the graph from it.
type Loader struct {
	log *logrus.Logger
}

// NewLoader creates a Loader.
func NewLoader(log *logrus.Logger) *Loader {
	return &Loader{log: log}
}

// Load parses path with schema and builds the graph. The first malformed row
// aborts the load.
func (l *Loader) Load(ctx context.Context, path string, schema models.Schema, opts graph.BuildOptions) (*graph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	records, err := ingest.ReadFile(path, schema)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("load").Inc()

		return nil, fmt.Errorf("loading graph: %w", err)
	}

	if !opts.KeepEmptyIDs {
		if blank := countBlankIDs(records); blank > 0 {
			l.log.WithFields(logrus.Fields{
				"path": path,
				"rows": blank,
			}).Warn("graph.blank_ids_skipped")
		}
	}

	g := graph.Build(records, opts)
	components := graph.Components(g)

	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.NodeCount.Set(float64(g.Len()))
	metrics.EdgeCount.Set(float64(g.EdgeCount()))
	metrics.ComponentCount.Set(float64(components))

	l.log.WithFields(logrus.Fields{
		"path":       path,
		"records":    len(records),
		"nodes":      g.Len(),
		"edges":      g.EdgeCount(),
		"components": components,
		"dedupe":     opts.DedupeEdges,
		"duration":   time.Since(start).String(),
	}).Info("graph.loaded")

	return g, nil
}

func countBlankIDs(records []models.Record) int {
	n := 0
	for _, rec := range records {
		if rec.ID == "" {
			n++
		}
	}

	return n
}
