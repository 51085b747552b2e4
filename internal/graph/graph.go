// Package graph holds the undirected acquaintance graph and the traversals
// run over it.
//
// A Graph is built once from parsed records and never mutated afterwards, so
// any number of goroutines may read from it at the same time.
package graph

import (
	"slices"

	"github.com/persistorai/friendgraph/internal/models"
)

// BuildOptions controls how records are folded into adjacency lists.
type BuildOptions struct {
	// DedupeEdges keeps at most one entry per neighbor. By default a pair that
	// lists each other twice gets two parallel entries on both sides.
	DedupeEdges bool

	// KeepEmptyIDs inserts empty identifiers as a node named "". By default
	// empty friend tokens are dropped so an empty friend list adds no edges,
	// and rows with a blank ID are skipped whole.
	KeepEmptyIDs bool
}

// Graph maps each node to its ordered neighbor list.
type Graph struct {
	adj   map[string][]string
	order []string // first-seen order
}

// Build folds records into a symmetric Graph. Every row ID and every listed
// friend gets an entry, possibly with an empty neighbor list.
func Build(records []models.Record, opts BuildOptions) *Graph {
	g := &Graph{adj: make(map[string][]string, len(records))}

	var seen map[[2]string]bool
	if opts.DedupeEdges {
		seen = make(map[[2]string]bool)
	}

	for _, rec := range records {
		if rec.ID == "" && !opts.KeepEmptyIDs {
			continue
		}

		g.ensure(rec.ID)

		for _, friend := range rec.Friends {
			if friend == "" && !opts.KeepEmptyIDs {
				continue
			}

			g.ensure(friend)

			if seen != nil {
				key := [2]string{min(rec.ID, friend), max(rec.ID, friend)}
				if seen[key] {
					continue
				}

				seen[key] = true
			}

			g.adj[friend] = append(g.adj[friend], rec.ID)
			g.adj[rec.ID] = append(g.adj[rec.ID], friend)
		}
	}

	return g
}

func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}

	g.adj[id] = nil
	g.order = append(g.order, id)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Nodes returns every node in first-seen order.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

// First returns the first node seen while building, or false for an empty graph.
func (g *Graph) First() (string, bool) {
	if len(g.order) == 0 {
		return "", false
	}

	return g.order[0], true
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns a copy of id's adjacency list, duplicates included.
func (g *Graph) Neighbors(id string) ([]string, bool) {
	n, ok := g.adj[id]
	if !ok {
		return nil, false
	}

	return slices.Clone(n), true
}

// Degree returns the length of id's adjacency list.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// EdgeCount returns the number of undirected edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	entries := 0
	for _, n := range g.adj {
		entries += len(n)
	}

	return entries / 2
}
