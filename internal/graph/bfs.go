package graph

import (
	"sync/atomic"

	"github.com/persistorai/friendgraph/internal/models"
)

// Unbounded disables the depth limit of DistancesWithin.
const Unbounded = -1

var traversals atomic.Uint64

// Traversals returns how many breadth-first traversals DistancesWithin and
// ShortestPath have run in this process.
func Traversals() uint64 {
	return traversals.Load()
}

// ShortestDistances returns the hop count from source to every node reachable
// from it. The source is always present at distance 0. Unreachable nodes are
// absent from the result.
func ShortestDistances(g *Graph, source string) models.DistanceMap {
	return DistancesWithin(g, source, Unbounded)
}

// DistancesWithin runs the same breadth-first traversal as ShortestDistances
// but never expands nodes at maxDepth, so no distance exceeds it.
func DistancesWithin(g *Graph, source string, maxDepth int) models.DistanceMap {
	type item struct {
		id   string
		dist int
	}

	traversals.Add(1)

	distances := models.DistanceMap{}
	visited := map[string]bool{source: true}
	queue := []item{{id: source}}

	// Nodes are marked visited when enqueued, so parallel edges never
	// enqueue a node twice.
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		distances[cur.id] = cur.dist

		if maxDepth != Unbounded && cur.dist >= maxDepth {
			continue
		}

		for _, next := range g.adj[cur.id] {
			if visited[next] {
				continue
			}

			visited[next] = true
			queue = append(queue, item{id: next, dist: cur.dist + 1})
		}
	}

	return distances
}

// ShortestPath returns one shortest hop path from fromID to toID, both ends
// included, or false when toID is unreachable.
func ShortestPath(g *Graph, fromID, toID string) ([]string, bool) {
	if !g.Has(fromID) || !g.Has(toID) {
		return nil, false
	}

	if fromID == toID {
		return []string{fromID}, true
	}

	traversals.Add(1)

	visited := map[string]bool{fromID: true}
	parent := map[string]string{} // child -> parent
	frontier := []string{fromID}
	found := false

	for len(frontier) > 0 && !found {
		var nextFrontier []string

		for _, from := range frontier {
			for _, to := range g.adj[from] {
				if visited[to] {
					continue
				}

				visited[to] = true
				parent[to] = from
				nextFrontier = append(nextFrontier, to)

				if to == toID {
					found = true
				}
			}
		}

		frontier = nextFrontier
	}

	if !found {
		return nil, false
	}

	trail := []string{toID}
	for current := toID; current != fromID; {
		p := parent[current]
		trail = append(trail, p)
		current = p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail, true
}
