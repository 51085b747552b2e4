package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the number of connected components. Parallel edges and
// self-loops do not affect connectivity and are skipped when the adjacency
// lists are copied into a gonum graph.
func Components(g *Graph) int {
	if g.Len() == 0 {
		return 0
	}

	ids := make(map[string]int64, g.Len())
	ug := simple.NewUndirectedGraph()

	for i, id := range g.order {
		ids[id] = int64(i)
		ug.AddNode(simple.Node(int64(i)))
	}

	for _, id := range g.order {
		u := ids[id]

		for _, n := range g.adj[id] {
			v := ids[n]
			if u == v || ug.HasEdgeBetween(u, v) {
				continue
			}

			ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return len(topo.ConnectedComponents(ug))
}
