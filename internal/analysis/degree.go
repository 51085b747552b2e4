package analysis

import (
	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/models"
)

// DegreeDistribution counts nodes per degree. Degree is the adjacency list
// length, so parallel edges count more than once.
func DegreeDistribution(g *graph.Graph) models.Histogram {
	h := models.Histogram{}
	for _, id := range g.Nodes() {
		h[g.Degree(id)]++
	}

	return h
}

// SecondOrderReach returns how many distinct nodes sit exactly two hops from id.
func SecondOrderReach(g *graph.Graph, id string) int {
	n := 0
	for _, d := range graph.DistancesWithin(g, id, 2) {
		if d == 2 {
			n++
		}
	}

	return n
}

// SecondOrderDistribution counts nodes per second-order reach. Nodes that
// reach nothing at distance two are counted under 0.
func SecondOrderDistribution(g *graph.Graph) models.Histogram {
	h := models.Histogram{}
	for _, id := range g.Nodes() {
		h[SecondOrderReach(g, id)]++
	}

	return h
}

// AverageDegrees returns the mean degree and mean second-order reach over all
// nodes. Both are zero for an empty graph.
func AverageDegrees(g *graph.Graph) models.DegreeAverages {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return models.DegreeAverages{}
	}

	var degrees, reach int
	for _, id := range nodes {
		degrees += g.Degree(id)
		reach += SecondOrderReach(g, id)
	}

	n := float64(len(nodes))

	return models.DegreeAverages{
		Degree:      float64(degrees) / n,
		SecondOrder: float64(reach) / n,
	}
}
