// Package models defines data types shared by the loader, the analysis engine
// and the outer surfaces (CLI and HTTP).
package models

import (
	"sort"
	"strconv"
	"strings"
)

// DistanceMap holds hop counts from a BFS source to every node it reached.
type DistanceMap map[string]int

// Values returns the hop counts in ascending order.
func (d DistanceMap) Values() []int {
	out := make([]int, 0, len(d))
	for _, v := range d {
		out = append(out, v)
	}

	sort.Ints(out)

	return out
}

// Histogram maps an observed integer value to the number of nodes having it.
type Histogram map[int]int

// Keys returns the observed values in ascending order.
func (h Histogram) Keys() []int {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	return keys
}

// String renders the histogram as {k: n, ...} with keys ascending.
func (h Histogram) String() string {
	var b strings.Builder

	b.WriteByte('{')

	for i, k := range h.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Itoa(k))
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(h[k]))
	}

	b.WriteByte('}')

	return b.String()
}

// Total returns the number of nodes counted by the histogram.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}

	return n
}

// PathMetrics summarises a distance multiset.
type PathMetrics struct {
	Max    int     `json:"max"`
	Min    int     `json:"min"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Mean   float64 `json:"mean"`
}

// DegreeAverages holds the per-node means of degree and second-order reach.
type DegreeAverages struct {
	Degree      float64 `json:"degree"`
	SecondOrder float64 `json:"second_order"`
}

// NeighborResult lists the adjacency entries of one node, duplicates included.
type NeighborResult struct {
	ID        string   `json:"id"`
	Degree    int      `json:"degree"`
	Neighbors []string `json:"neighbors"`
}

// DistanceResult is a BFS result tagged with its source.
type DistanceResult struct {
	Source    string      `json:"source"`
	Reached   int         `json:"reached"`
	Distances DistanceMap `json:"distances"`
}

// PathResult is an ordered hop path between two nodes.
type PathResult struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Hops int      `json:"hops"`
	Path []string `json:"path"`
}

// Report is the full set of statistics computed for one graph and source.
type Report struct {
	Nodes       int            `json:"nodes"`
	Edges       int            `json:"edges"`
	Components  int            `json:"components"`
	Source      string         `json:"source"`
	Reached     int            `json:"reached"`
	Paths       PathMetrics    `json:"paths"`
	Degree      Histogram      `json:"degree_distribution"`
	SecondOrder Histogram      `json:"second_order_distribution"`
	Averages    DegreeAverages `json:"averages"`
}
