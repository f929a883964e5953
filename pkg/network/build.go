package network

import (
	"math"

	"github.com/islandgen/worldgen/pkg/terrain"
)

// Network is the complete transport graph over a terrain mesh: one
// NetworkEdge per Voronoi edge with two shared vertices, a Crossing on
// every edge that spans a qualifying river, and adjacency lists keyed by
// site id for O(1) traversal.
type Network struct {
	Edges      []NetworkEdge
	Crossings  []Crossing
	Adjacency  map[int][]int // site id -> edge ids touching it
	edgeByPair map[[2]int]int
}

// EdgeBetween returns the edge id connecting a and b, and whether one
// exists.
func (n *Network) EdgeBetween(a, b int) (int, bool) {
	id, ok := n.edgeByPair[canonicalKey(a, b)]
	return id, ok
}

func canonicalKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Build constructs a Network from every shared-vertex edge in mesh: base
// cost from the terrain-derived slope/altitude/water formula, and a
// Crossing wherever the underlying edge is a qualifying river.
func Build(mesh *terrain.Mesh, cfg Config) *Network {
	net := &Network{
		Adjacency:  make(map[int][]int),
		edgeByPair: make(map[[2]int]int),
	}

	for idx, e := range mesh.Edges {
		base := baseCost(mesh, e.A, e.B, cfg)
		ne := NetworkEdge{
			ID:       idx,
			A:        e.A,
			B:        e.B,
			Class:    ClassNone,
			BaseCost: base,
		}

		if e.IsRiver && e.FlowVolume >= cfg.MinRiverFlow {
			riverWidth := math.Log2(e.FlowVolume/cfg.MinRiverFlow+1)
			mid := e.VertA.Add(e.VertB).Scale(0.5)
			cid := len(net.Crossings)
			net.Crossings = append(net.Crossings, Crossing{
				ID:         cid,
				EdgeID:     idx,
				Position:   [2]float64{mid.X, mid.Y},
				RiverWidth: riverWidth,
				MaxFlow:    e.FlowVolume,
				Status:     StatusFord,
			})
			ne.Crossings = append(ne.Crossings, cid)
		}

		ne.CurrentCost = recomputeCost(net, &ne, cfg)
		net.Edges = append(net.Edges, ne)
		net.edgeByPair[canonicalKey(e.A, e.B)] = idx
		net.Adjacency[e.A] = append(net.Adjacency[e.A], idx)
		net.Adjacency[e.B] = append(net.Adjacency[e.B], idx)
	}
	return net
}

// baseCost implements the terrain-derived base cost: a steep flat penalty
// when either endpoint is sea (the edge is never actually routed across,
// since FindPath skips sea neighbors, but it still carries a well-defined
// immutable cost), otherwise a slope- and altitude-weighted multiple of the
// centroid distance.
func baseCost(mesh *terrain.Mesh, a, b int, cfg Config) float64 {
	from, to := mesh.Sites[a], mesh.Sites[b]
	d := from.Centroid.Dist(to.Centroid)
	if !from.IsLand || !to.IsLand {
		return d * cfg.WaterCost
	}
	deltaE := math.Abs(to.Elevation - from.Elevation)
	meanE := (to.Elevation + from.Elevation) / 2
	return d * (1 + cfg.BaseSlopeCost*deltaE) * (1 + cfg.AltitudeCost*meanE)
}

// recomputeCost rebuilds CurrentCost from BaseCost, Class, and the
// penalties of every crossing e carries: currentCost = baseCost *
// mult(class) + sum(crossingPenalty).
func recomputeCost(net *Network, e *NetworkEdge, cfg Config) float64 {
	cost := e.BaseCost * e.Class.multiplier(cfg)
	for _, cid := range e.Crossings {
		c := &net.Crossings[cid]
		if c.Status == StatusBridge {
			cost += 0.1 * cfg.RiverCrossingPenalty
		} else {
			cost += cfg.RiverCrossingPenalty
		}
	}
	return cost
}
