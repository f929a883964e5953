package network

import (
	"math"
	"sort"

	"github.com/islandgen/worldgen/pkg/container"
	"github.com/islandgen/worldgen/pkg/terrain"
)

// FindPath runs A* over the network from src to dst, using the indexed
// priority queue keyed by f = g + h with the Euclidean distance between
// centroids as the heuristic (admissible while every edge is class none or
// trail: such land edges never cost less than the straight-line distance
// between their endpoints; road and turnpike multipliers below 1 can bring
// an edge under it). Sites reached only
// through sea neighbors are skipped, since the network never routes across
// water. A trivial src==dst query returns a single-site path at zero
// cost; an unreachable dst is reported as a failed result, not an error.
func FindPath(net *Network, mesh *terrain.Mesh, src, dst int) PathResult {
	if src == dst {
		return PathResult{Success: true, Path: []int{src}, TotalCost: 0}
	}

	goal := mesh.Sites[dst].Centroid
	h := func(i int) float64 { return mesh.Sites[i].Centroid.Dist(goal) }

	gScore := map[int]float64{src: 0}
	parent := map[int]int{}
	parentEdge := map[int]int{}
	visited := map[int]bool{}

	open := container.NewIndexedPriorityQueue[int]()
	open.Push(src, h(src))

	for !open.IsEmpty() {
		cur := open.Pop()
		if cur == dst {
			break
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		for _, eid := range net.Adjacency[cur] {
			e := &net.Edges[eid]
			nb := e.Other(cur)
			if !mesh.Sites[nb].IsLand {
				continue
			}
			tentative := gScore[cur] + e.CurrentCost
			if old, ok := gScore[nb]; !ok || tentative < old {
				gScore[nb] = tentative
				parent[nb] = cur
				parentEdge[nb] = eid
				f := tentative + h(nb)
				if open.Contains(nb) {
					open.DecreaseKey(nb, f)
				} else {
					open.Push(nb, f)
				}
			}
		}
	}

	total, ok := gScore[dst]
	if !ok {
		return PathResult{Success: false, TotalCost: math.Inf(1)}
	}

	var path []int
	var edgeIDs []int
	crossingSet := map[int]bool{}
	for cur := dst; ; {
		path = append(path, cur)
		if cur == src {
			break
		}
		eid := parentEdge[cur]
		edgeIDs = append(edgeIDs, eid)
		for _, cid := range net.Edges[eid].Crossings {
			crossingSet[cid] = true
		}
		cur = parent[cur]
	}
	reverseInts(path)
	reverseInts(edgeIDs)

	crossings := make([]int, 0, len(crossingSet))
	for cid := range crossingSet {
		crossings = append(crossings, cid)
	}
	sort.Ints(crossings)

	return PathResult{
		Success:   true,
		Path:      path,
		TotalCost: total,
		EdgeIDs:   edgeIDs,
		Crossings: crossings,
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
