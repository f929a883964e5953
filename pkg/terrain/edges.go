package terrain

import "github.com/islandgen/worldgen/pkg/geometry"

const vertexEpsilon = 1e-6

// BuildEdges extracts one Edge per adjacent site pair (i<j) that share
// exactly two polygon vertices, recording those vertices so downstream
// consumers (river flagging, SVG export) can draw or test the shared
// boundary without re-deriving it from the two cell polygons.
func BuildEdges(mesh *Mesh) {
	mesh.Edges = nil
	for i := range mesh.Sites {
		for _, j := range mesh.Sites[i].Neighbors {
			if j <= i {
				continue
			}
			shared := sharedVertices(mesh.Sites[i].Verts, mesh.Sites[j].Verts)
			if len(shared) < 2 {
				continue
			}
			mesh.Edges = append(mesh.Edges, Edge{
				A: i, B: j,
				VertA: shared[0], VertB: shared[1],
			})
		}
	}
}

func sharedVertices(a, b []geometry.Point) []geometry.Point {
	var shared []geometry.Point
	for _, pa := range a {
		for _, pb := range b {
			if pa.Dist(pb) < vertexEpsilon {
				shared = append(shared, pa)
				break
			}
		}
		if len(shared) >= 2 {
			break
		}
	}
	return shared
}

// FlagRivers marks the FlowsTo edge of every land site whose flow
// accumulation meets riverThreshold as a river, recording the volume that
// flows across it.
func FlagRivers(mesh *Mesh, riverThreshold float64) {
	for i := range mesh.Sites {
		s := &mesh.Sites[i]
		if !s.IsLand || s.FlowsTo == NoSite || s.FlowAccumulation < riverThreshold {
			continue
		}
		target := s.FlowsTo
		for ei := range mesh.Edges {
			e := &mesh.Edges[ei]
			if (e.A == i && e.B == target) || (e.A == target && e.B == i) {
				e.IsRiver = true
				if s.FlowAccumulation > e.FlowVolume {
					e.FlowVolume = s.FlowAccumulation
				}
			}
		}
	}
}
