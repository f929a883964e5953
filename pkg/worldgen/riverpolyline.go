package worldgen

import (
	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/terrain"
)

// RiverPolyline walks FlowsTo chains from river-source sites (land sites
// touching a river edge that no other river site flows into) down to the
// sea or a lake, returning ordered centroid polylines purely for
// rendering. It derives entirely from already-computed FlowsTo data and
// never alters hydrology.
func RiverPolyline(snap *Snapshot) [][]geometry.Point {
	touchesRiver := make(map[int]bool)
	for _, idx := range snap.Rivers {
		e := snap.Edges[idx]
		touchesRiver[e.A] = true
		touchesRiver[e.B] = true
	}

	fedBy := make(map[int]bool) // site ids some other river site flows into
	for i := range snap.Cells {
		if !touchesRiver[i] {
			continue
		}
		if target := snap.Cells[i].FlowsTo; target != terrain.NoSite {
			fedBy[target] = true
		}
	}

	var polylines [][]geometry.Point
	for i := range snap.Cells {
		if !touchesRiver[i] || fedBy[i] {
			continue
		}
		var line []geometry.Point
		cur := i
		seen := map[int]bool{}
		for cur != terrain.NoSite && !seen[cur] {
			seen[cur] = true
			line = append(line, snap.Cells[cur].Centroid)
			if !snap.Cells[cur].IsLand {
				break
			}
			cur = snap.Cells[cur].FlowsTo
		}
		if len(line) > 1 {
			polylines = append(polylines, line)
		}
	}
	return polylines
}
