package worldgen

import (
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
)

// Snapshot is the immutable output of a generation pass: the terrain
// fields are never mutated by consumers, while the embedded Network's
// edge classes and crossing statuses mutate under RecordUsage and
// ProcessUpgrades by whichever single holder owns the snapshot.
type Snapshot struct {
	Cells  []terrain.Site
	Edges  []terrain.Edge
	Rivers []int // indices into Edges where IsRiver
	Bounds terrain.Bounds
	Lakes  []terrain.Lake

	Network *network.Network

	SettlementPaths []network.PathResult
}

// riverIndices collects the indices of every river edge, in edge order,
// for the Rivers subset field.
func riverIndices(edges []terrain.Edge) []int {
	var out []int
	for i, e := range edges {
		if e.IsRiver {
			out = append(out, i)
		}
	}
	return out
}
