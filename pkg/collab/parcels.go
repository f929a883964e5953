package collab

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

// DefaultMaxParcelSites bounds how many contiguous land sites a single
// parcel spans before gridParcelSubdivider starts a new one.
const DefaultMaxParcelSites = 6

// gridParcelSubdivider is the default CadastralSubdivider. It walks land
// sites in ID order and, for each unclaimed one, floods outward across
// land neighbors up to MaxSites sites, stamping the run as one parcel,
// the same "walk the spatial graph, stamp a region, move to the next
// unclaimed cell" shape a tile carver uses to turn a room graph into
// discrete floor regions, applied here to Voronoi cells instead of grid
// tiles.
type gridParcelSubdivider struct {
	MaxSites int
}

// NewGridParcelSubdivider returns a gridParcelSubdivider with the given
// per-parcel site cap, or DefaultMaxParcelSites if maxSites <= 0.
func NewGridParcelSubdivider(maxSites int) CadastralSubdivider {
	if maxSites <= 0 {
		maxSites = DefaultMaxParcelSites
	}
	return &gridParcelSubdivider{MaxSites: maxSites}
}

func (g *gridParcelSubdivider) Subdivide(snap *worldgen.Snapshot) ([]Parcel, error) {
	claimed := make([]bool, len(snap.Cells))
	var parcels []Parcel

	for start, s := range snap.Cells {
		if !s.IsLand || claimed[start] {
			continue
		}
		members := g.floodParcel(snap, start, claimed)
		parcels = append(parcels, Parcel{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprint("parcel", members))),
			Sites:     members,
			Perimeter: boundaryPoints(snap, members),
		})
	}
	return parcels, nil
}

// floodParcel grows a single parcel from start by breadth-first walking
// unclaimed land neighbors, stopping once MaxSites are claimed.
func (g *gridParcelSubdivider) floodParcel(snap *worldgen.Snapshot, start int, claimed []bool) []int {
	queue := []int{start}
	claimed[start] = true
	var members []int

	for len(queue) > 0 && len(members) < g.MaxSites {
		cur := queue[0]
		queue = queue[1:]
		members = append(members, cur)

		for _, nb := range snap.Cells[cur].Neighbors {
			if len(members)+len(queue) >= g.MaxSites {
				break
			}
			if claimed[nb] || !snap.Cells[nb].IsLand {
				continue
			}
			claimed[nb] = true
			queue = append(queue, nb)
		}
	}
	return members
}

// boundaryPoints collects the shared-edge vertices between a member site
// and any non-member (or off-parcel) neighbor, giving a rough perimeter
// suitable for a cadastral overlay without guaranteeing a single ordered
// ring.
func boundaryPoints(snap *worldgen.Snapshot, members []int) []geometry.Point {
	inParcel := make(map[int]bool, len(members))
	for _, m := range members {
		inParcel[m] = true
	}

	seen := make(map[geometry.Point]bool)
	var pts []geometry.Point
	for _, idx := range members {
		for _, ei := range memberEdges(snap, idx) {
			e := snap.Edges[ei]
			other := e.A
			if other == idx {
				other = e.B
			}
			if inParcel[other] {
				continue
			}
			for _, v := range [2]geometry.Point{e.VertA, e.VertB} {
				if !seen[v] {
					seen[v] = true
					pts = append(pts, v)
				}
			}
		}
	}
	return pts
}

// memberEdges returns the indices into snap.Edges touching site idx.
func memberEdges(snap *worldgen.Snapshot, idx int) []int {
	var out []int
	for i, e := range snap.Edges {
		if e.A == idx || e.B == idx {
			out = append(out, i)
		}
	}
	return out
}
