package validate

import (
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

const epsilon = 1e-6

// Validate runs every universal invariant against a generated Snapshot
// and its TransportNetwork and returns the complete report. Callers that
// want an error instead of a report can pass the result through Require.
func Validate(snap *worldgen.Snapshot) *Report {
	r := &Report{Passed: true}
	checkNeighborSymmetry(snap, r)
	checkCoastalConsistency(snap, r)
	checkElevationSign(snap, r)
	checkFilledGreaterEqual(snap, r)
	checkLakeCoherence(snap, r)
	checkEdgeUniqueness(snap, r)
	checkDrainage(snap, r)
	checkFlowAccumulation(snap, r)
	if snap.Network != nil {
		checkCostNonNegative(snap.Network, r)
	}
	return r
}

func checkNeighborSymmetry(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for a, s := range snap.Cells {
		for _, b := range s.Neighbors {
			found := false
			for _, back := range snap.Cells[b].Neighbors {
				if back == a {
					found = true
					break
				}
			}
			if !found {
				bad++
			}
		}
	}
	r.addHard("NeighborSymmetry", bad == 0, "%d asymmetric neighbor references", bad)
}

func checkCoastalConsistency(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for _, s := range snap.Cells {
		hasSeaNeighbor := false
		for _, nb := range s.Neighbors {
			if !snap.Cells[nb].IsLand {
				hasSeaNeighbor = true
				break
			}
		}
		expected := s.IsLand && hasSeaNeighbor
		if s.IsCoast != expected {
			bad++
		}
	}
	r.addHard("CoastalConsistency", bad == 0, "%d sites violate isCoast <=> isLand && has-sea-neighbor", bad)
}

func checkElevationSign(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for _, s := range snap.Cells {
		if !s.IsLand && s.Elevation >= 0 {
			bad++
		}
		if s.IsLand && s.Elevation < 0 {
			bad++
		}
	}
	r.addHard("ElevationSign", bad == 0, "%d sites violate the land/sea elevation sign rule", bad)
}

func checkFilledGreaterEqual(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for _, s := range snap.Cells {
		if s.IsLand && s.FilledElevation < s.Elevation-epsilon {
			bad++
		}
	}
	r.addHard("FilledGreaterEqualTerrain", bad == 0, "%d land sites have filledElevation < elevation", bad)
}

func checkLakeCoherence(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for _, lake := range snap.Lakes {
		if len(lake.Members) == 0 {
			bad++
			continue
		}
		level := lake.WaterLevel
		memberSet := make(map[int]bool, len(lake.Members))
		for _, m := range lake.Members {
			memberSet[m] = true
		}
		for _, m := range lake.Members {
			s := snap.Cells[m]
			if s.LakeID != lake.ID {
				bad++
				continue
			}
			if diff := s.FilledElevation - level; diff > epsilon || diff < -epsilon {
				bad++
			}
			connected := false
			for _, nb := range s.Neighbors {
				if memberSet[nb] {
					connected = true
					break
				}
			}
			if len(lake.Members) > 1 && !connected {
				bad++
			}
			if m != lake.OutletCell && s.FlowsTo != lake.OutletCell {
				bad++
			}
		}
		if lake.OutletCell != terrain.NoSite {
			outlet := snap.Cells[lake.OutletCell]
			if outlet.FlowsTo != lake.OutletTarget {
				bad++
			}
		}
	}
	r.addHard("LakeCoherence", bad == 0, "%d lake-membership/outlet-routing violations", bad)
}

func checkEdgeUniqueness(snap *worldgen.Snapshot, r *Report) {
	seen := make(map[[2]int]int)
	dup := 0
	for _, e := range snap.Edges {
		key := [2]int{e.A, e.B}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		seen[key]++
	}
	for _, count := range seen {
		if count > 1 {
			dup++
		}
	}
	r.addHard("EdgeUniqueness", dup == 0, "%d site pairs have more than one edge", dup)
}

func checkDrainage(snap *worldgen.Snapshot, r *Report) {
	var land, reachSea int
	for i, s := range snap.Cells {
		if !s.IsLand {
			continue
		}
		land++
		if drainsToSea(snap, i) {
			reachSea++
		}
	}
	frac := 1.0
	if land > 0 {
		frac = float64(reachSea) / float64(land)
	}
	r.addSoft("Drainage", frac, "%.4f of land sites drain to the sea (%d/%d)", frac, reachSea, land)
}

func drainsToSea(snap *worldgen.Snapshot, start int) bool {
	seen := make(map[int]bool)
	cur := start
	for cur != terrain.NoSite {
		if seen[cur] {
			return false
		}
		seen[cur] = true
		if !snap.Cells[cur].IsLand {
			return true
		}
		cur = snap.Cells[cur].FlowsTo
	}
	return false
}

func checkFlowAccumulation(snap *worldgen.Snapshot, r *Report) {
	bad := 0
	for _, s := range snap.Cells {
		if s.IsLand && s.FlowAccumulation < 1 {
			bad++
		}
	}
	for _, lake := range snap.Lakes {
		if lake.OutletCell == terrain.NoSite {
			continue
		}
		if snap.Cells[lake.OutletCell].FlowAccumulation < float64(len(lake.Members)) {
			bad++
		}
	}
	r.addHard("FlowAccumulation", bad == 0, "%d flow-accumulation violations", bad)
}

func checkCostNonNegative(net *network.Network, r *Report) {
	bad := 0
	for _, e := range net.Edges {
		if e.CurrentCost < 0 {
			bad++
		}
	}
	r.addHard("CostNonNegative", bad == 0, "%d edges have a negative currentCost", bad)
}
