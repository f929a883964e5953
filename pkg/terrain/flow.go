package terrain

import "sort"

// RouteFlow assigns every land site's FlowsTo. Lake members all flow
// toward their lake's outlet: the outlet cell itself flows to the lake's
// outlet target (or nowhere, if the lake is endorheic), and every other
// member flows directly to the outlet cell. Every other land site flows to
// its neighbor (land or sea) with the lowest FilledElevation strictly below its
// own; if none qualifies (rare, since FillDepressions guarantees a
// downhill path exists) it flows nowhere.
func RouteFlow(mesh *Mesh) {
	for i := range mesh.Sites {
		s := &mesh.Sites[i]
		if !s.IsLand {
			s.FlowsTo = NoSite
			continue
		}
		if s.LakeID != NoSite {
			lake := &mesh.Lakes[s.LakeID]
			if i == lake.OutletCell {
				s.FlowsTo = lake.OutletTarget
			} else {
				s.FlowsTo = lake.OutletCell
			}
			continue
		}
		best := NoSite
		bestElev := s.FilledElevation
		for _, nb := range s.Neighbors {
			if nbElev := mesh.Sites[nb].FilledElevation; nbElev < bestElev {
				bestElev = nbElev
				best = nb
			}
		}
		s.FlowsTo = best
	}
}

// AccumulateFlow sorts land sites by descending FilledElevation and sweeps
// downhill, adding each site's accumulation to its FlowsTo target. Every
// land site starts at 1 (itself); the result is the count of upstream land
// sites plus itself. Lake members share their outlet's FilledElevation, so
// ties are broken to sweep lake members first, then outlets, then the rest.
func AccumulateFlow(mesh *Mesh) {
	var land []int
	for i, s := range mesh.Sites {
		if s.IsLand {
			mesh.Sites[i].FlowAccumulation = 1
			land = append(land, i)
		}
	}
	tieRank := func(i int) int {
		if mesh.Sites[i].LakeID == NoSite {
			return 2
		}
		if mesh.Lakes[mesh.Sites[i].LakeID].OutletCell == i {
			return 1
		}
		return 0
	}
	sort.Slice(land, func(a, b int) bool {
		fa, fb := mesh.Sites[land[a]].FilledElevation, mesh.Sites[land[b]].FilledElevation
		if fa != fb {
			return fa > fb
		}
		return tieRank(land[a]) < tieRank(land[b])
	})
	for _, i := range land {
		target := mesh.Sites[i].FlowsTo
		if target != NoSite && mesh.Sites[target].IsLand {
			mesh.Sites[target].FlowAccumulation += mesh.Sites[i].FlowAccumulation
		}
	}
}
