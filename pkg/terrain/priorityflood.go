package terrain

import "github.com/islandgen/worldgen/pkg/container"

// FillDepressions runs a one-pass Priority-Flood (Barnes, Lehman & Mulla
// 2014) over the land sites, seeded from the coastline. Every land site's
// FilledElevation is set to the lowest elevation a drop of water starting
// there would need to reach before it can flow downhill all the way to the
// sea, so FilledElevation >= Elevation everywhere and is non-decreasing
// along the flood order.
func FillDepressions(mesh *Mesh) {
	n := len(mesh.Sites)
	visited := make([]bool, n)
	pq := container.NewIndexedPriorityQueue[int]()

	for i := range mesh.Sites {
		s := &mesh.Sites[i]
		if !s.IsLand {
			s.FilledElevation = s.Elevation
			continue
		}
		if s.IsCoast {
			s.FilledElevation = s.Elevation
			visited[i] = true
			pq.Push(i, s.Elevation)
		}
	}

	for !pq.IsEmpty() {
		cur := pq.Pop()
		for _, nb := range mesh.Sites[cur].Neighbors {
			if !mesh.Sites[nb].IsLand || visited[nb] {
				continue
			}
			filled := mesh.Sites[nb].Elevation
			if mesh.Sites[cur].FilledElevation > filled {
				filled = mesh.Sites[cur].FilledElevation
			}
			mesh.Sites[nb].FilledElevation = filled
			visited[nb] = true
			pq.Push(nb, filled)
		}
	}
}

// IdentifyLakes groups land sites whose flood fill raised them above their
// native elevation by more than minLakeDepth into maximal connected
// components sharing a common water level, and records each as a Lake.
// Components with fewer than minLakeArea members are discarded (their
// sites keep draining as ordinary land, per RouteFlow's fallback rule).
// Each remaining site's LakeID is set to the index of the lake it belongs
// to.
func IdentifyLakes(mesh *Mesh, minLakeDepth float64, minLakeArea int) {
	n := len(mesh.Sites)
	isLakeMember := make([]bool, n)
	for i, s := range mesh.Sites {
		if s.IsLand && s.FilledElevation-s.Elevation > minLakeDepth {
			isLakeMember[i] = true
		}
	}

	uf := container.NewUnionFind(n)
	for i := range mesh.Sites {
		if !isLakeMember[i] {
			continue
		}
		for _, nb := range mesh.Sites[i].Neighbors {
			if isLakeMember[nb] && floatsEqual(mesh.Sites[i].FilledElevation, mesh.Sites[nb].FilledElevation) {
				uf.Union(i, nb)
			}
		}
	}

	rootToMembers := make(map[int][]int)
	rootOrder := make([]int, 0)
	for i := range mesh.Sites {
		if !isLakeMember[i] {
			continue
		}
		root := uf.Find(i)
		if _, ok := rootToMembers[root]; !ok {
			rootOrder = append(rootOrder, root)
		}
		rootToMembers[root] = append(rootToMembers[root], i)
	}

	mesh.Lakes = nil
	for i := range mesh.Sites {
		mesh.Sites[i].LakeID = NoSite
	}
	for _, root := range rootOrder {
		members := rootToMembers[root]
		if len(members) < minLakeArea {
			continue
		}
		lakeIdx := len(mesh.Lakes)
		waterLevel := mesh.Sites[members[0]].FilledElevation
		lake := Lake{
			ID:           lakeIdx,
			WaterLevel:   waterLevel,
			OutletCell:   NoSite,
			OutletTarget: NoSite,
			Members:      members,
			Area:         len(members),
		}
		for _, m := range members {
			if depth := mesh.Sites[m].FilledElevation - mesh.Sites[m].Elevation; depth > lake.MaxDepth {
				lake.MaxDepth = depth
			}
			mesh.Sites[m].LakeID = lakeIdx
		}
		mesh.Lakes = append(mesh.Lakes, lake)
	}

	for li := range mesh.Lakes {
		lake := &mesh.Lakes[li]
		bestDiff := -1.0
		for _, m := range lake.Members {
			for _, nb := range mesh.Sites[m].Neighbors {
				if mesh.Sites[nb].LakeID == lake.ID {
					continue
				}
				if mesh.Sites[nb].FilledElevation > lake.WaterLevel {
					continue
				}
				diff := lake.WaterLevel - mesh.Sites[m].Elevation
				if diff < 0 {
					diff = -diff
				}
				if bestDiff < 0 || diff < bestDiff {
					bestDiff = diff
					lake.OutletCell = m
					lake.OutletTarget = nb
				}
			}
		}
	}
}

func floatsEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
