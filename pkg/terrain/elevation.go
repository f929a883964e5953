package terrain

import (
	"math"
	"sort"

	"github.com/islandgen/worldgen/pkg/container"
	"github.com/islandgen/worldgen/pkg/noise"
	"github.com/islandgen/worldgen/pkg/rng"
)

// ElevationConfig bundles the numeric knobs for ridge selection and the
// elevation blend.
type ElevationConfig struct {
	PeakElevation       float64
	MountainPeakCount   int
	Hilliness           float64
	ElevationBlendPower float64 // p, default 2
	HillNoiseScale      float64
	HillNoiseAmplitude  float64
	RidgeEnabled        bool
	RidgeWidth          int
}

// distFromCoastAll runs a multi-source BFS from every sea site across the
// whole site graph (land and sea), returning hop-distance to the nearest
// sea site for every site.
func distFromCoastAll(mesh *Mesh) []int {
	n := len(mesh.Sites)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	var queue []int
	for i, s := range mesh.Sites {
		if !s.IsLand {
			dist[i] = 0
			queue = append(queue, i)
		}
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, nb := range mesh.Sites[cur].Neighbors {
			if dist[nb] == -1 {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

// distFromLandSources runs a BFS restricted to land sites from the given
// source set, used both for distFromPeak and for ridge dilation.
func distFromLandSources(mesh *Mesh, sources []bool) []int {
	n := len(mesh.Sites)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	var queue []int
	for i, isSrc := range sources {
		if isSrc && mesh.Sites[i].IsLand {
			dist[i] = 0
			queue = append(queue, i)
		}
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, nb := range mesh.Sites[cur].Neighbors {
			if mesh.Sites[nb].IsLand && dist[nb] == -1 {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

// AssignElevation computes distance fields, selects and routes ridges, and
// assigns a final elevation to every land site. Sea sites keep their
// sentinel elevation.
func AssignElevation(mesh *Mesh, simplex *noise.Simplex, r *rng.RNG, cfg ElevationConfig) {
	distCoast := distFromCoastAll(mesh)

	var landIdx []int
	for i, s := range mesh.Sites {
		if s.IsLand {
			landIdx = append(landIdx, i)
		}
	}
	if len(landIdx) == 0 {
		return
	}

	ridgeSet := selectAndRouteRidges(mesh, r, distCoast, landIdx, cfg)

	distPeak := distFromLandSources(mesh, ridgeSet)
	if cfg.RidgeWidth > 1 {
		dilateRidge(mesh, ridgeSet, cfg.RidgeWidth-1)
		distPeak = distFromLandSources(mesh, ridgeSet)
	}

	maxCoast := 1
	maxPeak := 1
	for _, i := range landIdx {
		if distCoast[i] > maxCoast {
			maxCoast = distCoast[i]
		}
		if distPeak[i] >= 0 && distPeak[i] > maxPeak {
			maxPeak = distPeak[i]
		}
	}

	p := cfg.ElevationBlendPower
	if p == 0 {
		p = 2
	}

	for _, i := range landIdx {
		s := &mesh.Sites[i]
		coastT := clamp01(float64(distCoast[i]) / float64(maxCoast))
		peakDist := distPeak[i]
		if peakDist < 0 {
			peakDist = maxPeak
		}
		peakT := 1 - float64(peakDist)/float64(maxPeak)
		coastFactor := math.Pow(coastT, p)
		peakFactor := math.Pow(math.Max(peakT, 0), 1.5)

		base := coastFactor * cfg.PeakElevation * (0.3 + 0.6*peakFactor)

		hillNoise := (noise.FBm(simplex, s.Centroid.X*cfg.HillNoiseScale, s.Centroid.Y*cfg.HillNoiseScale, 4) + 1) / 2
		hills := hillNoise * cfg.HillNoiseAmplitude * cfg.PeakElevation

		elevation := base + hills*cfg.Hilliness*coastFactor
		s.Elevation = math.Max(1, elevation)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// selectAndRouteRidges picks up to MountainPeakCount spaced peaks from the
// most inland candidates, then (if enabled) connects them pairwise via a
// least-cost A* walk that prefers high distFromCoast sites, adding every
// site along the walk to the ridge set.
func selectAndRouteRidges(mesh *Mesh, r *rng.RNG, distCoast []int, landIdx []int, cfg ElevationConfig) []bool {
	n := len(mesh.Sites)
	ridgeSet := make([]bool, n)

	candidates := append([]int(nil), landIdx...)
	sort.Slice(candidates, func(i, j int) bool { return distCoast[candidates[i]] > distCoast[candidates[j]] })
	cut := int(float64(len(candidates)) * 0.6)
	candidates = candidates[:cut]

	r.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	area := mesh.Bounds.Width * mesh.Bounds.Height
	peakCount := cfg.MountainPeakCount
	if peakCount <= 0 {
		peakCount = 1
	}
	minSpacing := 0.7 * math.Sqrt(area/float64(peakCount))

	var peaks []int
	for _, c := range candidates {
		if len(peaks) >= peakCount {
			break
		}
		ok := true
		for _, p := range peaks {
			if mesh.Sites[c].Centroid.Dist(mesh.Sites[p].Centroid) < minSpacing {
				ok = false
				break
			}
		}
		if ok {
			peaks = append(peaks, c)
			ridgeSet[c] = true
		}
	}

	if cfg.RidgeEnabled {
		maxDist := math.Max(mesh.Bounds.Width, mesh.Bounds.Height) / 2
		for i := 0; i < len(peaks); i++ {
			for j := i + 1; j < len(peaks); j++ {
				a, b := peaks[i], peaks[j]
				if mesh.Sites[a].Centroid.Dist(mesh.Sites[b].Centroid) > maxDist {
					continue
				}
				path := ridgeAStar(mesh, distCoast, a, b)
				for _, s := range path {
					ridgeSet[s] = true
				}
			}
		}
	}
	return ridgeSet
}

// ridgeAStar finds a path from a to b over the land-site graph with step
// cost 1 + 2/(distFromCoast+1) (favoring inland sites) and a
// Euclidean-distance heuristic. The heuristic is in map units while steps
// cost 1 to 3, so it can overestimate and the path is not always the
// least-cost one.
func ridgeAStar(mesh *Mesh, distCoast []int, a, b int) []int {
	goal := mesh.Sites[b].Centroid
	h := func(i int) float64 { return mesh.Sites[i].Centroid.Dist(goal) }

	gScore := map[int]float64{a: 0}
	parent := map[int]int{}
	open := container.NewIndexedPriorityQueue[int]()
	open.Push(a, h(a))
	visited := map[int]bool{}

	for !open.IsEmpty() {
		cur := open.Pop()
		if cur == b {
			break
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, nb := range mesh.Sites[cur].Neighbors {
			if !mesh.Sites[nb].IsLand {
				continue
			}
			step := 1 + 2/(float64(distCoast[nb])+1)
			tentative := gScore[cur] + step
			if old, ok := gScore[nb]; !ok || tentative < old {
				gScore[nb] = tentative
				parent[nb] = cur
				open.Push(nb, tentative+h(nb))
			}
		}
	}

	if _, ok := gScore[b]; !ok {
		return nil
	}
	var path []int
	for cur := b; ; {
		path = append(path, cur)
		if cur == a {
			break
		}
		p, ok := parent[cur]
		if !ok {
			return nil
		}
		cur = p
	}
	return path
}

func dilateRidge(mesh *Mesh, ridgeSet []bool, steps int) {
	for step := 0; step < steps; step++ {
		additions := make([]int, 0)
		for i, inRidge := range ridgeSet {
			if !inRidge || !mesh.Sites[i].IsLand {
				continue
			}
			for _, nb := range mesh.Sites[i].Neighbors {
				if mesh.Sites[nb].IsLand && !ridgeSet[nb] {
					additions = append(additions, nb)
				}
			}
		}
		for _, a := range additions {
			ridgeSet[a] = true
		}
	}
}
