package worldgen

import (
	"errors"
	"math"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/terrain"
)

// ErrNoHarborCandidate is returned when a snapshot has no coastal land
// site to score.
var ErrNoHarborCandidate = errors.New("no coastal site available for a harbor")

// FindBestHarbor scores every coastal land site by a weighted combination
// of local flatness (low variance of FilledElevation across neighbors)
// and proximity to a river mouth or lake outlet, and returns the centroid
// of the best-scoring site.
func FindBestHarbor(snap *Snapshot) (geometry.Point, error) {
	riverMouth := make(map[int]bool)
	for _, idx := range snap.Rivers {
		e := snap.Edges[idx]
		riverMouth[e.A] = true
		riverMouth[e.B] = true
	}
	lakeOutlet := make(map[int]bool)
	for _, lake := range snap.Lakes {
		if lake.OutletCell != terrain.NoSite {
			lakeOutlet[lake.OutletCell] = true
		}
	}

	best := -1
	bestScore := math.Inf(-1)
	for i, s := range snap.Cells {
		if !s.IsLand || !s.IsCoast {
			continue
		}
		score := harborScore(snap, i, riverMouth, lakeOutlet)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best == -1 {
		return geometry.Point{}, ErrNoHarborCandidate
	}
	return snap.Cells[best].Centroid, nil
}

func harborScore(snap *Snapshot, i int, riverMouth, lakeOutlet map[int]bool) float64 {
	s := snap.Cells[i]
	var sum, sumSq float64
	n := 0
	for _, nb := range s.Neighbors {
		e := snap.Cells[nb].FilledElevation
		sum += e
		sumSq += e * e
		n++
	}
	flatness := 0.0
	if n > 0 {
		mean := sum / float64(n)
		variance := sumSq/float64(n) - mean*mean
		if variance < 0 {
			variance = 0
		}
		flatness = 1 / (1 + variance)
	}

	access := 0.0
	if riverMouth[i] {
		access += 1.0
	}
	if lakeOutlet[i] {
		access += 0.5
	}

	return 0.6*flatness + 0.4*access
}
