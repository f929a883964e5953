package geometry

import (
	"math"

	"github.com/islandgen/worldgen/pkg/rng"
)

const poissonCandidatesPerActive = 30

// PoissonDiskSample distributes points over the [0,size)x[0,size) square
// domain using Bridson's algorithm, with minimum spacing
//
//	r = 0.8 * sqrt(size*size / targetCount)
//
// The background grid cell is r/sqrt(2) wide; each active point spawns up
// to 30 candidate samples in the annulus [r,2r) around it, rejecting any
// candidate within r of an existing sample (checked against the 5x5 grid
// neighborhood). Generation terminates when the active list empties.
// Determinism follows from driving every draw through src.
func PoissonDiskSample(src *rng.RNG, size float64, targetCount int) []Point {
	if targetCount < 1 {
		targetCount = 1
	}
	area := size * size
	r := 0.8 * math.Sqrt(area/float64(targetCount))
	cellSize := r / math.Sqrt2

	gridW := int(math.Ceil(size/cellSize)) + 1
	grid := make([][]int, gridW*gridW) // grid[cellIdx] -> indices into samples

	var samples []Point
	var active []int

	cellIndex := func(p Point) (int, int) {
		cx := int(p.X / cellSize)
		cy := int(p.Y / cellSize)
		if cx < 0 {
			cx = 0
		}
		if cy < 0 {
			cy = 0
		}
		if cx >= gridW {
			cx = gridW - 1
		}
		if cy >= gridW {
			cy = gridW - 1
		}
		return cx, cy
	}

	addSample := func(p Point) int {
		idx := len(samples)
		samples = append(samples, p)
		cx, cy := cellIndex(p)
		cell := cy*gridW + cx
		grid[cell] = append(grid[cell], idx)
		return idx
	}

	fits := func(p Point) bool {
		if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
			return false
		}
		cx, cy := cellIndex(p)
		for gy := cy - 2; gy <= cy+2; gy++ {
			if gy < 0 || gy >= gridW {
				continue
			}
			for gx := cx - 2; gx <= cx+2; gx++ {
				if gx < 0 || gx >= gridW {
					continue
				}
				for _, idx := range grid[gy*gridW+gx] {
					if p.Dist2(samples[idx]) < r*r {
						return false
					}
				}
			}
		}
		return true
	}

	first := Point{X: src.NextRange(0, size), Y: src.NextRange(0, size)}
	active = append(active, addSample(first))

	for len(active) > 0 {
		ai := src.NextInt(0, len(active)-1)
		origin := samples[active[ai]]

		found := false
		for k := 0; k < poissonCandidatesPerActive; k++ {
			radius := src.NextRange(r, 2*r)
			angle := src.NextRange(0, 2*math.Pi)
			cand := Point{
				X: origin.X + radius*math.Cos(angle),
				Y: origin.Y + radius*math.Sin(angle),
			}
			if fits(cand) {
				idx := addSample(cand)
				active = append(active, idx)
				found = true
				break
			}
		}
		if !found {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return samples
}
