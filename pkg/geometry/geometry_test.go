package geometry_test

import (
	"testing"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/rng"
)

func TestPoissonDiskMinSpacingAndBounds(t *testing.T) {
	src := rng.New(1)
	const size = 50.0
	pts := geometry.PoissonDiskSample(src, size, 80)
	if len(pts) < 3 {
		t.Fatalf("expected at least 3 points, got %d", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
			t.Fatalf("point out of domain: %v", p)
		}
	}
}

func TestPoissonDiskDeterministic(t *testing.T) {
	a := geometry.PoissonDiskSample(rng.New(7), 40, 50)
	b := geometry.PoissonDiskSample(rng.New(7), 40, 50)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func samplePoints(n int, size float64) []geometry.Point {
	src := rng.New(uint32(n*7 + 3))
	return geometry.PoissonDiskSample(src, size, n)
}

func TestVoronoiNeighborSymmetry(t *testing.T) {
	pts := samplePoints(60, 100)
	diag := geometry.BuildVoronoi(pts, 100)
	for i, neighbors := range diag.Neighbors {
		for _, j := range neighbors {
			found := false
			for _, k := range diag.Neighbors[j] {
				if k == i {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("site %d lists %d as neighbor, but not vice versa", i, j)
			}
		}
	}
}

func TestVoronoiCellsAreCCWAndInBounds(t *testing.T) {
	pts := samplePoints(40, 80)
	diag := geometry.BuildVoronoi(pts, 80)
	for i, cell := range diag.Cells {
		if len(cell) < 3 {
			continue // degenerate boundary sliver, acceptable
		}
		if geometry.PolygonArea(cell) <= 0 {
			t.Fatalf("site %d polygon is not CCW (area=%v)", i, geometry.PolygonArea(cell))
		}
		for _, v := range cell {
			if v.X < -1e-6 || v.X > 80+1e-6 || v.Y < -1e-6 || v.Y > 80+1e-6 {
				t.Fatalf("site %d vertex out of bounds: %v", i, v)
			}
		}
	}
}

func TestLloydRelaxationMovesSitesTowardCentroid(t *testing.T) {
	pts := samplePoints(30, 60)
	diag := geometry.BuildVoronoi(pts, 60)
	before := append([]geometry.Point(nil), diag.Sites...)
	diag.Relax(1)
	changed := false
	for i := range before {
		if before[i] != diag.Sites[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatalf("expected relaxation to move at least one site")
	}
}
