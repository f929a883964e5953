package terrain

import (
	"math"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/noise"
)

// SeaElevation is the sentinel elevation assigned to every non-land site.
const SeaElevation = -1.0

// ApplyIslandMask classifies every site as land or sea and seeds starting
// elevations. landFraction in [0.3,0.8] controls the base island radius
// r0 = 0.3 + 0.7*landFraction (normalized to size/2); noiseScale and
// octaves drive an angle-based coastline jitter of amplitude 0.15 so the
// coastline isn't a perfect circle.
func ApplyIslandMask(mesh *Mesh, simplex *noise.Simplex, landFraction float64, noiseScale float64, octaves int) {
	size := mesh.Bounds.Width
	center := geometry.Point{X: size / 2, Y: size / 2}
	r0 := 0.3 + 0.7*landFraction
	const coastNoiseAmplitude = 0.15

	for i := range mesh.Sites {
		s := &mesh.Sites[i]
		d := s.Centroid.Dist(center) / (size / 2)
		angle := math.Atan2(s.Centroid.Y-center.Y, s.Centroid.X-center.X)
		jitter := noise.FBm(simplex, math.Cos(angle)*noiseScale*8, math.Sin(angle)*noiseScale*8, octaves) * coastNoiseAmplitude

		if d < r0+jitter {
			s.IsLand = true
			s.Elevation = 0
		} else {
			s.IsLand = false
			s.Elevation = SeaElevation
		}
	}

	for i := range mesh.Sites {
		s := &mesh.Sites[i]
		if !s.IsLand {
			s.IsCoast = false
			continue
		}
		s.IsCoast = false
		for _, n := range s.Neighbors {
			if !mesh.Sites[n].IsLand {
				s.IsCoast = true
				break
			}
		}
	}
}
