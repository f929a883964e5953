package noise

import "math"

const (
	f2 = 0.36602540378 // 0.5*(sqrt(3)-1)
	g2 = 0.21132486541 // (3-sqrt(3))/6
)

var gradients2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{0.70710678, 0.70710678}, {-0.70710678, 0.70710678},
	{0.70710678, -0.70710678}, {-0.70710678, -0.70710678},
}

// rngSource is the minimal surface Simplex needs from an RNG so the noise
// package has no import dependency on pkg/rng.
type rngSource interface {
	NextInt(a, b int) int
}

// Simplex is a seeded 2D simplex-like noise source. Its gradient
// permutation table is shuffled from the supplied RNG stream, so two
// Simplex instances built from RNGs with the same seed produce identical
// fields.
type Simplex struct {
	perm [512]int
}

// NewSimplex builds a permutation table of 0..255 shuffled by src, then
// doubles it (the standard trick to avoid wraparound index masking bugs).
func NewSimplex(src rngSource) *Simplex {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	for i := 255; i > 0; i-- {
		j := src.NextInt(0, i)
		base[i], base[j] = base[j], base[i]
	}
	s := &Simplex{}
	for i := 0; i < 512; i++ {
		s.perm[i] = base[i&255]
	}
	return s
}

func (s *Simplex) gradAt(hash int) [2]float64 {
	return gradients2[hash&7]
}

// Noise2D returns simplex noise at (x,y), approximately in [-1,1].
func (s *Simplex) Noise2D(x, y float64) float64 {
	skew := (x + y) * f2
	i := math.Floor(x + skew)
	j := math.Floor(y + skew)

	unskew := (i + j) * g2
	x0 := x - (i - unskew)
	y0 := y - (j - unskew)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	n0 := s.corner(x0, y0, s.perm[ii+s.perm[jj]])
	n1 := s.corner(x1, y1, s.perm[ii+i1+s.perm[jj+j1]])
	n2 := s.corner(x2, y2, s.perm[ii+1+s.perm[jj+1]])

	return 70.0 * (n0 + n1 + n2)
}

func (s *Simplex) corner(x, y float64, hash int) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := s.gradAt(hash)
	return t * t * (g[0]*x + g[1]*y)
}

// FBm evaluates octaves-many octaves of simplex noise at (x,y), each
// successive octave at double the frequency and half the amplitude of the
// last, normalized so the result stays within [-1,1]:
//
//	fbm(x,y) = sum_{i=0..octaves-1} 2^-i * simplex(2^i*x, 2^i*y) / sum 2^-i
func FBm(s *Simplex, x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * s.Noise2D(x*freq, y*freq)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
