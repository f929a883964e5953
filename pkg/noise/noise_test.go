package noise_test

import (
	"testing"

	"github.com/islandgen/worldgen/pkg/noise"
	"github.com/islandgen/worldgen/pkg/rng"
)

func TestDeterministic(t *testing.T) {
	a := noise.NewSimplex(rng.New(1))
	b := noise.NewSimplex(rng.New(1))
	for x := 0.0; x < 5; x++ {
		for y := 0.0; y < 5; y++ {
			if a.Noise2D(x*0.3, y*0.3) != b.Noise2D(x*0.3, y*0.3) {
				t.Fatalf("same seed produced different noise at (%v,%v)", x, y)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := noise.NewSimplex(rng.New(1))
	b := noise.NewSimplex(rng.New(2))
	differs := false
	for x := 0.0; x < 8; x++ {
		for y := 0.0; y < 8; y++ {
			if a.Noise2D(x*0.3, y*0.3) != b.Noise2D(x*0.3, y*0.3) {
				differs = true
			}
		}
	}
	if !differs {
		t.Fatalf("expected different seeds to produce different noise fields")
	}
}

func TestFBmBounded(t *testing.T) {
	s := noise.NewSimplex(rng.New(7))
	for x := 0.0; x < 10; x += 0.37 {
		for y := 0.0; y < 10; y += 0.41 {
			v := noise.FBm(s, x, y, 4)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("fbm(%v,%v)=%v out of expected range", x, y, v)
			}
		}
	}
}
