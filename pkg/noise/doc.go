// Package noise provides fractal (fBm) 2D simplex-like noise seeded from
// the world generator's deterministic RNG. It drives coastline jitter and
// hill relief in pkg/terrain.
package noise
