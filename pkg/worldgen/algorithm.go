package worldgen

import (
	"fmt"
	"sync"
)

// TerrainGenerator is the minimal capability the generator dispatches on:
// every implementation exposes Generate and Name, regardless of its
// internal construction strategy. Harbor search is not part of it; the
// package-level FindBestHarbor works on any generator's Snapshot.
type TerrainGenerator interface {
	// Generate builds a full Snapshot from cfg and seed.
	Generate(cfg *Config, progress func(percent int, stage string)) (*Snapshot, error)

	// Name returns the generator's registration key.
	Name() string
}

var (
	generatorsMu sync.RWMutex
	generators   = make(map[Algorithm]TerrainGenerator)
)

// Register adds a generator to the global registry. Panics if the
// algorithm is already registered, since two generators racing to claim
// the same key is a programming error, not a runtime condition.
func Register(alg Algorithm, g TerrainGenerator) {
	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	if _, exists := generators[alg]; exists {
		panic(fmt.Sprintf("terrain generator %q already registered", alg))
	}
	generators[alg] = g
}

// Get retrieves a registered generator by algorithm name, or nil if none
// is registered.
func Get(alg Algorithm) TerrainGenerator {
	generatorsMu.RLock()
	defer generatorsMu.RUnlock()
	return generators[alg]
}

// List returns every registered algorithm name.
func List() []Algorithm {
	generatorsMu.RLock()
	defer generatorsMu.RUnlock()
	names := make([]Algorithm, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	return names
}
