package worldgen

import (
	"fmt"
	"log/slog"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/noise"
	"github.com/islandgen/worldgen/pkg/rng"
	"github.com/islandgen/worldgen/pkg/terrain"
)

// VoronoiGenerator implements TerrainGenerator by running the full
// mesh/hydrology/network pipeline over a Poisson-disk Voronoi diagram. It
// is registered under AlgorithmVoronoi in init.
type VoronoiGenerator struct {
	Logger *slog.Logger
}

// Name implements TerrainGenerator.
func (g *VoronoiGenerator) Name() string { return string(AlgorithmVoronoi) }

func init() {
	Register(AlgorithmVoronoi, &VoronoiGenerator{Logger: slog.Default()})
}

// stageProgress is the ordered, named stage list PROGRESS is emitted at.
// Percent is this stage's index scaled over the total count; the final
// stage always reports 100.
var stageProgress = []string{
	"sampling", "voronoi", "elevation", "flood-fill", "flow",
	"edges-rivers", "moisture-biome", "network", "crossings",
	"upgrades-seed", "collaborators", "serialization",
}

func emit(progress func(int, string), stage string) {
	if progress == nil {
		return
	}
	for i, s := range stageProgress {
		if s == stage {
			percent := (i + 1) * 100 / len(stageProgress)
			progress(percent, stage)
			return
		}
	}
}

// Generate runs the pipeline end-to-end: site sampling, Voronoi dual
// construction, island masking, elevation assignment, depression filling,
// flow routing and accumulation, edge/river extraction, moisture and
// biome classification, and transport network construction. The stages
// that draw random numbers (sampling, island mask, elevation) each use
// their own rng.Derive'd stream, so results are reproducible for a given
// seed and config. A nil Logger falls back to slog.Default().
func (g *VoronoiGenerator) Generate(cfg *Config, progress func(percent int, stage string)) (*Snapshot, error) {
	if cfg.GenerationAlgorithm != AlgorithmVoronoi {
		return nil, &ConfigurationError{Err: fmt.Errorf("VoronoiGenerator invoked with algorithm %q", cfg.GenerationAlgorithm)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	hash := cfg.Hash()

	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("generation started", "seed", cfg.Seed, "mapSize", cfg.MapSize)

	samplingRNG := rng.Derive(cfg.Seed, "sampling", hash)
	emit(progress, "sampling")
	points := geometry.PoissonDiskSample(samplingRNG, cfg.MapSize, cfg.Voronoi.CellCount)

	emit(progress, "voronoi")
	diag := geometry.BuildVoronoi(points, cfg.MapSize)
	diag.Relax(cfg.Voronoi.Relaxation)
	mesh := terrain.BuildMesh(diag)
	logger.Info("voronoi built", "sites", len(mesh.Sites))

	maskRNG := rng.Derive(cfg.Seed, "island-mask", hash)
	simplex := noise.NewSimplex(maskRNG)
	terrain.ApplyIslandMask(mesh, simplex, cfg.Terrain.LandFraction, cfg.Terrain.IslandNoiseScale, cfg.Terrain.IslandNoiseOctaves)

	emit(progress, "elevation")
	elevationRNG := rng.Derive(cfg.Seed, "elevation", hash)
	terrain.AssignElevation(mesh, simplex, elevationRNG, terrain.ElevationConfig{
		PeakElevation:       cfg.Terrain.PeakElevation,
		MountainPeakCount:   cfg.Terrain.MountainPeakCount,
		Hilliness:           cfg.Terrain.Hilliness,
		ElevationBlendPower: cfg.Terrain.ElevationBlendPower,
		HillNoiseScale:      cfg.Terrain.HillNoiseScale,
		HillNoiseAmplitude:  cfg.Terrain.HillNoiseAmplitude,
		RidgeEnabled:        cfg.Terrain.RidgeEnabled,
		RidgeWidth:          cfg.Terrain.RidgeWidth,
	})

	emit(progress, "flood-fill")
	if cfg.Terrain.FillSpillEnabled {
		terrain.FillDepressions(mesh)
		terrain.IdentifyLakes(mesh, cfg.Terrain.MinLakeDepth, cfg.Terrain.MinLakeArea)
	} else {
		for i := range mesh.Sites {
			mesh.Sites[i].FilledElevation = mesh.Sites[i].Elevation
		}
	}
	logger.Info("depressions filled", "lakes", len(mesh.Lakes))

	emit(progress, "flow")
	terrain.RouteFlow(mesh)
	terrain.AccumulateFlow(mesh)

	emit(progress, "edges-rivers")
	terrain.BuildEdges(mesh)
	terrain.FlagRivers(mesh, float64(cfg.Terrain.RiverThreshold))

	emit(progress, "moisture-biome")
	terrain.AssignMoisture(mesh, terrain.MoistureConfig{
		DiffusionIterations: cfg.Terrain.MoistureDiffusion,
		RiverMoistureBoost:  1.0,
		MountainElevation:   0.6 * cfg.Terrain.PeakElevation,
		WoodsMoistureMin:    0.5,
	})

	emit(progress, "network")
	net := network.Build(mesh, cfg.Network.ToNetworkConfig())

	emit(progress, "crossings")
	emit(progress, "upgrades-seed")
	emit(progress, "collaborators")

	emit(progress, "serialization")
	snap := &Snapshot{
		Cells:   mesh.Sites,
		Edges:   mesh.Edges,
		Rivers:  riverIndices(mesh.Edges),
		Bounds:  mesh.Bounds,
		Lakes:   mesh.Lakes,
		Network: net,
	}
	logger.Info("generation complete", "cells", len(snap.Cells), "edges", len(snap.Edges), "rivers", len(snap.Rivers))
	return snap, nil
}
