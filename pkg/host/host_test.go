package host_test

import (
	"testing"

	"github.com/islandgen/worldgen/pkg/host"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

func smallCfg() *worldgen.Config {
	cfg := worldgen.DefaultConfig()
	cfg.Seed = 7
	cfg.MapSize = 200
	cfg.Voronoi.CellCount = 150
	cfg.Voronoi.Relaxation = 1
	return &cfg
}

func TestGenerateEmitsProgressThenTerrainGenerated(t *testing.T) {
	s := host.NewSession(nil)
	var sawProgress bool
	var snap *worldgen.Snapshot
	for msg := range s.Generate(smallCfg()) {
		switch msg.Kind {
		case host.KindProgress:
			sawProgress = true
		case host.KindTerrainGenerated:
			snap = msg.Snapshot
		case host.KindError:
			t.Fatalf("unexpected ERROR message: %v", msg.Err)
		}
	}
	if !sawProgress {
		t.Fatal("expected at least one PROGRESS message")
	}
	if snap == nil {
		t.Fatal("expected a TERRAIN_GENERATED message with a snapshot")
	}
}

func TestGenerateUnimplementedAlgorithmReportsError(t *testing.T) {
	s := host.NewSession(nil)
	cfg := smallCfg()
	cfg.GenerationAlgorithm = worldgen.AlgorithmGrid
	var gotError bool
	for msg := range s.Generate(cfg) {
		if msg.Kind == host.KindError {
			gotError = true
		}
		if msg.Kind == host.KindTerrainGenerated {
			t.Fatal("expected no TERRAIN_GENERATED for an unimplemented algorithm")
		}
	}
	if !gotError {
		t.Fatal("expected an ERROR message")
	}
}

func TestFindPathTrivialSameSite(t *testing.T) {
	s := host.NewSession(nil)
	var snap *worldgen.Snapshot
	for msg := range s.Generate(smallCfg()) {
		if msg.Kind == host.KindTerrainGenerated {
			snap = msg.Snapshot
		}
	}
	if snap == nil {
		t.Fatal("setup: generation failed")
	}

	land := -1
	for i, c := range snap.Cells {
		if c.IsLand {
			land = i
			break
		}
	}
	if land == -1 {
		t.Skip("no land site sampled in this config")
	}

	msg := s.FindPath(snap, land, land)
	if msg.Kind != host.KindPathResult || msg.Path == nil || !msg.Path.Success || msg.Path.TotalCost != 0 {
		t.Fatalf("trivial src==dst path should succeed at zero cost, got %+v", msg.Path)
	}
}
