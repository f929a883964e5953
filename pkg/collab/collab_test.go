package collab_test

import (
	"testing"

	"github.com/islandgen/worldgen/pkg/collab"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

func genSnapshot(t *testing.T, seed uint32) *worldgen.Snapshot {
	t.Helper()
	cfg := worldgen.DefaultConfig()
	cfg.Seed = seed
	cfg.MapSize = 300
	cfg.Voronoi.CellCount = 200
	cfg.Voronoi.Relaxation = 1
	gen := worldgen.Get(worldgen.AlgorithmVoronoi)
	snap, err := gen.Generate(&cfg, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return snap
}

func TestGridParcelSubdividerCoversAllLandSites(t *testing.T) {
	snap := genSnapshot(t, 101)
	sub := collab.NewGridParcelSubdivider(0)
	parcels, err := sub.Subdivide(snap)
	if err != nil {
		t.Fatalf("subdivide: %v", err)
	}
	covered := make(map[int]bool)
	for _, p := range parcels {
		if len(p.Sites) == 0 {
			t.Fatal("parcel with no member sites")
		}
		if len(p.Sites) > collab.DefaultMaxParcelSites {
			t.Fatalf("parcel exceeds max size: %d members", len(p.Sites))
		}
		for _, s := range p.Sites {
			if covered[s] {
				t.Fatalf("site %d claimed by more than one parcel", s)
			}
			covered[s] = true
		}
	}
	for i, s := range snap.Cells {
		if s.IsLand && !covered[i] {
			t.Fatalf("land site %d not covered by any parcel", i)
		}
	}
}

func TestGridParcelSubdividerDistinctIDs(t *testing.T) {
	snap := genSnapshot(t, 102)
	sub := collab.NewGridParcelSubdivider(4)
	parcels, err := sub.Subdivide(snap)
	if err != nil {
		t.Fatalf("subdivide: %v", err)
	}
	seen := make(map[string]bool)
	for _, p := range parcels {
		id := p.ID.String()
		if seen[id] {
			t.Fatalf("duplicate parcel ID %s", id)
		}
		seen[id] = true
	}
}

func TestCoastalSettlementSeederAnchorsOnCoast(t *testing.T) {
	snap := genSnapshot(t, 103)
	seeder := collab.NewCoastalSettlementSeeder(nil)
	settlements, err := seeder.Seed(snap, snap.Network)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, s := range settlements {
		if !snap.Cells[s.AnchorSite].IsCoast {
			t.Fatalf("settlement %s anchored at non-coastal site %d", s.Name, s.AnchorSite)
		}
		if s.Parcel == nil {
			t.Fatalf("settlement %s has no parcel", s.Name)
		}
	}
}

func TestNopPlacersLeaveSettlementEmpty(t *testing.T) {
	s := &collab.Settlement{}
	if err := (collab.NopBuildingPlacer{}).PlaceBuildings(s); err != nil {
		t.Fatalf("place buildings: %v", err)
	}
	if err := (collab.NopStreetPlacer{}).PlaceStreets(s); err != nil {
		t.Fatalf("place streets: %v", err)
	}
	if len(s.Buildings) != 0 || len(s.Streets) != 0 {
		t.Fatal("expected nop placers to leave buildings/streets empty")
	}
}
