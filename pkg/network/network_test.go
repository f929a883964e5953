package network_test

import (
	"math"
	"testing"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/noise"
	"github.com/islandgen/worldgen/pkg/rng"
	"github.com/islandgen/worldgen/pkg/terrain"
)

func buildTestWorld(t *testing.T, seed uint32) (*terrain.Mesh, *network.Network) {
	t.Helper()
	const size = 200.0
	r := rng.New(seed)
	pts := geometry.PoissonDiskSample(r, size, 250)
	diag := geometry.BuildVoronoi(pts, size)
	diag.Relax(2)
	mesh := terrain.BuildMesh(diag)

	simplex := noise.NewSimplex(r)
	terrain.ApplyIslandMask(mesh, simplex, 0.6, 0.05, 4)
	terrain.AssignElevation(mesh, simplex, r, terrain.ElevationConfig{
		PeakElevation:       1000,
		MountainPeakCount:   2,
		Hilliness:           0.3,
		ElevationBlendPower: 2,
		HillNoiseScale:      0.08,
		HillNoiseAmplitude:  0.2,
		RidgeEnabled:        true,
		RidgeWidth:          2,
	})
	terrain.FillDepressions(mesh)
	terrain.IdentifyLakes(mesh, 0.05, 3)
	terrain.RouteFlow(mesh)
	terrain.AccumulateFlow(mesh)
	terrain.BuildEdges(mesh)
	terrain.FlagRivers(mesh, 8)
	terrain.AssignMoisture(mesh, terrain.MoistureConfig{
		DiffusionIterations: 3,
		RiverMoistureBoost:  0.6,
		MountainElevation:   650,
		WoodsMoistureMin:    0.4,
	})

	net := network.Build(mesh, network.DefaultConfig())
	return mesh, net
}

func landSites(mesh *terrain.Mesh) []int {
	var out []int
	for i, s := range mesh.Sites {
		if s.IsLand {
			out = append(out, i)
		}
	}
	return out
}

func TestFindPathTrivialSameSite(t *testing.T) {
	mesh, net := buildTestWorld(t, 1)
	land := landSites(mesh)
	if len(land) == 0 {
		t.Fatal("no land sites")
	}
	res := network.FindPath(net, mesh, land[0], land[0])
	if !res.Success || res.TotalCost != 0 || len(res.Path) != 1 || res.Path[0] != land[0] {
		t.Fatalf("unexpected trivial path result: %+v", res)
	}
}

func TestFindPathContiguity(t *testing.T) {
	mesh, net := buildTestWorld(t, 2)
	land := landSites(mesh)
	if len(land) < 2 {
		t.Skip("not enough land sites")
	}
	res := network.FindPath(net, mesh, land[0], land[len(land)-1])
	if !res.Success {
		t.Skip("no path between chosen sites in this layout")
	}
	for i := 0; i+1 < len(res.Path); i++ {
		a, b := res.Path[i], res.Path[i+1]
		if _, ok := net.EdgeBetween(a, b); !ok {
			t.Fatalf("path step %d->%d is not a network edge", a, b)
		}
	}
	if len(res.EdgeIDs) != len(res.Path)-1 {
		t.Fatalf("edge count %d does not match path length %d", len(res.EdgeIDs), len(res.Path))
	}
}

func TestFindPathAdmissibleHeuristic(t *testing.T) {
	mesh, net := buildTestWorld(t, 3)
	land := landSites(mesh)
	if len(land) < 2 {
		t.Skip("not enough land sites")
	}
	src, dst := land[0], land[len(land)-1]
	res := network.FindPath(net, mesh, src, dst)
	if !res.Success {
		t.Skip("no path between chosen sites in this layout")
	}
	straight := mesh.Sites[src].Centroid.Dist(mesh.Sites[dst].Centroid)
	if res.TotalCost < straight-1e-6 {
		t.Fatalf("path cost %v is below the straight-line distance %v", res.TotalCost, straight)
	}
}

func TestFindPathUnreachableFailsGracefully(t *testing.T) {
	mesh, net := buildTestWorld(t, 4)
	var sea int = -1
	for i, s := range mesh.Sites {
		if !s.IsLand {
			sea = i
			break
		}
	}
	land := landSites(mesh)
	if sea == -1 || len(land) == 0 {
		t.Skip("no sea site to target")
	}
	res := network.FindPath(net, mesh, land[0], sea)
	if res.Success {
		t.Fatalf("expected failure routing into the sea, got success with path %v", res.Path)
	}
	if !math.IsInf(res.TotalCost, 1) {
		t.Fatalf("expected infinite cost on failure, got %v", res.TotalCost)
	}
}

func TestUpgradePassIdempotent(t *testing.T) {
	_, net := buildTestWorld(t, 5)
	if len(net.Edges) == 0 {
		t.Fatal("no edges")
	}
	net.RecordUsage([]int{net.Edges[0].ID}, 1000)
	first := net.ProcessUpgrades(network.DefaultConfig())
	if len(first) == 0 {
		t.Fatal("expected at least one upgrade after heavy usage")
	}
	second := net.ProcessUpgrades(network.DefaultConfig())
	if len(second) != 0 {
		t.Fatalf("expected idempotent second pass, got %d records", len(second))
	}
}

func TestUpgradeCostMonotonicity(t *testing.T) {
	_, net := buildTestWorld(t, 6)
	edgeID := net.Edges[0].ID
	before := net.Edges[edgeID].CurrentCost
	net.RecordUsage([]int{edgeID}, 1000)
	net.ProcessUpgrades(network.DefaultConfig())
	after := net.Edges[edgeID].CurrentCost
	if after > before+1e-9 {
		t.Fatalf("currentCost increased after upgrade: %v -> %v", before, after)
	}
}

func TestRecordUsageAccumulates(t *testing.T) {
	_, net := buildTestWorld(t, 7)
	edgeID := net.Edges[0].ID
	net.RecordUsage([]int{edgeID}, 3)
	net.RecordUsage([]int{edgeID}, 4)
	if net.Edges[edgeID].Usage != 7 {
		t.Fatalf("expected usage 7, got %v", net.Edges[edgeID].Usage)
	}
}

func TestCrossingPenaltyAppliedWhenPresent(t *testing.T) {
	_, net := buildTestWorld(t, 8)
	for _, e := range net.Edges {
		if len(e.Crossings) == 0 {
			continue
		}
		if e.CurrentCost <= e.BaseCost {
			t.Fatalf("edge %d has a crossing but currentCost %v <= baseCost %v", e.ID, e.CurrentCost, e.BaseCost)
		}
		return
	}
}
