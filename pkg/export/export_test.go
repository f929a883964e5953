package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

func tinySnapshot() *worldgen.Snapshot {
	mesh := &terrain.Mesh{
		Bounds: terrain.Bounds{Width: 10, Height: 10},
		Sites: []terrain.Site{
			{
				ID:        0,
				Centroid:  geometry.Point{X: 3, Y: 5},
				Verts:     []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 10}, {X: 0, Y: 10}},
				Neighbors: []int{1},
				IsLand:    true,
				IsCoast:   true,
				Biome:     terrain.BiomePlains,
				FlowsTo:   terrain.NoSite,
				LakeID:    terrain.NoSite,
			},
			{
				ID:        1,
				Centroid:  geometry.Point{X: 8, Y: 5},
				Verts:     []geometry.Point{{X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 10}},
				Neighbors: []int{0},
				Elevation: -1,
				Biome:     terrain.BiomeSea,
				FlowsTo:   terrain.NoSite,
				LakeID:    terrain.NoSite,
			},
		},
		Edges: []terrain.Edge{
			{A: 0, B: 1, VertA: geometry.Point{X: 5, Y: 0}, VertB: geometry.Point{X: 5, Y: 10}},
		},
	}
	net := network.Build(mesh, network.DefaultConfig())
	return &worldgen.Snapshot{
		Cells:   mesh.Sites,
		Edges:   mesh.Edges,
		Bounds:  mesh.Bounds,
		Network: net,
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	snap := tinySnapshot()
	data, err := ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded worldgen.Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding exported JSON: %v", err)
	}
	if len(decoded.Cells) != len(snap.Cells) {
		t.Errorf("got %d cells after round trip, want %d", len(decoded.Cells), len(snap.Cells))
	}
}

func TestExportJSONCompact_SmallerThanIndented(t *testing.T) {
	snap := tinySnapshot()
	compact, err := ExportJSONCompact(snap)
	if err != nil {
		t.Fatalf("ExportJSONCompact failed: %v", err)
	}
	indented, err := ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if len(compact) >= len(indented) {
		t.Errorf("compact encoding (%d bytes) should be smaller than indented (%d bytes)", len(compact), len(indented))
	}
}

func TestExportSVG_Basic(t *testing.T) {
	snap := tinySnapshot()
	opts := DefaultSVGOptions()
	opts.Title = "Test Island"

	data, err := ExportSVG(snap, opts)
	if err != nil {
		t.Fatalf("ExportSVG failed: %v", err)
	}

	svgStr := string(data)
	if !strings.Contains(svgStr, "<svg") {
		t.Error("output does not contain <svg> tag")
	}
	if !strings.Contains(svgStr, "</svg>") {
		t.Error("output does not contain closing </svg> tag")
	}
	if !strings.Contains(svgStr, "Test Island") {
		t.Error("output does not contain the configured title")
	}
}

func TestExportSVG_NilSnapshot(t *testing.T) {
	_, err := ExportSVG(nil, DefaultSVGOptions())
	if err == nil {
		t.Error("expected error for nil snapshot, got nil")
	}
}

func TestExportSVG_ZeroOptionsFallBackToDefaults(t *testing.T) {
	snap := tinySnapshot()
	data, err := ExportSVG(snap, SVGOptions{})
	if err != nil {
		t.Fatalf("ExportSVG with zero-value options failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty SVG output")
	}
}

func TestDefaultSVGOptions(t *testing.T) {
	opts := DefaultSVGOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		t.Errorf("expected positive canvas dimensions, got %dx%d", opts.Width, opts.Height)
	}
}
