package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

// SVGOptions configures world visualization export.
type SVGOptions struct {
	Width         int    // Canvas width in pixels
	Height        int    // Canvas height in pixels
	ShowNetwork   bool   // Draw the transport graph over the terrain
	ShowCrossings bool   // Mark river crossings
	Title         string // Optional title drawn in the corner
	Margin        int    // Canvas margin in pixels
}

// DefaultSVGOptions returns sensible default export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:         1000,
		Height:        1000,
		ShowNetwork:   true,
		ShowCrossings: true,
		Title:         "Island",
		Margin:        20,
	}
}

// biomeFill returns the fill color for a site's biome.
func biomeFill(b terrain.Biome) string {
	switch b {
	case terrain.BiomeSea:
		return "#1d3a5f"
	case terrain.BiomeLake:
		return "#2f6690"
	case terrain.BiomeRiver:
		return "#3a8bbf"
	case terrain.BiomeMountains:
		return "#8a8378"
	case terrain.BiomeWoods:
		return "#2f5d36"
	case terrain.BiomePlains:
		return "#a8c26a"
	default:
		return "#444444"
	}
}

// classColor returns the stroke color for a NetworkEdge's road class.
func classColor(c network.RoadClass) string {
	switch c {
	case network.ClassTrail:
		return "#d9c27a"
	case network.ClassRoad:
		return "#e0e0e0"
	case network.ClassTurnpike:
		return "#ffd84d"
	default:
		return "none"
	}
}

// ExportSVG renders the site mesh, colored by biome, with an optional
// transport-network overlay (trail/road/turnpike edges color-coded by
// class, river crossings marked by status) on top.
func ExportSVG(snap *worldgen.Snapshot, opts SVGOptions) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	sx := float64(opts.Width-2*opts.Margin) / maxf(snap.Bounds.Width, 1)
	sy := float64(opts.Height-2*opts.Margin) / maxf(snap.Bounds.Height, 1)
	tx := func(x float64) int { return opts.Margin + int(x*sx) }
	ty := func(y float64) int { return opts.Margin + int(y*sy) }

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#0b1620")

	for _, s := range snap.Cells {
		if len(s.Verts) < 3 {
			continue
		}
		xs := make([]int, len(s.Verts))
		ys := make([]int, len(s.Verts))
		for i, v := range s.Verts {
			xs[i] = tx(v.X)
			ys[i] = ty(v.Y)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:#00000033;stroke-width:0.5", biomeFill(s.Biome)))
	}

	for _, ei := range snap.Rivers {
		e := snap.Edges[ei]
		a, b := snap.Cells[e.A].Centroid, snap.Cells[e.B].Centroid
		canvas.Line(tx(a.X), ty(a.Y), tx(b.X), ty(b.Y), "stroke:#bfe6ff;stroke-width:2")
	}

	if opts.ShowNetwork && snap.Network != nil {
		for _, e := range snap.Network.Edges {
			color := classColor(e.Class)
			if color == "none" {
				continue
			}
			a, b := snap.Cells[e.A].Centroid, snap.Cells[e.B].Centroid
			canvas.Line(tx(a.X), ty(a.Y), tx(b.X), ty(b.Y), fmt.Sprintf("stroke:%s;stroke-width:1.5", color))
		}
		if opts.ShowCrossings {
			for _, c := range snap.Network.Crossings {
				color := "#c98a3a"
				if c.Status == network.StatusBridge {
					color = "#d0d0d0"
				} else if c.Status == network.StatusFerry {
					color = "#7ab0d0"
				}
				canvas.Circle(tx(c.Position[0]), ty(c.Position[1]), 3, fmt.Sprintf("fill:%s;stroke:#000", color))
			}
		}
	}

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin, opts.Title, "fill:#ffffff;font-size:16px;font-family:sans-serif")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders and writes the world visualization to filepath.
func SaveSVGToFile(snap *worldgen.Snapshot, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(snap, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
