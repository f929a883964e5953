package geometry

import (
	"math"
	"sort"
)

// degenerateAreaEps is the |area| threshold below which a relaxed cell
// keeps its previous site rather than adopting a centroid from a sliver
// polygon.
const degenerateAreaEps = 1e-9

// Diagram is a clipped Voronoi diagram over a square [0,size]x[0,size]
// domain, built as the dual of a Delaunay triangulation.
type Diagram struct {
	Size      float64
	Sites     []Point
	Cells     [][]Point // CCW polygon per site, closing vertex not repeated
	Neighbors [][]int   // unordered neighbor ids per site
}

// BuildVoronoi triangulates points with Delaunay and derives the dual
// Voronoi cell for each site, clipped to [0,size]^2.
func BuildVoronoi(points []Point, size float64) *Diagram {
	d := &Diagram{Size: size, Sites: append([]Point(nil), points...)}
	d.rebuild()
	return d
}

// Relax performs L Lloyd relaxation passes: each site moves to its cell's
// shoelace centroid, then the diagram is rebuilt from the new sites. A
// cell whose clipped polygon is degenerate (|area| < eps) keeps its
// previous site instead of adopting an ill-defined centroid.
func (d *Diagram) Relax(iterations int) {
	for pass := 0; pass < iterations; pass++ {
		next := make([]Point, len(d.Sites))
		for i, cell := range d.Cells {
			if c, ok := PolygonCentroid(cell, degenerateAreaEps); ok {
				next[i] = c
			} else {
				next[i] = d.Sites[i]
			}
		}
		d.Sites = next
		d.rebuild()
	}
}

func (d *Diagram) rebuild() {
	n := len(d.Sites)
	triangles := Triangulate(d.Sites)

	circumcenters := make([]Point, len(triangles))
	for ti, t := range triangles {
		circumcenters[ti] = Circumcenter(d.Sites[t.A], d.Sites[t.B], d.Sites[t.C])
	}

	incident := make([][]Point, n)
	neighborSet := make([]map[int]bool, n)
	for i := range neighborSet {
		neighborSet[i] = make(map[int]bool)
	}
	for ti, t := range triangles {
		cc := circumcenters[ti]
		incident[t.A] = append(incident[t.A], cc)
		incident[t.B] = append(incident[t.B], cc)
		incident[t.C] = append(incident[t.C], cc)
		neighborSet[t.A][t.B], neighborSet[t.A][t.C] = true, true
		neighborSet[t.B][t.A], neighborSet[t.B][t.C] = true, true
		neighborSet[t.C][t.A], neighborSet[t.C][t.B] = true, true
	}

	box := []Point{{0, 0}, {d.Size, 0}, {d.Size, d.Size}, {0, d.Size}}

	cells := make([][]Point, n)
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		cells[i] = clipPolygon(orderByAngle(d.Sites[i], incident[i]), box)
		ns := make([]int, 0, len(neighborSet[i]))
		for j := range neighborSet[i] {
			ns = append(ns, j)
		}
		sort.Ints(ns)
		neighbors[i] = ns
	}

	d.Cells = cells
	d.Neighbors = neighbors
}

// orderByAngle sorts the circumcenters of triangles incident to site by
// polar angle around site, producing an (unclipped) CCW polygon and
// deduplicating coincident circumcenters (cocircular neighboring
// triangles).
func orderByAngle(site Point, pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	type entry struct {
		p     Point
		angle float64
	}
	entries := make([]entry, len(pts))
	for i, p := range pts {
		entries[i] = entry{p, math.Atan2(p.Y-site.Y, p.X-site.X)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].angle < entries[j].angle })

	out := make([]Point, 0, len(entries))
	for i, e := range entries {
		if i > 0 && e.p.Dist2(out[len(out)-1]) < 1e-12 {
			continue
		}
		out = append(out, e.p)
	}
	if len(out) > 1 && out[0].Dist2(out[len(out)-1]) < 1e-12 {
		out = out[:len(out)-1]
	}
	return out
}

// clipPolygon clips subject (assumed simple, any winding) against the
// convex clip polygon (assumed CCW) using Sutherland-Hodgman, and returns
// the CCW result. Voronoi cells whose circumcenters fall outside the map
// square (common for sites near the boundary, whose dual cell is formally
// unbounded) are trimmed to the square by this step.
func clipPolygon(subject, clip []Point) []Point {
	if len(subject) == 0 {
		return nil
	}
	output := subject
	for i := 0; i < len(clip); i++ {
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		input := output
		output = nil
		if len(input) == 0 {
			break
		}
		for j := 0; j < len(input); j++ {
			cur := input[j]
			prev := input[(j-1+len(input))%len(input)]
			curIn := isLeft(a, b, cur)
			prevIn := isLeft(a, b, prev)
			if curIn {
				if !prevIn {
					output = append(output, segmentIntersect(prev, cur, a, b))
				}
				output = append(output, cur)
			} else if prevIn {
				output = append(output, segmentIntersect(prev, cur, a, b))
			}
		}
	}
	if PolygonArea(output) < 0 {
		reverse(output)
	}
	return output
}

func isLeft(a, b, p Point) bool {
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) >= 0
}

func segmentIntersect(p1, p2, a, b Point) Point {
	d1 := p2.Sub(p1)
	d2 := b.Sub(a)
	denom := d1.Cross(d2)
	if denom == 0 {
		return p1
	}
	t := (a.Sub(p1)).Cross(d2) / denom
	return p1.Add(d1.Scale(t))
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
