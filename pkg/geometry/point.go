package geometry

import "math"

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Dist2 returns the squared Euclidean distance between p and q, avoiding a
// sqrt when only comparisons are needed.
func (p Point) Dist2(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Cross returns the z-component of (p x q), treating p and q as vectors
// from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// PolygonArea returns the signed area of a closed polygon (positive for
// CCW vertex order) via the shoelace formula. verts must not repeat the
// closing vertex.
func PolygonArea(verts []Point) float64 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}

// PolygonCentroid returns the area-weighted centroid of a closed polygon
// via the shoelace formula. If the polygon is degenerate (|area| < eps),
// ok is false and callers should retain the previous site instead.
func PolygonCentroid(verts []Point, eps float64) (c Point, ok bool) {
	area := PolygonArea(verts)
	if math.Abs(area) < eps {
		return Point{}, false
	}
	n := len(verts)
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
		cx += (verts[i].X + verts[j].X) * cross
		cy += (verts[i].Y + verts[j].Y) * cross
	}
	factor := 1.0 / (6 * area)
	return Point{X: cx * factor, Y: cy * factor}, true
}
