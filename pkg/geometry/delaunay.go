package geometry

import "math"

// Triangle holds indices into the point slice passed to Triangulate.
type Triangle struct {
	A, B, C int
}

type edge struct {
	A, B int
}

func (e edge) normalized() edge {
	if e.A > e.B {
		return edge{e.B, e.A}
	}
	return e
}

// Triangulate computes the Delaunay triangulation of points using the
// Bowyer-Watson incremental algorithm. Returned triangle indices refer to
// positions in points.
func Triangulate(points []Point) []Triangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	// Build a super-triangle that strictly contains every input point, so
	// incremental insertion never has to special-case the convex hull.
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	work := make([]Point, n, n+3)
	copy(work, points)
	work = append(work,
		Point{midX - 20*deltaMax, midY - deltaMax},
		Point{midX, midY + 20*deltaMax},
		Point{midX + 20*deltaMax, midY - deltaMax},
	)
	superA, superB, superC := n, n+1, n+2

	triangles := []Triangle{{superA, superB, superC}}

	for i := 0; i < n; i++ {
		p := work[i]

		var bad []int
		for ti, t := range triangles {
			if inCircumcircle(work[t.A], work[t.B], work[t.C], p) {
				bad = append(bad, ti)
			}
		}

		// Boundary of the cavity: edges that belong to exactly one bad
		// triangle.
		edgeCount := make(map[edge]int)
		edgeOwner := make(map[edge]edge) // normalized -> original orientation
		for _, ti := range bad {
			t := triangles[ti]
			for _, e := range [...]edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
				ne := e.normalized()
				edgeCount[ne]++
				edgeOwner[ne] = e
			}
		}

		keep := triangles[:0:0]
		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		for ti, t := range triangles {
			if !badSet[ti] {
				keep = append(keep, t)
			}
		}
		triangles = keep

		for ne, cnt := range edgeCount {
			if cnt != 1 {
				continue
			}
			e := edgeOwner[ne]
			triangles = append(triangles, Triangle{e.A, e.B, i})
		}
	}

	final := triangles[:0:0]
	for _, t := range triangles {
		if t.A == superA || t.A == superB || t.A == superC ||
			t.B == superA || t.B == superB || t.B == superC ||
			t.C == superA || t.C == superB || t.C == superC {
			continue
		}
		final = append(final, t)
	}
	return final
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of a,b,c, assuming a,b,c are in counter-clockwise order (the standard
// Bowyer-Watson in-circle determinant test).
func inCircumcircle(a, b, c, d Point) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	ap := ax*ax + ay*ay
	bp := bx*bx + by*by
	cp := cx*cx + cy*cy

	det := ax*(by*cp-bp*cy) - ay*(bx*cp-bp*cx) + ap*(bx*cy-by*cx)

	// Orientation of a,b,c determines the sign convention for "inside".
	orient := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if orient < 0 {
		det = -det
	}
	return det > 0
}

// Circumcenter returns the circumcenter of triangle a,b,c.
func Circumcenter(a, b, c Point) Point {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		// Degenerate (collinear) triangle: fall back to centroid.
		return Point{(ax + bx + cx) / 3, (ay + by + cy) / 3}
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	return Point{ux, uy}
}
