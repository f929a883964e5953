// Package geometry provides the planar primitives underlying the site
// mesh: Poisson-disk sample distribution (Bridson's algorithm), Delaunay
// triangulation (Bowyer-Watson), and the dual Voronoi diagram with
// Lloyd relaxation.
package geometry
