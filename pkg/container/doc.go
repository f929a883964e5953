// Package container provides the generic primitives the terrain and
// network pipelines are built on: a comparator-driven min-heap, an indexed
// priority queue supporting decrease-key for A* and Priority-Flood, and a
// path-compressing, union-by-rank disjoint-set forest for lake-component
// labeling.
package container
