// Package network builds the weighted transport graph over a terrain mesh:
// one NetworkEdge per mesh edge (each neighbor pair whose cells share two
// polygon vertices), a Crossing wherever an edge
// spans a river, A* pathfinding over the resulting graph, and a
// usage-driven upgrade pass that advances edge road class and crossing
// status as traffic accumulates.
package network
