// Package terrain builds the polygonal site mesh and runs the hydrology
// pipeline over it: island masking, elevation assignment, Priority-Flood
// depression filling and lake identification, flow routing and
// accumulation, river edge extraction, and moisture/biome classification.
//
// Every exported stage function is a pure transform over a *Mesh: it reads
// fields set by earlier stages and writes only the fields the data model
// assigns to that stage (see Site's field comments), so the pipeline can
// be replayed deterministically stage by stage.
package terrain
