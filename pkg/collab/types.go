package collab

import (
	"github.com/google/uuid"

	"github.com/islandgen/worldgen/pkg/geometry"
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

// Parcel is a contiguous group of land sites carved out of a Snapshot for
// later cadastral use. IDs are name-based UUIDs derived from the member
// site ids rather than array indices, so regenerating the same world
// yields the same IDs and callers can persist or diff parcels.
type Parcel struct {
	ID        uuid.UUID
	Sites     []int
	Perimeter []geometry.Point
}

// Settlement is a seeded population center anchored to a coastal or
// riverine site. Buildings and Streets are left empty by every shipped
// SettlementSeeder; they exist so a BuildingPlacer/StreetPlacer has a
// well-typed home to populate.
type Settlement struct {
	ID        uuid.UUID
	Name      string
	AnchorSite int
	Location  geometry.Point
	Parcel    *Parcel

	Buildings []Building
	Streets   []Street
}

// Building is a placeholder footprint; BuildingPlacer implementations
// populate Settlement.Buildings with these.
type Building struct {
	ID       uuid.UUID
	Footprint []geometry.Point
}

// Street is a placeholder centerline; StreetPlacer implementations
// populate Settlement.Streets with these.
type Street struct {
	ID     uuid.UUID
	Points []geometry.Point
}

// RenderMesh is the eventual output of a RenderMeshBuilder: flattened
// vertex/index buffers suitable for a 3D renderer. Nothing in this module
// constructs one; the type exists so the interface below is well-typed.
type RenderMesh struct {
	Vertices []geometry.Point
	Indices  []int
}

// CadastralSubdivider partitions a generated world into ownable parcels.
type CadastralSubdivider interface {
	Subdivide(snap *worldgen.Snapshot) ([]Parcel, error)
}

// SettlementSeeder places settlements onto a generated world and its
// transport network.
type SettlementSeeder interface {
	Seed(snap *worldgen.Snapshot, net *network.Network) ([]Settlement, error)
}

// BuildingPlacer fills a Settlement's Buildings slice. Procedural building
// geometry is out of scope; NopBuildingPlacer is the only implementation.
type BuildingPlacer interface {
	PlaceBuildings(s *Settlement) error
}

// StreetPlacer fills a Settlement's Streets slice. Procedural street
// geometry is out of scope; NopStreetPlacer is the only implementation.
type StreetPlacer interface {
	PlaceStreets(s *Settlement) error
}

// RenderMeshBuilder turns a Snapshot into a renderable 3D mesh. No
// implementation ships; 3D rendering is out of scope.
type RenderMeshBuilder interface {
	Build(snap *worldgen.Snapshot) (*RenderMesh, error)
}
