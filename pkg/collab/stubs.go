package collab

// NopBuildingPlacer leaves Settlement.Buildings untouched. Procedural
// building geometry is out of scope.
type NopBuildingPlacer struct{}

func (NopBuildingPlacer) PlaceBuildings(s *Settlement) error { return nil }

// NopStreetPlacer leaves Settlement.Streets untouched. Procedural street
// geometry is out of scope.
type NopStreetPlacer struct{}

func (NopStreetPlacer) PlaceStreets(s *Settlement) error { return nil }
