package network

import "fmt"

// PathfindingFailure describes an unsuccessful FindPath query. It is
// never returned as a Go error by FindPath itself; a failed search is a
// normal outcome reported through PathResult.Success, but callers that
// need to log or propagate the failure as an error (e.g. the host message
// protocol's PATH_RESULT handler) can wrap a PathResult in one.
type PathfindingFailure struct {
	From, To int
}

func (e *PathfindingFailure) Error() string {
	return fmt.Sprintf("no path from site %d to site %d", e.From, e.To)
}

// Config bundles every tunable in the base-cost formula, crossing
// inheritance, and the usage-driven upgrade thresholds.
type Config struct {
	BaseSlopeCost        float64
	AltitudeCost         float64
	WaterCost            float64
	RiverCrossingPenalty float64

	TrailCostMultiplier    float64
	RoadCostMultiplier     float64
	TurnpikeCostMultiplier float64

	TrailThreshold    float64
	RoadThreshold     float64
	TurnpikeThreshold float64
	BridgeThreshold   float64

	MaxBridgeWidth float64
	MinRiverFlow   float64
}

// DefaultConfig mirrors the reference DEFAULT_NETWORK_CONFIG used by the
// acceptance scenarios: gentle slope/altitude penalties, a steep water
// cost that effectively rules out sea edges, and thresholds reachable
// within a few hundred units of usage.
func DefaultConfig() Config {
	return Config{
		BaseSlopeCost:        0.01,
		AltitudeCost:         0.0005,
		WaterCost:            1000,
		RiverCrossingPenalty: 20,

		TrailCostMultiplier:    1.0,
		RoadCostMultiplier:     0.5,
		TurnpikeCostMultiplier: 0.2,

		TrailThreshold:    10,
		RoadThreshold:     100,
		TurnpikeThreshold: 500,
		BridgeThreshold:   200,

		MaxBridgeWidth: 4,
		MinRiverFlow:   8,
	}
}
