package worldgen

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/islandgen/worldgen/pkg/network"
)

// Algorithm is the tagged variant selecting which terrain generator backs
// a Config.
type Algorithm string

const (
	AlgorithmGrid    Algorithm = "grid"
	AlgorithmVoronoi Algorithm = "voronoi"
)

// Config specifies every recognized generation parameter. It supports
// YAML parsing and includes comprehensive validation.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint32 `yaml:"seed" json:"seed"`

	// MapSize is the edge length of the square map domain, in meters.
	MapSize float64 `yaml:"mapSize" json:"mapSize"`

	// GenerationAlgorithm selects the terrain generator. Only "voronoi"
	// is implemented by this module; "grid" is accepted but unsupported.
	GenerationAlgorithm Algorithm `yaml:"generationAlgorithm" json:"generationAlgorithm"`

	Voronoi VoronoiCfg `yaml:"voronoi" json:"voronoi"`
	Terrain TerrainCfg `yaml:"terrain" json:"terrain"`
	Network NetworkCfg `yaml:"network" json:"network"`
}

// VoronoiCfg controls site sampling and relaxation.
type VoronoiCfg struct {
	CellCount  int `yaml:"cellCount" json:"cellCount"`
	Relaxation int `yaml:"relaxation" json:"relaxation"`
}

// TerrainCfg controls island masking, elevation, hydrology, and biome
// thresholds.
type TerrainCfg struct {
	LandFraction float64 `yaml:"landFraction" json:"landFraction"`

	PeakElevation       float64 `yaml:"peakElevation" json:"peakElevation"`
	MountainPeakCount   int     `yaml:"mountainPeakCount" json:"mountainPeakCount"`
	Hilliness           float64 `yaml:"hilliness" json:"hilliness"`
	ElevationBlendPower float64 `yaml:"elevationBlendPower" json:"elevationBlendPower"`

	HillNoiseScale     float64 `yaml:"hillNoiseScale" json:"hillNoiseScale"`
	HillNoiseAmplitude float64 `yaml:"hillNoiseAmplitude" json:"hillNoiseAmplitude"`

	IslandNoiseScale   float64 `yaml:"islandNoiseScale" json:"islandNoiseScale"`
	IslandNoiseOctaves int     `yaml:"islandNoiseOctaves" json:"islandNoiseOctaves"`

	RidgeEnabled bool `yaml:"ridgeEnabled" json:"ridgeEnabled"`
	RidgeWidth   int  `yaml:"ridgeWidth" json:"ridgeWidth"`

	RiverThreshold     int `yaml:"riverThreshold" json:"riverThreshold"`
	MoistureDiffusion  int `yaml:"moistureDiffusion" json:"moistureDiffusion"`

	FillSpillEnabled bool    `yaml:"fillSpillEnabled" json:"fillSpillEnabled"`
	MinLakeDepth     float64 `yaml:"minLakeDepth" json:"minLakeDepth"`
	MinLakeArea      int     `yaml:"minLakeArea" json:"minLakeArea"`
}

// NetworkCfg mirrors network.Config for YAML configurability.
type NetworkCfg struct {
	BaseSlopeCost        float64 `yaml:"baseSlopeCost" json:"baseSlopeCost"`
	AltitudeCost         float64 `yaml:"altitudeCost" json:"altitudeCost"`
	WaterCost            float64 `yaml:"waterCost" json:"waterCost"`
	RiverCrossingPenalty float64 `yaml:"riverCrossingPenalty" json:"riverCrossingPenalty"`

	TrailCostMultiplier    float64 `yaml:"trailCostMultiplier" json:"trailCostMultiplier"`
	RoadCostMultiplier     float64 `yaml:"roadCostMultiplier" json:"roadCostMultiplier"`
	TurnpikeCostMultiplier float64 `yaml:"turnpikeCostMultiplier" json:"turnpikeCostMultiplier"`

	TrailThreshold    float64 `yaml:"trailThreshold" json:"trailThreshold"`
	RoadThreshold     float64 `yaml:"roadThreshold" json:"roadThreshold"`
	TurnpikeThreshold float64 `yaml:"turnpikeThreshold" json:"turnpikeThreshold"`
	BridgeThreshold   float64 `yaml:"bridgeThreshold" json:"bridgeThreshold"`

	MaxBridgeWidth float64 `yaml:"maxBridgeWidth" json:"maxBridgeWidth"`
	MinRiverFlow   float64 `yaml:"minRiverFlow" json:"minRiverFlow"`
}

// ToNetworkConfig converts the YAML-facing NetworkCfg into the
// network.Config the transport graph package itself works with.
func (c NetworkCfg) ToNetworkConfig() network.Config {
	return network.Config{
		BaseSlopeCost:          c.BaseSlopeCost,
		AltitudeCost:           c.AltitudeCost,
		WaterCost:              c.WaterCost,
		RiverCrossingPenalty:   c.RiverCrossingPenalty,
		TrailCostMultiplier:    c.TrailCostMultiplier,
		RoadCostMultiplier:     c.RoadCostMultiplier,
		TurnpikeCostMultiplier: c.TurnpikeCostMultiplier,
		TrailThreshold:         c.TrailThreshold,
		RoadThreshold:          c.RoadThreshold,
		TurnpikeThreshold:      c.TurnpikeThreshold,
		BridgeThreshold:        c.BridgeThreshold,
		MaxBridgeWidth:         c.MaxBridgeWidth,
		MinRiverFlow:           c.MinRiverFlow,
	}
}

// DefaultConfig returns a complete, valid configuration matching the
// reference DEFAULT_NETWORK_CONFIG and sensible terrain defaults.
func DefaultConfig() Config {
	return Config{
		MapSize:             500,
		GenerationAlgorithm: AlgorithmVoronoi,
		Voronoi: VoronoiCfg{
			CellCount:  2000,
			Relaxation: 2,
		},
		Terrain: TerrainCfg{
			LandFraction:        0.55,
			PeakElevation:       1000,
			MountainPeakCount:   4,
			Hilliness:           0.35,
			ElevationBlendPower: 2,
			HillNoiseScale:      0.06,
			HillNoiseAmplitude:  0.25,
			IslandNoiseScale:    0.05,
			IslandNoiseOctaves:  4,
			RidgeEnabled:        true,
			RidgeWidth:          2,
			RiverThreshold:      10,
			MoistureDiffusion:   5,
			FillSpillEnabled:    true,
			MinLakeDepth:        0.05,
			MinLakeArea:         3,
		},
		Network: NetworkCfg{
			BaseSlopeCost:          0.01,
			AltitudeCost:           0.0005,
			WaterCost:              1000,
			RiverCrossingPenalty:   20,
			TrailCostMultiplier:    1.0,
			RoadCostMultiplier:     0.5,
			TurnpikeCostMultiplier: 0.2,
			TrailThreshold:         10,
			RoadThreshold:          100,
			TurnpikeThreshold:      500,
			BridgeThreshold:        200,
			MaxBridgeWidth:         4,
			MinRiverFlow:           8,
		},
	}
}

// LoadConfig reads and validates a YAML configuration file, layering it
// over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice over
// DefaultConfig, auto-generates a seed if omitted, and validates the
// result.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	return &cfg, nil
}

// Validate checks the algorithm name and a subset of the numeric fields
// against their domains; fields not tested in its body are not checked.
// It returns the first violation found.
func (c *Config) Validate() error {
	if c.GenerationAlgorithm != AlgorithmGrid && c.GenerationAlgorithm != AlgorithmVoronoi {
		return fmt.Errorf("unknown generationAlgorithm %q", c.GenerationAlgorithm)
	}
	if c.MapSize <= 0 {
		return fmt.Errorf("mapSize must be positive, got %v", c.MapSize)
	}
	if c.Voronoi.CellCount < 3 {
		return fmt.Errorf("voronoiCellCount must be >= 3, got %d", c.Voronoi.CellCount)
	}
	if c.Voronoi.Relaxation < 0 {
		return fmt.Errorf("voronoiRelaxation must be >= 0, got %d", c.Voronoi.Relaxation)
	}
	if c.Terrain.LandFraction < 0.3 || c.Terrain.LandFraction > 0.8 {
		return fmt.Errorf("landFraction must be in [0.3, 0.8], got %v", c.Terrain.LandFraction)
	}
	if c.Terrain.MountainPeakCount < 1 {
		return fmt.Errorf("mountainPeakCount must be >= 1, got %d", c.Terrain.MountainPeakCount)
	}
	if c.Terrain.RidgeWidth < 1 {
		return fmt.Errorf("ridgeWidth must be >= 1, got %d", c.Terrain.RidgeWidth)
	}
	if c.Terrain.RiverThreshold < 1 {
		return fmt.Errorf("riverThreshold must be >= 1, got %d", c.Terrain.RiverThreshold)
	}
	if c.Terrain.MoistureDiffusion < 0 {
		return fmt.Errorf("moistureDiffusion must be >= 0, got %d", c.Terrain.MoistureDiffusion)
	}
	if c.Terrain.MinLakeDepth < 0 {
		return fmt.Errorf("minLakeDepth must be >= 0, got %v", c.Terrain.MinLakeDepth)
	}
	if c.Terrain.MinLakeArea < 1 {
		return fmt.Errorf("minLakeArea must be >= 1, got %d", c.Terrain.MinLakeArea)
	}
	if c.Network.MinRiverFlow <= 0 {
		return fmt.Errorf("minRiverFlow must be positive, got %v", c.Network.MinRiverFlow)
	}
	if c.Network.MaxBridgeWidth <= 0 {
		return fmt.Errorf("maxBridgeWidth must be positive, got %v", c.Network.MaxBridgeWidth)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 hash of the configuration's YAML
// encoding, used to derive per-stage RNG seeds via rng.Derive.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed derives a seed from the current time when none is
// configured.
func generateSeed() uint32 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint32(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// ConfigurationError wraps a validation failure. LoadConfig,
// LoadConfigFromBytes and VoronoiGenerator.Generate return it directly to
// their caller; pkg/host forwards a Generate failure, this one included,
// as its ERROR message.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string { return "configuration error: " + e.Err.Error() }
func (e *ConfigurationError) Unwrap() error { return e.Err }

var errUnsupportedAlgorithm = errors.New("algorithm not implemented in this build")

// ErrAlgorithmNotImplemented is the error pkg/host and cmd/worldgen report
// when GenerationAlgorithm names a recognized variant for which Get returns
// no generator (currently "grid").
var ErrAlgorithmNotImplemented = errUnsupportedAlgorithm
