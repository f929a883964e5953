package validate_test

import (
	"testing"

	"github.com/islandgen/worldgen/pkg/validate"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

func generate(t *testing.T, seed uint32) *worldgen.Snapshot {
	t.Helper()
	cfg := worldgen.DefaultConfig()
	cfg.Seed = seed
	cfg.MapSize = 300
	cfg.Voronoi.CellCount = 400
	cfg.Voronoi.Relaxation = 1

	gen := worldgen.Get(worldgen.AlgorithmVoronoi)
	snap, err := gen.Generate(&cfg, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return snap
}

func TestValidateGeneratedWorldPassesHardConstraints(t *testing.T) {
	snap := generate(t, 4242)
	report := validate.Validate(snap)
	if err := validate.Require(report); err != nil {
		t.Fatalf("expected generated world to satisfy all hard invariants: %v", err)
	}
}

func TestValidateDrainageSoftConstraintIsHigh(t *testing.T) {
	snap := generate(t, 101)
	report := validate.Validate(snap)
	for _, soft := range report.Soft {
		if soft.Name == "Drainage" && soft.Score <= 0.95 {
			t.Fatalf("drainage fraction %v below the 0.95 threshold: %s", soft.Score, soft.Details)
		}
	}
}

func TestRequireReturnsNilForPassingReport(t *testing.T) {
	r := &validate.Report{Passed: true}
	if err := validate.Require(r); err != nil {
		t.Fatalf("expected nil error for a passing report, got %v", err)
	}
}

func TestRequireWrapsFailingReport(t *testing.T) {
	r := &validate.Report{Passed: false, Errors: []string{"something broke"}}
	err := validate.Require(r)
	if err == nil {
		t.Fatal("expected a non-nil error for a failing report")
	}
	if _, ok := err.(*validate.InternalInvariantViolation); !ok {
		t.Fatalf("expected *InternalInvariantViolation, got %T", err)
	}
}
