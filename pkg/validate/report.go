// Package validate checks a generated Snapshot and TransportNetwork
// against the universal invariants every generated world must satisfy:
// neighbor symmetry, coastal consistency, elevation sign, filled elevation
// not below terrain, drainage, flow accumulation, lake coherence, edge
// uniqueness, and non-negative edge cost. It mirrors the teacher's
// hard/soft-constraint report shape, adapted to terrain invariants
// instead of dungeon layout constraints.
package validate

import "fmt"

// ConstraintResult is the outcome of a single named invariant check.
type ConstraintResult struct {
	Name      string
	Severity  string // "hard" or "soft"
	Satisfied bool
	Score     float64 // 1.0 for satisfied hard constraints, a fraction for soft
	Details   string
}

// Report is the complete set of constraint results from a Validate call.
type Report struct {
	Passed bool
	Hard   []ConstraintResult
	Soft   []ConstraintResult
	Errors []string
}

// InternalInvariantViolation is returned by Require when a Report failed
// one or more hard constraints. Generation code treats it as fatal in
// test builds and merely logs-and-continues in release, per the
// ConfigurationError/PathfindingFailure/InternalInvariantViolation error
// taxonomy: a land site Priority-Flood left unreachable, or a lake without
// a coherent water level, surfaces here rather than panicking mid-pipeline.
type InternalInvariantViolation struct {
	Report *Report
}

func (e *InternalInvariantViolation) Error() string {
	if e.Report == nil || len(e.Report.Errors) == 0 {
		return "internal invariant violation"
	}
	msg := "internal invariant violation: " + e.Report.Errors[0]
	if len(e.Report.Errors) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(e.Report.Errors)-1)
	}
	return msg
}

// Require returns an *InternalInvariantViolation if r failed any hard
// constraint, or nil if r passed.
func Require(r *Report) error {
	if r.Passed {
		return nil
	}
	return &InternalInvariantViolation{Report: r}
}

func newHardResult(name string, satisfied bool, details string) ConstraintResult {
	score := 0.0
	if satisfied {
		score = 1.0
	}
	return ConstraintResult{Name: name, Severity: "hard", Satisfied: satisfied, Score: score, Details: details}
}

func newSoftResult(name string, score float64, details string) ConstraintResult {
	return ConstraintResult{Name: name, Severity: "soft", Satisfied: score > 0.95, Score: score, Details: details}
}

func (r *Report) addHard(name string, satisfied bool, format string, args ...interface{}) {
	res := newHardResult(name, satisfied, fmt.Sprintf(format, args...))
	r.Hard = append(r.Hard, res)
	if !satisfied {
		r.Passed = false
		r.Errors = append(r.Errors, res.Details)
	}
}

func (r *Report) addSoft(name string, score float64, format string, args ...interface{}) {
	r.Soft = append(r.Soft, newSoftResult(name, score, fmt.Sprintf(format, args...)))
}
