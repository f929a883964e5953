// Package host implements the generator<->caller message protocol of
// spec section 6 as an in-process, channel-backed transport: GENERATE
// emits zero or more PROGRESS messages followed by one TERRAIN_GENERATED
// or ERROR; FIND_PATH yields a single PATH_RESULT. The protocol "can back
// a thread, a task, or an in-process call" per the concurrency model,
// and this is the cheapest faithful implementation, the one exercised by
// this module's own tests.
package host

import (
	"log/slog"

	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

// MessageKind tags the variant carried by a Message.
type MessageKind string

const (
	KindProgress         MessageKind = "PROGRESS"
	KindTerrainGenerated MessageKind = "TERRAIN_GENERATED"
	KindError            MessageKind = "ERROR"
	KindPathResult       MessageKind = "PATH_RESULT"
)

// Message is the single envelope type sent over a Session's output
// channel. Only the field matching Kind is populated.
type Message struct {
	Kind MessageKind

	// PROGRESS
	Percent int
	Stage   string

	// TERRAIN_GENERATED
	Snapshot *worldgen.Snapshot

	// ERROR
	Err error

	// PATH_RESULT
	Path *network.PathResult
}

// Session is one generator instance bound to a logger; it is the
// in-process stand-in for "a thread, a task" hosting the protocol.
type Session struct {
	Logger *slog.Logger
}

// NewSession returns a Session logging to logger, or slog.Default() if
// logger is nil.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{Logger: logger}
}

// Generate runs GENERATE(cfg): it starts the terrain generator on a new
// goroutine and returns the output channel at once. That goroutine emits
// PROGRESS messages as the pipeline reaches each named stage, then exactly
// one TERRAIN_GENERATED or ERROR, then closes the channel. The channel is
// unbuffered, so the pipeline advances only as the caller receives.
func (s *Session) Generate(cfg *worldgen.Config) <-chan Message {
	out := make(chan Message)
	go func() {
		defer close(out)

		gen := worldgen.Get(cfg.GenerationAlgorithm)
		if gen == nil {
			out <- Message{Kind: KindError, Err: worldgen.ErrAlgorithmNotImplemented}
			return
		}

		snap, err := gen.Generate(cfg, func(percent int, stage string) {
			out <- Message{Kind: KindProgress, Percent: percent, Stage: stage}
		})
		if err != nil {
			s.Logger.Error("generation failed", "err", err)
			out <- Message{Kind: KindError, Err: err}
			return
		}
		out <- Message{Kind: KindTerrainGenerated, Snapshot: snap}
	}()
	return out
}

// FindPath runs FIND_PATH(fromId, toId) against an already-generated
// Snapshot's transport network and returns the single PATH_RESULT
// message. A failed search (no route exists) is reported as a normal
// PATH_RESULT with Success=false, never as an ERROR message.
func (s *Session) FindPath(snap *worldgen.Snapshot, fromID, toID int) Message {
	mesh := &terrain.Mesh{Sites: snap.Cells, Bounds: snap.Bounds}
	result := network.FindPath(snap.Network, mesh, fromID, toID)
	if !result.Success {
		s.Logger.Warn("pathfinding failed", "from", fromID, "to", toID, "reason", (&network.PathfindingFailure{From: fromID, To: toID}).Error())
	}
	return Message{Kind: KindPathResult, Path: &result}
}
