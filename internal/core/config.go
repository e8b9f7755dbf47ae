package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Frontends fill it from flags and the terminal or window size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall-clock duration of one frame at TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Mode is the top-level phase of a run.
type Mode int

const (
	ModeIdle     Mode = iota // waiting for the first jump, entity sways
	ModePlaying              // full simulation active
	ModeTerminal             // run ended, summary shown until restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlaying:
		return "playing"
	case ModeTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// GameState is the status a game reports to the platform after each frame.
type GameState struct {
	Mode  Mode
	Score int // Current run score
	Best  int // Best score across runs
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Mode == ModeTerminal
}

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventRunStarted    EventKind = iota // idle -> playing
	EventImpulse                        // jump applied while playing
	EventScored                         // an obstacle was cleared
	EventGameOver                       // playing -> terminal
	EventRestarted                      // terminal -> idle
	EventPersistFailed                  // best score could not be written
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventImpulse:
		return "impulse"
	case EventScored:
		return "scored"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventPersistFailed:
		return "persist_failed"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for frontends to react to
// (show/hide prompts, log, save history).
type Event struct {
	Kind    EventKind
	Score   int
	Best    int
	NewBest bool   // set on EventGameOver when Best grew this run
	Cause   string // set on EventGameOver, what ended the run
	Err     error  // set on EventPersistFailed
}

// StepResult is returned by a game after each simulation frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this frame.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
