package flappy

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// handleInput applies the input edges latched since the previous frame.
// Jump is looked at before restart so a jump pressed on the game-over
// screen can never start the next run.
func (g *Game) handleInput(now time.Duration, in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.jump(now)
	}
	if in.Has(core.ActionRestart) {
		g.restart()
	}
}

// jump starts the run from idle or applies an impulse while playing.
// It does nothing on the game-over screen.
func (g *Game) jump(now time.Duration) {
	switch g.mode {
	case core.ModeIdle:
		g.start(now)
	case core.ModePlaying:
		g.bird.Impulse(g.cfg.Physics)
		g.emit(core.EventImpulse)
	}
}

// start moves idle -> playing. The launch impulse does not trigger
// the wings-up pose.
func (g *Game) start(now time.Duration) {
	g.mode = core.ModePlaying
	g.bird.VY = g.cfg.Physics.JumpImpulse
	g.pipes.StartClock(now)
	g.emit(core.EventRunStarted)
}

// die moves playing -> terminal and settles the best score.
func (g *Game) die(cause Collision) {
	g.mode = core.ModeTerminal
	g.cause = cause

	newBest, err := g.scorer.Finish()
	g.newBest = newBest
	g.events = append(g.events, core.Event{
		Kind:    core.EventGameOver,
		Score:   g.scorer.Score(),
		Best:    g.scorer.Best(),
		NewBest: newBest,
		Cause:   cause.String(),
	})
	if err != nil {
		g.events = append(g.events, core.Event{
			Kind:  core.EventPersistFailed,
			Score: g.scorer.Score(),
			Best:  g.scorer.Best(),
			Err:   err,
		})
	}
}

// restart moves terminal -> idle with a completely fresh session.
// Outside the game-over screen it does nothing.
func (g *Game) restart() {
	if g.mode != core.ModeTerminal {
		return
	}
	g.newSession()
	g.emit(core.EventRestarted)
}

// newSession replaces the bird and pipes and zeroes the run counters.
func (g *Game) newSession() {
	g.mode = core.ModeIdle
	g.bird = newBird(g.cfg.Player, g.viewport)
	g.pipes.Reset()
	g.scorer.Reset()
	g.scroll = 0
	g.newBest = false
	g.cause = CollisionNone
}

// emit records an event carrying the current scores.
func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Score: g.scorer.Score(),
		Best:  g.scorer.Best(),
	})
}
