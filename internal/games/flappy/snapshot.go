package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Snapshot is everything a renderer needs to draw one frame.
// It is a copy; holding it does not pin the game's internal state.
type Snapshot struct {
	Mode         core.Mode
	Viewport     core.Viewport
	GroundHeight float64
	Bird         Bird
	Pipes        []Pipe
	PipeWidth    float64
	PipeGap      float64
	Scroll       float64 // Background offset in [0, ScrollPeriod)
	ScrollPeriod float64
	Score        int
	Best         int
	NewBest      bool      // Set on the game-over screen when this run set the best
	Cause        Collision // What ended the run, CollisionNone otherwise
	FrameDelta   time.Duration
	Frames       int
}

// Snapshot captures the drawable state after the last frame.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, len(g.pipes.Pipes()))
	copy(pipes, g.pipes.Pipes())

	return Snapshot{
		Mode:         g.mode,
		Viewport:     g.viewport,
		GroundHeight: g.cfg.World.GroundHeight,
		Bird:         g.bird,
		Pipes:        pipes,
		PipeWidth:    g.cfg.Obstacles.Width,
		PipeGap:      g.cfg.Obstacles.Gap,
		Scroll:       g.scroll,
		ScrollPeriod: g.cfg.World.ScrollPeriod,
		Score:        g.scorer.Score(),
		Best:         g.scorer.Best(),
		NewBest:      g.newBest,
		Cause:        g.cause,
		FrameDelta:   g.frameDelta,
		Frames:       g.frames,
	}
}

// GroundLine returns the y-coordinate of the top of the ground band.
func (s Snapshot) GroundLine() float64 {
	return groundLine(s.Viewport, s.GroundHeight)
}

// Cloud is a background decoration in world units.
type Cloud struct {
	X, Y, W, H float64
}

// baseClouds are laid out once and scrolled with the background.
var baseClouds = []Cloud{
	{X: 80, Y: 80, W: 100, H: 30},
	{X: 300, Y: 120, W: 80, H: 24},
	{X: 500, Y: 60, W: 120, H: 32},
	{X: 200, Y: 200, W: 90, H: 26},
}

// Clouds returns the cloud positions for this frame. They drift at twice
// the scroll offset and wrap a little beyond the viewport.
func (s Snapshot) Clouds() []Cloud {
	out := make([]Cloud, len(baseClouds))
	wrap := s.Viewport.W + 200
	for i, c := range baseClouds {
		c.X = math.Mod(c.X-s.Scroll*2, wrap) - 50
		out[i] = c
	}
	return out
}
