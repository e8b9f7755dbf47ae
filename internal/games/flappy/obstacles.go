package flappy

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Pipe is a pair of barriers with a passable gap between them.
// Width and gap height are shared by all pipes and come from config.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Lower edge of the top barrier = top of the gap
	Scored    bool    // Whether the bird has cleared this pipe
}

// Right returns the x-coordinate of the pipe's trailing edge.
func (p Pipe) Right(width float64) float64 {
	return p.X + width
}

// GapBottom returns the y-coordinate of the upper edge of the bottom barrier.
func (p Pipe) GapBottom(gap float64) float64 {
	return p.TopHeight + gap
}

// RandomSource yields uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right screen order.
type PipeManager struct {
	pipes        []Pipe
	rng          RandomSource
	cfg          config.FlappyObstacles
	groundHeight float64
	lastSpawn    time.Duration
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(rng RandomSource, cfg config.FlappyObstacles, groundHeight float64) *PipeManager {
	return &PipeManager{
		pipes:        make([]Pipe, 0, 8),
		rng:          rng,
		cfg:          cfg,
		groundHeight: groundHeight,
	}
}

// Reset drops every pipe and rewinds the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = make([]Pipe, 0, 8)
	pm.lastSpawn = 0
}

// StartClock sets the origin the next spawn interval is measured from.
func (pm *PipeManager) StartClock(now time.Duration) {
	pm.lastSpawn = now
}

// LastSpawn returns the time of the most recent spawn or clock start.
func (pm *PipeManager) LastSpawn() time.Duration {
	return pm.lastSpawn
}

// MaybeSpawn appends a pipe when more than the spawn interval has elapsed
// since the previous spawn. The timer restarts at now, so cadence follows
// the last spawn rather than a fixed schedule.
func (pm *PipeManager) MaybeSpawn(now time.Duration, vp core.Viewport) bool {
	if now-pm.lastSpawn <= pm.cfg.SpawnInterval() {
		return false
	}
	pm.spawn(vp)
	pm.lastSpawn = now
	return true
}

// GapBand returns the range the top height is drawn from.
// On viewports too short for the band, hi collapses onto lo.
func (pm *PipeManager) GapBand(vp core.Viewport) (lo, hi float64) {
	lo = pm.cfg.EdgeMargin
	hi = vp.H - pm.groundHeight - pm.cfg.Gap - pm.cfg.EdgeMargin
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// spawn appends a new pipe just beyond the right edge of the viewport.
func (pm *PipeManager) spawn(vp core.Viewport) {
	lo, hi := pm.GapBand(vp)
	pm.pipes = append(pm.pipes, Pipe{
		X:         vp.W + pm.cfg.SpawnOverscan,
		TopHeight: lo + pm.rng.Float64()*(hi-lo),
	})
}

// Advance moves every pipe left by one frame, marks pipes whose trailing
// edge is strictly left of birdX as scored, and drops pipes that have left
// the screen. Returns how many pipes were scored this frame.
func (pm *PipeManager) Advance(birdX float64) int {
	scored := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= pm.cfg.Speed

		if !p.Scored && p.Right(pm.cfg.Width) < birdX {
			p.Scored = true
			scored++
		}

		if p.Right(pm.cfg.Width) < -pm.cfg.DespawnOverscan {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return scored
}

// Pipes returns the active pipes, leftmost first.
// The slice is owned by the manager and only valid until the next frame.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
