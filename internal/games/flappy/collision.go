package flappy

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Collision classifies the outcome of a collision pass.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionPipe
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// groundLine returns the y-coordinate of the top of the ground band.
func groundLine(vp core.Viewport, groundHeight float64) float64 {
	return vp.H - groundHeight
}

// hitsGround reports whether the bird's bottom edge reached the ground.
func hitsGround(b Bird, vp core.Viewport, groundHeight float64) bool {
	return b.Box().Bottom >= groundLine(vp, groundHeight)
}

// clampCeiling stops the bird at the top of the viewport.
// Returns true if a correction was applied. This never ends the run.
func clampCeiling(b *Bird) bool {
	if b.Box().Top >= 0 {
		return false
	}
	b.Y = b.Height / 2
	b.VY = 0
	return true
}

// hitPipe returns the index of the first pipe the bird touches, or -1.
// The bird's hitbox is shrunk by tolerance on every side so grazes are forgiven.
func hitPipe(b Bird, pipes []Pipe, obs config.FlappyObstacles, tolerance float64) int {
	box := b.Box().Shrink(tolerance)
	for i, p := range pipes {
		if !box.OverlapsX(p.X, p.Right(obs.Width)) {
			continue
		}
		if box.Top < p.TopHeight || box.Bottom > p.GapBottom(obs.Gap) {
			return i
		}
	}
	return -1
}

// checkCollisions runs ground, ceiling and pipe tests in that order.
// Ground and pipe contact are terminal; ceiling contact is corrected in place.
func (g *Game) checkCollisions() Collision {
	if hitsGround(g.bird, g.viewport, g.cfg.World.GroundHeight) {
		return CollisionGround
	}

	clampCeiling(&g.bird)

	if hitPipe(g.bird, g.pipes.Pipes(), g.cfg.Obstacles, g.cfg.Collision.Tolerance) >= 0 {
		return CollisionPipe
	}
	return CollisionNone
}
