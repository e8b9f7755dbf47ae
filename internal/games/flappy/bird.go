package flappy

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Bird is the player-controlled entity. X and Y are the center of its
// hitbox; X never changes after the bird is created.
type Bird struct {
	X, Y          float64
	VY            float64 // Vertical velocity, positive = down
	Width, Height float64 // Full hitbox extents
	Rotation      float64 // Tilt in degrees, presentation only
	FlapFrames    int     // Frames left in the wings-up pose
}

// newBird places a fresh bird at the configured fraction of the viewport.
func newBird(p config.FlappyPlayer, vp core.Viewport) Bird {
	return Bird{
		X:      vp.W * p.XRatio,
		Y:      vp.H * p.YRatio,
		Width:  p.Width,
		Height: p.Height,
	}
}

// Integrate advances the bird by one frame of constant-acceleration motion.
func (b *Bird) Integrate(p config.FlappyPhysics) {
	b.VY += p.Gravity
	b.Y += b.VY
	b.Rotation = core.ClampF(b.VY*p.PitchScale, p.MinRotation, p.MaxRotation)
	if b.FlapFrames > 0 {
		b.FlapFrames--
	}
}

// Impulse replaces the vertical velocity with the jump impulse and
// starts the wings-up pose. Prior velocity is discarded.
func (b *Bird) Impulse(p config.FlappyPhysics) {
	b.VY = p.JumpImpulse
	b.FlapFrames = p.FlapFrames
}

// Sway places the bird on the idle oscillation curve.
func (b *Bird) Sway(baseline, amplitude, phase float64) {
	b.Y = baseline + amplitude*math.Sin(phase)
}

// Box returns the bird's hitbox.
func (b Bird) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Width, b.Height)
}
