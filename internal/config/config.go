// Package config provides YAML-based game configuration loading for skyhop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tunables of the flappy simulation.
// Distances are in world units (pixels in the window frontend),
// velocities per frame and accelerations per frame squared.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Idle      FlappyIdle      `yaml:"idle"`
	World     FlappyWorld     `yaml:"world"`
	Collision FlappyCollision `yaml:"collision"`
	Render    FlappyRender    `yaml:"render"`
	Storage   FlappyStorage   `yaml:"storage"`
}

// FlappyPhysics defines the integrator parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
	PitchScale  float64 `yaml:"pitch_scale"`  // degrees of tilt per unit of velocity
	MinRotation float64 `yaml:"min_rotation"`
	MaxRotation float64 `yaml:"max_rotation"`
	FlapFrames  int     `yaml:"flap_frames"` // frames the impulse pose is held
}

// FlappyObstacles defines pipe geometry and the spawn schedule.
type FlappyObstacles struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	EdgeMargin      float64 `yaml:"edge_margin"`      // keep gaps this far from the top and the ground
	SpawnOverscan   float64 `yaml:"spawn_overscan"`   // pipes appear this far right of the viewport
	DespawnOverscan float64 `yaml:"despawn_overscan"` // pipes expire this far left of the viewport
}

// SpawnInterval returns the spawn interval as a duration.
func (o FlappyObstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// FlappyPlayer defines the entity size and its starting position
// as fractions of the viewport.
type FlappyPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	XRatio float64 `yaml:"x_ratio"`
	YRatio float64 `yaml:"y_ratio"`
}

// FlappyIdle defines the pre-game sway animation.
type FlappyIdle struct {
	Amplitude float64 `yaml:"amplitude"`
	PhaseStep float64 `yaml:"phase_step"` // radians per frame
}

// FlappyWorld defines the ground band and background scrolling.
type FlappyWorld struct {
	GroundHeight float64 `yaml:"ground_height"`
	ScrollFactor float64 `yaml:"scroll_factor"` // fraction of pipe speed
	ScrollPeriod float64 `yaml:"scroll_period"` // offset wraps at this value
}

// FlappyCollision defines the near-miss forgiveness.
type FlappyCollision struct {
	Tolerance float64 `yaml:"tolerance"`
}

// FlappyRender defines how many world units one terminal cell covers.
type FlappyRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// FlappyStorage defines where the best score is persisted.
type FlappyStorage struct {
	BestKey string `yaml:"best_key"`
}

// Validate rejects values the simulation cannot work with.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap", c.Obstacles.Gap},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.spawn_interval_ms", float64(c.Obstacles.SpawnIntervalMS)},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"world.scroll_period", c.World.ScrollPeriod},
		{"render.cell_width", c.Render.CellWidth},
		{"render.cell_height", c.Render.CellHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.value, ErrInvalid)
		}
	}

	if c.Physics.MinRotation > c.Physics.MaxRotation {
		return fmt.Errorf("config: physics.min_rotation %v exceeds max_rotation %v: %w",
			c.Physics.MinRotation, c.Physics.MaxRotation, ErrInvalid)
	}
	if c.Collision.Tolerance < 0 {
		return fmt.Errorf("config: collision.tolerance must not be negative: %w", ErrInvalid)
	}
	if c.Storage.BestKey == "" {
		return fmt.Errorf("config: storage.best_key must be set: %w", ErrInvalid)
	}
	return nil
}
