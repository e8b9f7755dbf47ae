package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.45,
			JumpImpulse: -7.5,
			PitchScale:  3,
			MinRotation: -30,
			MaxRotation: 70,
			FlapFrames:  6,
		},
		Obstacles: FlappyObstacles{
			Width:           60,
			Gap:             150,
			Speed:           2.5,
			SpawnIntervalMS: 1800,
			EdgeMargin:      80,
			SpawnOverscan:   10,
			DespawnOverscan: 10,
		},
		Player: FlappyPlayer{
			Width:  38,
			Height: 28,
			XRatio: 0.25,
			YRatio: 0.4,
		},
		Idle: FlappyIdle{
			Amplitude: 12,
			PhaseStep: 0.04,
		},
		World: FlappyWorld{
			GroundHeight: 80,
			ScrollFactor: 0.5,
			ScrollPeriod: 24,
		},
		Collision: FlappyCollision{
			Tolerance: 4,
		},
		Render: FlappyRender{
			CellWidth:  8,
			CellHeight: 20,
		},
		Storage: FlappyStorage{
			BestKey: "flappy_best",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
