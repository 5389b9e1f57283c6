package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  32,
			Height: 20,
		},
		Gameplay: GameplayConfig{
			TickRate:      10,
			PointsPerFood: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
