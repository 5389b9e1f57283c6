// Package config provides YAML-based configuration loading for the
// snake game: board geometry, tick cadence and scoring.
package config

import "fmt"

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the grid the game is played on. Dimensions are
// in grid cells and fixed once the game is constructed.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines pacing and scoring parameters.
type GameplayConfig struct {
	TickRate      int `yaml:"tick_rate"`       // Simulation ticks per second
	PointsPerFood int `yaml:"points_per_food"` // Score per food item
}

// Validate rejects configurations the game cannot run with. Board
// minimums are enforced again at game construction; checking here
// gives the user a config-shaped error message first.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d",
			c.Board.Width, c.Board.Height)
	}
	if c.Gameplay.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Gameplay.TickRate)
	}
	if c.Gameplay.PointsPerFood <= 0 {
		return fmt.Errorf("config: points_per_food must be positive, got %d", c.Gameplay.PointsPerFood)
	}
	return nil
}
