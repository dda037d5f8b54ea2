// Package config provides YAML-based game configuration loading and
// difficulty presets for arkanoid.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all configuration for a game of arkanoid.
// Every value is fixed when the game is constructed.
type ArkanoidConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Speeds     SpeedTable       `yaml:"speeds"`
	Field      FieldConfig      `yaml:"field"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Paddle     BodyConfig       `yaml:"paddle"`
	Ball       BodyConfig       `yaml:"ball"`
}

// SpeedTable maps each difficulty to the speed shared by paddle and ball.
type SpeedTable struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// FieldConfig defines the playing field size in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlocksConfig defines how many blocks there are and how the grid is laid out.
type BlocksConfig struct {
	Count     int     `yaml:"count"`
	Rows      int     `yaml:"rows"`
	CellWidth float64 `yaml:"cell_width"` // Horizontal pitch; also the left margin
	RowHeight float64 `yaml:"row_height"` // Vertical pitch
	TopMargin float64 `yaml:"top_margin"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// BodyConfig defines the initial rectangle of the paddle or the ball.
type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulties in ascending order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ErrUnknownDifficulty is returned for a difficulty name outside easy/medium/hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty converts a CLI or YAML value into a preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("config: %w %q (want easy, medium or hard)", ErrUnknownDifficulty, name)
}

// Speed returns the entity speed for the configured difficulty.
// An unset or unknown difficulty falls back to medium.
func (c ArkanoidConfig) Speed() float64 {
	switch c.Difficulty {
	case DifficultyEasy:
		return c.Speeds.Easy
	case DifficultyHard:
		return c.Speeds.Hard
	default:
		return c.Speeds.Medium
	}
}

// Validate checks the preconditions the simulation relies on.
// The simulation itself never re-checks them.
func (c ArkanoidConfig) Validate() error {
	var errs []error

	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	if c.Speed() <= 0 {
		errs = append(errs, fmt.Errorf("config: speed for %q must be positive", c.Difficulty))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("config: field size must be positive"))
	}
	if c.Blocks.Count <= 0 {
		errs = append(errs, errors.New("config: blocks.count must be positive"))
	}
	if c.Blocks.Rows <= 0 {
		errs = append(errs, errors.New("config: blocks.rows must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.Field.Width {
		errs = append(errs, errors.New("config: paddle.width must fit the field"))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, errors.New("config: ball size must be positive"))
	}

	return errors.Join(errs...)
}
