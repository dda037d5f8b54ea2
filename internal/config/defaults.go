package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in arkanoid configuration.
// It matches defaults/arkanoid.yaml and is used if the embedded file cannot be parsed.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Difficulty: DifficultyHard,
		Speeds: SpeedTable{
			Easy:   12,
			Medium: 18,
			Hard:   24,
		},
		Field: FieldConfig{
			Width:  1920,
			Height: 1080,
		},
		Blocks: BlocksConfig{
			Count:     32,
			Rows:      4,
			CellWidth: 195,
			RowHeight: 75,
			TopMargin: 105,
			Width:     180,
			Height:    60,
		},
		Paddle: BodyConfig{X: 810, Y: 900, Width: 300, Height: 42},
		Ball:   BodyConfig{X: 930, Y: 840, Width: 60, Height: 60},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `arkanoid config dump`.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
