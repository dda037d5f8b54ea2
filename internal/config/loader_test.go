package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadArkanoid("")
	require.NoError(t, err)
	assert.Equal(t, DefaultArkanoidConfig(), cfg)
}

func TestLoadArkanoidCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("difficulty: easy\nblocks:\n  count: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadArkanoid(path)
	require.NoError(t, err)

	assert.Equal(t, DifficultyEasy, cfg.Difficulty)
	assert.Equal(t, 10, cfg.Blocks.Count)
	// Keys absent from the file keep their defaults
	assert.Equal(t, 4, cfg.Blocks.Rows)
	assert.Equal(t, 1920.0, cfg.Field.Width)
	assert.Equal(t, 12.0, cfg.Speed())
}

func TestLoadArkanoidMissingCustomPath(t *testing.T) {
	_, err := LoadArkanoid(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadArkanoidLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "arkanoid.yaml"), []byte("difficulty: medium\n"), 0o600))

	cfg, err := LoadArkanoid("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, cfg.Difficulty)
	assert.Equal(t, 18.0, cfg.Speed())
}

func TestSpeedPerDifficulty(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 12},
		{DifficultyMedium, 18},
		{DifficultyHard, 24},
		{"", 18},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			ApplyPreset(&cfg, tc.preset)
			if tc.preset == "" {
				cfg.Difficulty = ""
			}
			assert.Equal(t, tc.want, cfg.Speed())
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, p := range Presets {
		got, err := ParseDifficulty(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParseDifficulty("nightmare")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultArkanoidConfig().Validate())

	cfg := DefaultArkanoidConfig()
	cfg.Blocks.Count = 0
	cfg.Blocks.Rows = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocks.count")
	assert.Contains(t, err.Error(), "blocks.rows")

	cfg = DefaultArkanoidConfig()
	cfg.Difficulty = "impossible"
	require.ErrorIs(t, cfg.Validate(), ErrUnknownDifficulty)
}
