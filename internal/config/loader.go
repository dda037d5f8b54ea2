package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads the arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultArkanoidConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "arkanoid.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultArkanoidConfig()
	}

	// Use embedded default YAML
	var embedded ArkanoidConfig
	if err := yaml.Unmarshal(defaultArkanoidYAML, &embedded); err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}

// ApplyPreset sets the difficulty. An empty preset leaves the loaded value alone.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}
