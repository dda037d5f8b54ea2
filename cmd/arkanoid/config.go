package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in default configuration",
	Long: `Prints the embedded default YAML. Save it to
~/.arkanoid/configs/arkanoid.yaml or ./configs/arkanoid.yaml and edit it to
change the field, the block grid or the speeds.

Example:
  arkanoid config dump > ~/.arkanoid/configs/arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration that would be used",
	Long: `Resolves the configuration the way the game does (--config, then the
user and local config directories, then the built-in default), checks it
and prints the result.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configShowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply: easy, medium, hard")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	fmt.Printf("# speed: %g\n", cfg.Speed())
	_, err = os.Stdout.Write(out)
	return err
}
