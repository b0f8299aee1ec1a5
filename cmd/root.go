package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repmax/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Set by the linker at build time.
var (
	version = "dev"
	commit  = "none"
)

var (
	cfgFile string
	cfg     = &config.Config{}
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

var rootCmd = &cobra.Command{
	Use:               "repmax",
	Short:             "Estimate your one-rep max and build a training percentage table",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup merges .env, config file, REPMAX_* env vars and flags into cfg.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	v := config.New(cfgFile)
	for _, key := range []string{"unit", "formula", "lift", "output", "color", "verbose"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	color.NoColor = !cfg.Color || !term.IsTerminal(int(os.Stdout.Fd()))

	logger.Debug("config loaded",
		"config", v.ConfigFileUsed(),
		"unit", cfg.Unit,
		"formula", cfg.Formula,
		"lift", string(cfg.Lift),
		"output", cfg.Output)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/repmax/config.toml)")
	flags.StringP("unit", "u", string(config.DefaultUnit), "Weight unit label: kg or lbs")
	flags.StringP("formula", "f", config.DefaultFormula, "Estimation formula: epley or brzycki")
	flags.StringP("lift", "l", "", "Lift being calculated: bench, squat or deadlift")
	flags.StringP("output", "o", config.DefaultOutput, "Output: table, text, json, csv, toml or yaml")
	flags.Bool("color", true, "Colorize terminal output")
	flags.Bool("verbose", false, "Enable debug logging")
}
