// Package cmd implements the mood-curator command line interface.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodcue/go-mood-curator/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mood-curator",
	Short: "Curate mood-matched playlists from a candidate track library",
	Long: `mood-curator turns a library of candidate tracks into a bounded, ordered
playlist matching a target mood. Tracks are scored for relevance, selected
under an artist-diversity cap, and sequenced into a smooth energy
progression, with a short explanation of the result.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the layered configuration and builds a logger at the
// configured level. Logs go to stderr so stdout stays clean for JSON output.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}
