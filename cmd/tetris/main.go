// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available variants
//	tetris play [variant]    - Play a variant (default: tetris)
//	tetris menu              - Pick a variant and difficulty interactively
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris for the terminal: stack falling pieces, clear full rows,
and survive as the speed rises.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play tetris_wide --difficulty hard
  tetris menu --fps 30
  tetris serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Without --log-file logs are
// discarded unless fallback is non-nil. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := io.Discard
	if fallback != nil {
		w = fallback
	}
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// difficultyFlag parses --difficulty. Empty means normal.
func difficultyFlag() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return config.DifficultyNormal, nil
	}
	return config.ParsePreset(flagDifficulty)
}

// configureGames checks --config and hands the global flags to the tetris
// package before any game instance is created.
func configureGames(logger *log.Logger, difficulty config.DifficultyPreset) error {
	if err := checkConfig(); err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(string(difficulty))
	tetris.SetLogger(logger)
	return nil
}

// checkConfig loads the game config once so a broken file stops the
// command instead of falling back to the defaults.
func checkConfig() error {
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
