package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Tab or d to change difficulty,
Enter to start. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Tab/d        - Cycle difficulty
  Enter/Space  - Start
  Q/Esc        - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --difficulty hard`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	difficulty, err := difficultyFlag()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := checkConfig(); err != nil {
		return err
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Keep size changes made while the menu was open
		cfg = result.Config
		difficulty = result.Difficulty
		if result.Quit {
			return nil
		}

		if err := configureGames(logger, difficulty); err != nil {
			return err
		}
		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
