package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagSound       bool
	flagSoundVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: tetris).

Controls:
  Left/Right, h/l  - Move
  Up, k, x         - Rotate clockwise
  Down, j          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Values from the config file
  hard   - Fast start, quick speed-up
  fixed  - No speed-up on level change

Examples:
  tetris play
  tetris play tetris_wide
  tetris play --difficulty hard --sound
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().Float64Var(&flagSoundVolume, "volume", 0.5, "Sound volume (0.0-1.0)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.Classic.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'tetris list')", gameID)
	}

	difficulty, err := difficultyFlag()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGames(logger, difficulty); err != nil {
		return err
	}

	if flagSound {
		sounds := audio.NewSoundManager(flagSoundVolume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sounds.Cleanup()
			tetris.SetSoundPlayer(sounds)
			defer tetris.SetSoundPlayer(nil)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
