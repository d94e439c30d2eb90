// Package config provides YAML-based game configuration loading and
// difficulty presets for the falling-block puzzle.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for the puzzle.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	HiddenRows int `yaml:"hidden_rows"` // top rows used for spawning, not drawn
}

// SpeedConfig defines the fall interval progression.
type SpeedConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	StepMS         int `yaml:"step_ms"` // reduction per level, 0 keeps the speed fixed
	MinIntervalMS  int `yaml:"min_interval_ms"`
}

// ScoringConfig defines line awards and the level threshold.
type ScoringConfig struct {
	LinePoints    []int `yaml:"line_points"` // award for 1, 2, 3 and 4 rows
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// DisplayConfig toggles optional HUD elements.
type DisplayConfig struct {
	Ghost       bool `yaml:"ghost"`
	NextPreview bool `yaml:"next_preview"`
}

// VisibleRows returns the number of rows drawn on screen.
func (b BoardConfig) VisibleRows() int {
	return b.Height - b.HiddenRows
}

// Validate rejects configurations the engine cannot run with.
func (c TetrisConfig) Validate() error {
	b := c.Board
	if b.Width < tetris.MinWidth || b.Height < tetris.MinHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			tetris.ErrInvalidConfig, b.Width, b.Height, tetris.MinWidth, tetris.MinHeight)
	}
	if b.HiddenRows < 0 || b.HiddenRows >= b.Height {
		return fmt.Errorf("%w: hidden_rows %d must be in [0, %d)",
			tetris.ErrInvalidConfig, b.HiddenRows, b.Height)
	}

	s := c.Speed
	if s.BaseIntervalMS <= 0 || s.MinIntervalMS <= 0 {
		return fmt.Errorf("%w: intervals must be positive", tetris.ErrInvalidConfig)
	}
	if s.MinIntervalMS > s.BaseIntervalMS {
		return fmt.Errorf("%w: min_interval_ms %d exceeds base_interval_ms %d",
			tetris.ErrInvalidConfig, s.MinIntervalMS, s.BaseIntervalMS)
	}
	if s.StepMS < 0 {
		return fmt.Errorf("%w: step_ms must not be negative", tetris.ErrInvalidConfig)
	}

	if len(c.Scoring.LinePoints) != 4 {
		return fmt.Errorf("%w: line_points needs 4 entries, got %d",
			tetris.ErrInvalidConfig, len(c.Scoring.LinePoints))
	}
	for _, p := range c.Scoring.LinePoints {
		if p < 0 {
			return fmt.Errorf("%w: line_points must not be negative", tetris.ErrInvalidConfig)
		}
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: lines_per_level must be positive", tetris.ErrInvalidConfig)
	}
	return nil
}

// EngineOptions converts the config into engine options. Rand and
// Scheduler are left for the caller.
func (c TetrisConfig) EngineOptions() tetris.Options {
	opts := tetris.Options{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Speed: tetris.Speed{
			Base: time.Duration(c.Speed.BaseIntervalMS) * time.Millisecond,
			Step: time.Duration(c.Speed.StepMS) * time.Millisecond,
			Min:  time.Duration(c.Speed.MinIntervalMS) * time.Millisecond,
		},
		Scoring: tetris.Scoring{LinesPerLevel: c.Scoring.LinesPerLevel},
	}
	copy(opts.Scoring.LinePoints[:], c.Scoring.LinePoints)
	return opts
}
