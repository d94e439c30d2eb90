package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic 10x22 configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     22,
			HiddenRows: 2,
		},
		Speed: SpeedConfig{
			BaseIntervalMS: 300,
			StepMS:         30,
			MinIntervalMS:  60,
		},
		Scoring: ScoringConfig{
			LinePoints:    []int{100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Display: DisplayConfig{
			Ghost:       true,
			NextPreview: true,
		},
	}
}
