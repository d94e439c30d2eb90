package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// NextPreset returns the preset after p, wrapping around.
func NextPreset(p DifficultyPreset) DifficultyPreset {
	for i, known := range Presets {
		if known == p {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return DifficultyNormal
}

// ApplyTetrisPreset modifies the speed section based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMS = 450
		cfg.Speed.StepMS = 25
		cfg.Speed.MinIntervalMS = 120
	case DifficultyHard:
		cfg.Speed.BaseIntervalMS = 200
		cfg.Speed.StepMS = 20
		cfg.Speed.MinIntervalMS = 50
	case DifficultyFixed:
		cfg.Speed.StepMS = 0
	}
}
