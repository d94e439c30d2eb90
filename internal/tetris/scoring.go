package tetris

import "time"

// DefaultLinePoints is the base award for clearing 1, 2, 3 or 4 rows with a
// single lock. The award is multiplied by the current level.
var DefaultLinePoints = [4]int{100, 300, 500, 800}

// Speed describes how the fall interval shrinks with level.
type Speed struct {
	Base time.Duration // interval at level 1
	Step time.Duration // reduction per level gained
	Min  time.Duration // floor
}

// DefaultSpeed mirrors the classic 300 ms tick.
var DefaultSpeed = Speed{
	Base: 300 * time.Millisecond,
	Step: 30 * time.Millisecond,
	Min:  60 * time.Millisecond,
}

// IntervalFor returns the fall interval at the given level, never below Min.
func (s Speed) IntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := s.Base - time.Duration(level-1)*s.Step
	if interval < s.Min {
		return s.Min
	}
	return interval
}

// Scoring holds the line-clear award table and level threshold.
type Scoring struct {
	LinePoints    [4]int
	LinesPerLevel int
}

// DefaultScoring awards the classic table and levels up every 10 lines.
var DefaultScoring = Scoring{
	LinePoints:    DefaultLinePoints,
	LinesPerLevel: 10,
}

// Award returns the points for clearing rows at once on the given level.
func (s Scoring) Award(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	if rows > len(s.LinePoints) {
		rows = len(s.LinePoints)
	}
	return s.LinePoints[rows-1] * level
}

// LevelFor returns the level reached after clearing lines in total.
func (s Scoring) LevelFor(lines int) int {
	return lines/s.LinesPerLevel + 1
}
