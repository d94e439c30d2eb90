package tetris

import "time"

// Snapshot is a read-only copy of everything a display needs. Mutating it
// has no effect on the engine.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Kind // Cells[row][col], row 0 is the bottom

	Current      Kind
	CurrentX     int
	CurrentY     int
	CurrentCells [4]Offset // absolute grid cells, valid when Current != Empty

	HasGhost   bool
	GhostY     int
	GhostCells [4]Offset

	Next      Kind
	NextCells [4]Offset // canonical offsets of the next kind

	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	State    RunState
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:     e.grid.Width(),
		Height:    e.grid.Height(),
		Cells:     e.grid.Rows(),
		Current:   e.current.Kind(),
		CurrentX:  e.curX,
		CurrentY:  e.curY,
		Next:      e.next,
		NextCells: TemplateFor(e.next).Offsets,
		Score:     e.score,
		Level:     e.level,
		Lines:     e.lines,
		Interval:  e.interval,
		State:     e.state,
	}

	if s.Current != Empty {
		s.CurrentCells = e.current.Absolute(e.curX, e.curY)
		if e.state == StateRunning || e.state == StatePaused {
			s.HasGhost = true
			s.GhostY = e.GhostY()
			s.GhostCells = e.current.Absolute(e.curX, s.GhostY)
		}
	}
	return s
}
