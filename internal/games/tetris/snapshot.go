package tetris

import engine "github.com/vovakirdan/tui-tetris/internal/tetris"

// Snapshot captures the game for determinism checks.
type Snapshot struct {
	Frames uint64
	Engine engine.Snapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames: g.frames,
		Engine: g.engine.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	e := &snap.Engine
	h := snap.Frames
	h = h*31 + uint64(e.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Lines)    //#nosec G115 -- hash computation
	h = h*31 + uint64(e.CurrentX) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.CurrentY) //#nosec G115 -- hash computation
	h = h*31 + uint64(e.Current)
	h = h*31 + uint64(e.Next)
	h = h*31 + uint64(e.State) //#nosec G115 -- hash computation

	for _, row := range e.Cells {
		for _, k := range row {
			h = h*31 + uint64(k)
		}
	}
	return h
}
