package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
)

const (
	cellW      = 2  // screen columns per grid cell
	panelW     = 16 // side panel width including border
	panelGap   = 2
	previewH   = 6 // NEXT box height including border
	statsLines = 11
)

// layout holds the screen positions derived from the terminal size.
type layout struct {
	well    core.Rect
	panelX  int
	visible int
	reqW    int
	reqH    int
	fits    bool
}

func (g *Game) layout() layout {
	b := g.cfg.Board
	l := layout{visible: b.VisibleRows()}

	wellW := b.Width*cellW + 2
	wellH := l.visible + 2
	l.reqW = wellW + panelGap + panelW
	l.reqH = max(wellH, g.panelHeight())

	x := (g.runtime.ScreenW - l.reqW) / 2
	y := (g.runtime.ScreenH - l.reqH) / 2
	l.well = core.NewRect(x, y, wellW, wellH)
	l.panelX = l.well.Right() + panelGap
	l.fits = g.runtime.ScreenW >= l.reqW && g.runtime.ScreenH >= l.reqH
	return l
}

func (g *Game) panelHeight() int {
	if g.cfg.Display.NextPreview {
		return previewH + 1 + statsLines
	}
	return statsLines
}

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	l := g.layout()
	if !l.fits {
		g.renderTooSmall(dst, l)
		return
	}

	snap := g.engine.Snapshot()
	g.renderWell(dst, l, snap)
	g.renderPanel(dst, l, snap)

	switch snap.State {
	case engine.StatePaused:
		g.renderOverlay(dst, l, "PAUSED", "P to resume")
	case engine.StateGameOver:
		g.renderOverlay(dst, l, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "R restart  Q quit")
	}
}

// renderWell draws the border, settled cells, ghost and falling piece.
// Rows at or above the visible height are the hidden spawn area.
func (g *Game) renderWell(dst *core.Screen, l layout, snap engine.Snapshot) {
	dst.DrawBoxColor(l.well, core.ColorGray)

	for row := 0; row < l.visible; row++ {
		for col := 0; col < snap.Width; col++ {
			if k := snap.Cells[row][col]; k != engine.Empty {
				g.drawCell(dst, l, col, row, BlockChar, k.Color())
			}
		}
	}

	if g.cfg.Display.Ghost && snap.HasGhost {
		for _, c := range snap.GhostCells {
			g.drawCell(dst, l, c.X, c.Y, GhostChar, core.ColorDarkGray)
		}
	}

	if snap.Current != engine.Empty {
		for _, c := range snap.CurrentCells {
			g.drawCell(dst, l, c.X, c.Y, BlockChar, snap.Current.Color())
		}
	}
}

// drawCell paints one grid cell. Cells outside the well interior, which
// includes the hidden rows, are skipped.
func (g *Game) drawCell(dst *core.Screen, l layout, col, row int, r rune, c core.Color) {
	x := l.well.X + 1 + col*cellW
	y := l.well.Y + 1 + (l.visible - 1 - row)
	if !l.well.Inset(1).Contains(x, y) {
		return
	}
	for i := 0; i < cellW; i++ {
		dst.SetCell(x+i, y, r, c)
	}
}

// renderPanel draws the NEXT preview and the score block.
func (g *Game) renderPanel(dst *core.Screen, l layout, snap engine.Snapshot) {
	y := l.well.Y

	if g.cfg.Display.NextPreview {
		box := core.NewRect(l.panelX, y, panelW, previewH)
		dst.DrawBoxColor(box, core.ColorGray)
		dst.DrawText(box.X+2, box.Y, " NEXT ")
		g.renderPreview(dst, box, snap)
		y = box.Bottom() + 1
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"SPEED", g.speedLabel(snap)},
	}
	for _, s := range stats {
		dst.DrawTextColor(l.panelX+1, y, s.label, core.ColorGray)
		dst.DrawTextColor(l.panelX+1, y+1, s.value, core.ColorBrightWhite)
		y += 3
	}
}

// speedLabel shows the fall interval, marked when levels do not speed up.
func (g *Game) speedLabel(snap engine.Snapshot) string {
	label := fmt.Sprintf("%d ms", snap.Interval.Milliseconds())
	if config.IsFixedPreset(g.difficulty) {
		label += " fixed"
	}
	return label
}

// renderPreview draws the next kind in its spawn orientation. The pivot
// sits on the second inner row, one lower for the four-tall I; O is
// shifted half a piece left to look centered.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect, snap engine.Snapshot) {
	if snap.Next == engine.Empty {
		return
	}
	inner := box.Inset(1)
	cx := inner.X + (inner.W-cellW)/2
	cy := inner.Y + 1
	if snap.Next == engine.KindI {
		cy++
	}
	if snap.Next == engine.KindO {
		cx -= cellW / 2
	}

	color := snap.Next.Color()
	for _, o := range snap.NextCells {
		x := cx + o.X*cellW
		y := cy - o.Y
		for i := 0; i < cellW; i++ {
			dst.SetCell(x+i, y, BlockChar, color)
		}
	}
}

// renderOverlay draws a boxed message centered on the well.
func (g *Game) renderOverlay(dst *core.Screen, l layout, lines ...string) {
	width := 0
	for _, s := range lines {
		width = max(width, len([]rune(s)))
	}
	boxW := min(width+4, l.well.W)
	boxH := len(lines) + 2
	box := core.NewRect(
		l.well.X+(l.well.W-boxW)/2,
		l.well.Y+(l.well.H-boxH)/2,
		boxW, boxH,
	)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	for i, s := range lines {
		x := box.X + (box.W-len([]rune(s)))/2
		dst.DrawTextColor(x, box.Y+1+i, s, core.ColorBrightWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, l layout) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d",
		l.reqW, l.reqH, g.runtime.ScreenW, g.runtime.ScreenH))
	dst.DrawTextCentered(mid+1, "Resize to continue")
}
