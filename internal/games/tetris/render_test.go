package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func render(g *Game) *core.Screen {
	s := core.NewScreen(g.runtime.ScreenW, g.runtime.ScreenH)
	g.Render(s)
	return s
}

func TestRenderWellAndPanel(t *testing.T) {
	g := newTestGame(t)
	screen := render(g)
	out := screen.String()

	for _, want := range []string{"┌", "┘", " NEXT ", "SCORE", "LEVEL", "LINES", "SPEED", "300 ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, GhostChar) {
		t.Error("ghost should be visible at the start of a game")
	}
}

func TestRenderHidesSpawnRows(t *testing.T) {
	g := newTestGame(t)
	l := g.layout()

	if l.visible != 20 || l.well.H != 22 {
		t.Fatalf("visible rows = %d, well height = %d", l.visible, l.well.H)
	}

	screen := render(g)
	snap := g.engine.Snapshot()
	for _, c := range snap.CurrentCells {
		x := l.well.X + 1 + c.X*cellW
		if c.Y >= l.visible {
			continue
		}
		y := l.well.Y + 1 + (l.visible - 1 - c.Y)
		cell := screen.GetCell(x, y)
		if cell.Rune != BlockChar || cell.Color != snap.Current.Color() {
			t.Errorf("piece cell %v drawn as %q color %d", c, cell.Rune, cell.Color)
		}
	}

	// The top border row stays a border even though the piece overlaps hidden rows.
	for x := l.well.X + 1; x < l.well.Right()-1; x++ {
		if r := screen.Get(x, l.well.Y); r != '─' {
			t.Fatalf("top border at x=%d is %q", x, r)
		}
	}
}

func TestRenderSettledBottomRow(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionDrop))
	l := g.layout()

	screen := render(g)
	bottom := l.well.Bottom() - 2
	row := screen.Row(bottom)
	if !strings.ContainsRune(row, BlockChar) {
		t.Errorf("bottom row should show settled blocks: %q", row)
	}
}

func TestRenderGhostDisabled(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Display.Ghost = false

	if strings.ContainsRune(render(g).String(), GhostChar) {
		t.Error("ghost drawn although disabled")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if out := render(g).String(); !strings.Contains(out, "PAUSED") {
		t.Errorf("paused overlay missing:\n%s", out)
	}

	g.Step(frame(core.ActionPause))
	stackToGameOver(t, g)
	out := render(g).String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "R restart") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderPreviewFitsBox(t *testing.T) {
	g := newTestGame(t)
	l := g.layout()
	box := core.NewRect(l.panelX, l.well.Y, panelW, previewH)
	inner := box.Inset(1)

	for seed := int64(1); seed <= 30; seed++ {
		rt := testRuntime()
		rt.Seed = seed
		g.Reset(rt)
		screen := render(g)

		count := 0
		for y := box.Y; y < box.Bottom(); y++ {
			for x := box.X; x < box.Right(); x++ {
				if screen.Get(x, y) != BlockChar {
					continue
				}
				count++
				if !inner.Contains(x, y) {
					t.Fatalf("seed %d: preview block at (%d, %d) outside the box", seed, x, y)
				}
			}
		}
		if count != 4*cellW {
			t.Errorf("seed %d: preview has %d block chars, expected %d", seed, count, 4*cellW)
		}
	}
}

func TestRenderSpeedMarksFixedPreset(t *testing.T) {
	g := New(Classic)
	g.SetDifficulty("fixed")
	g.Reset(testRuntime())

	if out := render(g).String(); !strings.Contains(out, "300 ms fixed") {
		t.Errorf("fixed preset should be shown next to the speed:\n%s", out)
	}

	g.SetDifficulty("normal")
	g.Reset(testRuntime())
	if out := render(g).String(); strings.Contains(out, "fixed") {
		t.Error("normal preset should not be marked fixed")
	}
}
