package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 12345}
}

func newTestModel(t *testing.T, opts ...Option) (Model, *tetris.Game) {
	t.Helper()
	g := tetris.New(tetris.Classic)
	m := NewModel(g, testConfig(), opts...)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule the first tick")
	}
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelReservesHelpLine(t *testing.T) {
	m, _ := newTestModel(t)
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24", m.screen.Height())
	}
	if m.screen.Width() != 80 {
		t.Errorf("screen width = %d, want 80", m.screen.Width())
	}
}

func TestModelAppliesQueuedActionsOnTick(t *testing.T) {
	m, g := newTestModel(t)
	x0 := g.Snapshot().Engine.CurrentX

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := g.Snapshot().Engine.CurrentX; got != x0 {
		t.Fatalf("piece moved before the tick: x = %d, want %d", got, x0)
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := g.Snapshot().Engine.CurrentX; got != x0-2 {
		t.Errorf("x = %d, want %d", got, x0-2)
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Errorf("input frame not cleared: %v", m.inputFrame.Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	m, _ := newTestModel(t, WithBackToMenu())

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back accepted while running")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should be accepted while paused")
	}

	_, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("tick loop should stop after leaving to the menu")
	}
}

func TestModelBackDisabledByDefault(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be disabled without WithBackToMenu")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	x := g.Snapshot().Engine.CurrentX

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if got := g.Snapshot().Engine.CurrentX; got != x {
		t.Errorf("resize restarted the game: x = %d, want %d", got, x)
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "rotate") {
		t.Error("view should include the help line")
	}
	if !strings.Contains(view, "NEXT") {
		t.Error("view should include the game panel")
	}
}
