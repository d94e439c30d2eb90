package tetris

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(Classic)
	g.Reset(testRuntime())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func pivot(g *Game) (int, int) {
	_, x, y := g.engine.Current()
	return x, y
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range []Variant{Classic, Wide} {
		if !registry.Exists(v.ID) {
			t.Fatalf("variant %q not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, expected %q", g.Title(), v.Title)
		}
		if _, ok := g.(registry.Tunable); !ok {
			t.Errorf("%q should accept a difficulty", v.ID)
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("%q should survive resizes", v.ID)
		}
	}
}

func TestResetStartsGame(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.GameOver || st.Paused || st.Score != 0 || st.Level != 1 {
		t.Errorf("State() = %+v, expected a fresh running game", st)
	}
	if g.engine.State() != engine.StateRunning {
		t.Errorf("engine state = %v", g.engine.State())
	}
	if g.engine.Width() != 10 || g.engine.Height() != 22 {
		t.Errorf("board = %dx%d, expected 10x22", g.engine.Width(), g.engine.Height())
	}
}

func TestWideVariant(t *testing.T) {
	g := New(Wide)
	g.Reset(testRuntime())

	if g.engine.Width() != 16 {
		t.Errorf("wide board width = %d, expected 16", g.engine.Width())
	}
	if _, x, _ := g.engine.Current(); x != 8 {
		t.Errorf("spawn column = %d, expected 8", x)
	}
}

func TestFallFollowsFrameTime(t *testing.T) {
	g := newTestGame(t)
	_, y := pivot(g)

	// 300ms at 60 fps: the first fall lands on frame 19.
	for i := 0; i < 17; i++ {
		g.Step(frame())
	}
	if _, got := pivot(g); got != y {
		t.Fatalf("piece fell early: row %d, expected %d", got, y)
	}

	for i := 0; i < 3; i++ {
		g.Step(frame())
	}
	if _, got := pivot(g); got != y-1 {
		t.Errorf("after 20 frames row = %d, expected %d", got, y-1)
	}
}

func TestActionsMoveThePiece(t *testing.T) {
	g := newTestGame(t)
	x, _ := pivot(g)

	res := g.Step(frame(core.ActionLeft))
	if got, _ := pivot(g); got != x-1 {
		t.Errorf("after left column = %d, expected %d", got, x-1)
	}
	if !res.Changed {
		t.Error("a move should report a change")
	}

	g.Step(frame(core.ActionRight, core.ActionRight))
	if got, _ := pivot(g); got != x+1 {
		t.Errorf("after two rights column = %d, expected %d", got, x+1)
	}

	_, y := pivot(g)
	g.Step(frame(core.ActionDown))
	if _, got := pivot(g); got != y-1 {
		t.Errorf("after soft drop row = %d, expected %d", got, y-1)
	}
}

func TestHardDropAction(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionDrop))

	snap := g.engine.Snapshot()
	filled := 0
	for _, k := range snap.Cells[0] {
		if k != engine.Empty {
			filled++
		}
	}
	if filled == 0 {
		t.Error("hard drop should settle cells on the bottom row")
	}
}

func TestPauseFreezesFall(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	x, y := pivot(g)
	for i := 0; i < 60; i++ {
		g.Step(frame(core.ActionLeft))
	}
	if gx, gy := pivot(g); gx != x || gy != y {
		t.Error("paused game should ignore time and controls")
	}

	if res := g.Step(frame(core.ActionPause)); res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestPauseKeepsArrivalOrder(t *testing.T) {
	g := newTestGame(t)
	x, _ := pivot(g)

	if res := g.Step(frame(core.ActionPause, core.ActionPause)); res.State.Paused {
		t.Error("two pause presses in one frame should cancel out")
	}

	res := g.Step(frame(core.ActionLeft, core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause after a move should pause")
	}
	if gx, _ := pivot(g); gx != x-1 {
		t.Errorf("x = %d, expected the move typed before pause to apply (%d)", gx, x-1)
	}

	g.Step(frame(core.ActionPause))
	res = g.Step(frame(core.ActionPause, core.ActionLeft))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	if gx, _ := pivot(g); gx != x-1 {
		t.Errorf("x = %d, expected a move typed after pause to be ignored", gx)
	}
}

func stackToGameOver(t *testing.T, g *Game) {
	t.Helper()
	// Pieces always spawn in the center, so they can never complete a row.
	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionDrop))
	}
	if !g.State().GameOver {
		t.Fatal("stacking hard drops never ended the game")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	stackToGameOver(t, g)

	if res := g.Step(frame(core.ActionLeft, core.ActionDrop)); !res.State.GameOver {
		t.Fatal("controls should not leave game over")
	}

	res := g.Step(frame(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("State() after restart = %+v", res.State)
	}
	if g.engine.State() != engine.StateRunning {
		t.Errorf("engine state = %v, expected running", g.engine.State())
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionDrop))
	before := g.engine.Snapshot().Cells

	g.Step(frame(core.ActionRestart))

	if !reflect.DeepEqual(before, g.engine.Snapshot().Cells) {
		t.Error("restart during play should be ignored")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		switch {
		case i%45 == 0:
			inputs[i] = frame(core.ActionDrop)
		case i%11 == 0:
			inputs[i] = frame(core.ActionRotate)
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%5 == 0:
			inputs[i] = frame(core.ActionRight)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hashes differ: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Error("snapshots differ")
	}
}

func TestTooSmallFreezesGame(t *testing.T) {
	g := newTestGame(t)
	g.Resize(30, 10)
	_, y := pivot(g)

	for i := 0; i < 60; i++ {
		g.Step(frame(core.ActionDown))
	}
	if _, got := pivot(g); got != y {
		t.Error("game should not advance while the window is too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	for i := 0; i < 20; i++ {
		g.Step(frame())
	}
	if _, got := pivot(g); got != y-1 {
		t.Error("game should resume after the window grows")
	}
}

type recordingPlayer struct {
	played []audio.Effect
}

func (p *recordingPlayer) Play(e audio.Effect) {
	p.played = append(p.played, e)
}

func TestEventsReachSoundPlayer(t *testing.T) {
	rec := &recordingPlayer{}
	SetSoundPlayer(rec)
	t.Cleanup(func() { SetSoundPlayer(nil) })

	g := newTestGame(t)
	g.Step(frame(core.ActionDrop))

	if len(rec.played) == 0 || rec.played[0] != audio.EffectLock {
		t.Errorf("played = %v, expected a lock sound", rec.played)
	}

	stackToGameOver(t, g)
	if last := rec.played[len(rec.played)-1]; last != audio.EffectGameOver {
		t.Errorf("last effect = %v, expected game over", last)
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		ev       engine.Event
		expected audio.Effect
		ok       bool
	}{
		{engine.Event{Type: engine.EventLocked}, audio.EffectLock, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 1}, audio.EffectClear, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 3}, audio.EffectClear, true},
		{engine.Event{Type: engine.EventLinesCleared, Lines: 4}, audio.EffectTetris, true},
		{engine.Event{Type: engine.EventLevelUp}, audio.EffectLevelUp, true},
		{engine.Event{Type: engine.EventGameOver}, audio.EffectGameOver, true},
		{engine.Event{Type: engine.EventPaused}, 0, false},
	}

	for _, tc := range tests {
		got, ok := effectFor(tc.ev)
		if ok != tc.ok || (ok && got != tc.expected) {
			t.Errorf("effectFor(%v) = %v, %v; expected %v, %v", tc.ev.Type, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestSetDifficulty(t *testing.T) {
	g := New(Classic)
	g.SetDifficulty("hard")
	g.Reset(testRuntime())

	if g.Config().Speed.BaseIntervalMS != 200 {
		t.Errorf("base interval = %d, expected the hard preset", g.Config().Speed.BaseIntervalMS)
	}

	g.SetDifficulty("bogus")
	g.Reset(testRuntime())
	if g.Config().Speed.BaseIntervalMS != 200 {
		t.Error("an unknown preset should keep the previous choice")
	}
}
