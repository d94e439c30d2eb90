// Package tetris adapts the falling-block engine to the platform's Game
// interface: it loads the configuration, converts frames into engine
// ticks, maps actions onto engine controls, and renders the well.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// SoundPlayer plays effects for engine events. *audio.SoundManager
// satisfies it.
type SoundPlayer interface {
	Play(e audio.Effect)
}

// Variant describes a registered flavor of the game.
type Variant struct {
	ID    string
	Title string
	Width int // overrides the configured board width when non-zero
}

var (
	// Classic uses the configured board as is.
	Classic = Variant{ID: "tetris", Title: "Tetris"}
	// Wide plays on a 16 column well.
	Wide = Variant{ID: "tetris_wide", Title: "Tetris (Wide)", Width: 16}
)

// Package-level settings applied on Reset, set once from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
	sounds           SoundPlayer
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty preset. Unknown names
// keep the configured speed.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger used for game lifecycle events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSoundPlayer sets the sink for sound effects. nil disables sound.
func SetSoundPlayer(p SoundPlayer) {
	sounds = p
}

func init() {
	for _, v := range []Variant{Classic, Wide} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements registry.Game on top of the engine.
type Game struct {
	variant    Variant
	difficulty config.DifficultyPreset

	cfg     config.TetrisConfig
	engine  *engine.Engine
	sched   *frameScheduler
	rng     *rand.Rand
	runtime core.RuntimeConfig
	frame   time.Duration
	frames  uint64

	logger *log.Logger
	sounds SoundPlayer
}

// New creates a game of the given variant. Reset must be called before Step.
func New(v Variant) *Game {
	return &Game{
		variant:    v,
		difficulty: difficultyPreset,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetDifficulty selects the preset used by the next Reset.
func (g *Game) SetDifficulty(preset string) {
	if p, err := config.ParsePreset(preset); err == nil {
		g.difficulty = p
	}
}

// Reset loads the configuration, builds a fresh engine and starts a game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frame = runtime.FrameDuration()
	g.frames = 0
	g.logger = logger.WithPrefix(g.variant.ID)
	g.sounds = sounds

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		g.logger.Warn("using default configuration", "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	if g.difficulty != "" {
		config.ApplyTetrisPreset(&cfg, g.difficulty)
	}
	if g.variant.Width > 0 {
		cfg.Board.Width = g.variant.Width
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sched = &frameScheduler{}

	opts := cfg.EngineOptions()
	opts.Rand = g.rng
	opts.Scheduler = g.sched

	e, err := engine.New(opts)
	if err != nil {
		// The loaded file is valid; the variant width or preset broke it.
		g.logger.Error("invalid engine options, falling back to defaults", "err", err)
		opts = engine.DefaultOptions()
		opts.Rand = g.rng
		opts.Scheduler = g.sched
		e, _ = engine.New(opts)
		g.cfg = config.DefaultTetrisConfig()
	}
	g.engine = e
	g.engine.Start()
	g.drainEvents()

	g.logger.Info("game started",
		"board", cfg.Board.Width, "height", cfg.Board.Height,
		"difficulty", string(g.difficulty), "seed", runtime.Seed)
}

// Step applies the frame's actions and advances the fall timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++

	if in.Has(core.ActionRestart) && g.engine.State() == engine.StateGameOver {
		cfg := g.runtime
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State(), Changed: true}
	}

	// Freeze while the well does not fit; the player cannot see it.
	if !g.layout().fits {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}
	g.sched.Run(g.frame, g.engine.Tick)

	g.drainEvents()
	return core.StepResult{State: g.State(), Changed: g.engine.TakeChanged()}
}

// apply maps one action to an engine control.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionRotate, core.ActionUp:
		g.engine.Rotate()
	case core.ActionDown:
		g.engine.SoftDrop()
	case core.ActionDrop:
		g.engine.HardDrop()
	}
}

// drainEvents forwards engine events to the logger and the sound sink.
func (g *Game) drainEvents() {
	for _, ev := range g.engine.Events() {
		switch ev.Type {
		case engine.EventLocked:
			g.logger.Debug("piece locked", "kind", ev.Kind.String())
		case engine.EventLinesCleared:
			g.logger.Debug("lines cleared", "lines", ev.Lines, "score", ev.Score)
		case engine.EventLevelUp:
			g.logger.Info("level up", "level", ev.Level, "interval", g.engine.Interval())
		case engine.EventGameOver:
			g.logger.Info("game over", "score", ev.Score, "level", ev.Level, "lines", g.engine.Lines())
		case engine.EventPaused, engine.EventResumed:
			g.logger.Debug(ev.Type.String())
		}

		if effect, ok := effectFor(ev); ok && g.sounds != nil {
			g.sounds.Play(effect)
		}
	}
}

// effectFor picks the sound for an event.
func effectFor(ev engine.Event) (audio.Effect, bool) {
	switch ev.Type {
	case engine.EventLocked:
		return audio.EffectLock, true
	case engine.EventLinesCleared:
		if ev.Lines >= 4 {
			return audio.EffectTetris, true
		}
		return audio.EffectClear, true
	case engine.EventLevelUp:
		return audio.EffectLevelUp, true
	case engine.EventGameOver:
		return audio.EffectGameOver, true
	}
	return 0, false
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.State() == engine.StateGameOver,
		Paused:   g.engine.State() == engine.StatePaused,
	}
}

// Config returns the configuration the current game was built from.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
