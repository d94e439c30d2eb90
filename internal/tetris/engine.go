package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// RunState is the engine lifecycle state.
type RunState int

const (
	StateNotStarted RunState = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Scheduler is the external periodic tick source. The engine asks it to
// start (or restart at a new interval) and to stop; whoever implements it
// calls Engine.Tick at the requested interval.
type Scheduler interface {
	Start(interval time.Duration)
	Stop()
}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration) {}
func (nopScheduler) Stop()               {}

// Options configures a new Engine.
type Options struct {
	Width     int
	Height    int
	Speed     Speed
	Scoring   Scoring
	Rand      Rand      // defaults to a time-seeded source
	Scheduler Scheduler // defaults to a no-op scheduler
}

// DefaultOptions returns the classic 10x22 setup.
func DefaultOptions() Options {
	return Options{
		Width:   10,
		Height:  22,
		Speed:   DefaultSpeed,
		Scoring: DefaultScoring,
	}
}

// Minimum playable grid size: the widest template spans three columns
// around the center pivot and the I piece stands four rows tall.
const (
	MinWidth  = 4
	MinHeight = 4
)

// Engine owns the grid and all game state. It is not safe for concurrent
// use: ticks and controls must be delivered one at a time.
type Engine struct {
	grid    *Grid
	speed   Speed
	scoring Scoring
	rng     Rand
	sched   Scheduler

	state   RunState
	current Piece
	curX    int
	curY    int
	next    Kind

	// spawnPending is set when a lock cleared rows; the next piece
	// appears on the following tick.
	spawnPending bool

	score    int
	level    int
	lines    int
	interval time.Duration

	changed bool
	events  []Event
}

// New validates the options and returns an engine in StateNotStarted.
func New(opts Options) (*Engine, error) {
	if opts.Width < MinWidth || opts.Height < MinHeight {
		return nil, fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, opts.Width, opts.Height, MinWidth, MinHeight)
	}
	if opts.Speed.Base <= 0 || opts.Speed.Min <= 0 {
		return nil, fmt.Errorf("%w: fall intervals must be positive", ErrInvalidConfig)
	}
	if opts.Speed.Min > opts.Speed.Base {
		return nil, fmt.Errorf("%w: minimum interval %v exceeds base %v",
			ErrInvalidConfig, opts.Speed.Min, opts.Speed.Base)
	}
	if opts.Speed.Step < 0 {
		return nil, fmt.Errorf("%w: interval step must not be negative", ErrInvalidConfig)
	}
	if opts.Scoring.LinesPerLevel <= 0 {
		return nil, fmt.Errorf("%w: lines per level must be positive", ErrInvalidConfig)
	}
	for i, p := range opts.Scoring.LinePoints {
		if p < 0 {
			return nil, fmt.Errorf("%w: negative award for %d lines", ErrInvalidConfig, i+1)
		}
	}

	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = nopScheduler{}
	}

	return &Engine{
		grid:     grid,
		speed:    opts.Speed,
		scoring:  opts.Scoring,
		rng:      rng,
		sched:    sched,
		level:    1,
		interval: opts.Speed.Base,
	}, nil
}

// Start resets the board and score and begins a new game. It does nothing
// while paused; call Resume instead.
func (e *Engine) Start() {
	if e.state == StatePaused {
		return
	}

	e.grid.Reset()
	e.score = 0
	e.lines = 0
	e.level = 1
	e.interval = e.speed.IntervalFor(1)
	e.spawnPending = false
	e.events = e.events[:0]

	e.state = StateRunning
	e.sched.Start(e.interval)
	e.emit(Event{Type: EventStarted, Level: e.level})

	e.next = RandomKind(e.rng)
	e.spawn()
}

// Tick advances the game by one fall step.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	if e.spawnPending {
		e.spawnPending = false
		e.spawn()
		return
	}
	if !e.tryMove(e.current, e.curX, e.curY-1) {
		e.lock()
	}
}

// MoveLeft shifts the piece one column left if the target is free.
func (e *Engine) MoveLeft() bool {
	if !e.controllable() {
		return false
	}
	return e.tryMove(e.current, e.curX-1, e.curY)
}

// MoveRight shifts the piece one column right if the target is free.
func (e *Engine) MoveRight() bool {
	if !e.controllable() {
		return false
	}
	return e.tryMove(e.current, e.curX+1, e.curY)
}

// SoftDrop moves the piece down one row. When the piece cannot move it
// locks immediately. Reports whether the piece moved.
func (e *Engine) SoftDrop() bool {
	if !e.controllable() {
		return false
	}
	if e.tryMove(e.current, e.curX, e.curY-1) {
		return true
	}
	e.lock()
	return false
}

// HardDrop moves the piece to its lowest legal row and locks it.
// Returns the number of rows the piece fell.
func (e *Engine) HardDrop() int {
	if !e.controllable() {
		return 0
	}
	y := e.dropRow()
	fell := e.curY - y
	e.curY = y
	e.changed = true
	e.lock()
	return fell
}

// Rotate turns the piece clockwise in place. A blocked rotation is rejected.
func (e *Engine) Rotate() bool {
	if !e.controllable() {
		return false
	}
	return e.tryMove(e.current.RotateClockwise(), e.curX, e.curY)
}

// Pause stops the tick source. Only meaningful while running.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.sched.Stop()
	e.changed = true
	e.emit(Event{Type: EventPaused})
}

// Resume restarts the tick source at the current interval.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.state = StateRunning
	e.sched.Start(e.interval)
	e.changed = true
	e.emit(Event{Type: EventResumed})
}

// TogglePause switches between running and paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.Pause()
	case StatePaused:
		e.Resume()
	}
}

// GhostY returns the lowest pivot row the current piece can reach in its
// current column. It does not change any state.
func (e *Engine) GhostY() int {
	if e.current.Kind() == Empty {
		return e.curY
	}
	return e.dropRow()
}

// dropRow scans downward with CanPlace only.
func (e *Engine) dropRow() int {
	y := e.curY
	for e.grid.CanPlace(e.current, e.curX, y-1) {
		y--
	}
	return y
}

func (e *Engine) controllable() bool {
	return e.state == StateRunning && e.current.Kind() != Empty
}

// tryMove is the only path that replaces the current piece or position.
func (e *Engine) tryMove(p Piece, x, y int) bool {
	if !e.grid.CanPlace(p, x, y) {
		return false
	}
	e.current = p
	e.curX = x
	e.curY = y
	e.changed = true
	return true
}

func (e *Engine) lock() {
	locked := e.current.Kind()
	e.grid.Commit(e.current, e.curX, e.curY)
	e.changed = true
	e.emit(Event{Type: EventLocked, Kind: locked})

	rows := e.grid.ClearFullRows()
	if rows == 0 {
		e.spawn()
		return
	}

	e.score += e.scoring.Award(rows, e.level)
	e.lines += rows
	e.emit(Event{Type: EventLinesCleared, Lines: rows, Score: e.score})

	if level := e.scoring.LevelFor(e.lines); level > e.level {
		e.level = level
		if interval := e.speed.IntervalFor(level); interval != e.interval {
			e.interval = interval
			e.sched.Start(interval)
		}
		e.emit(Event{Type: EventLevelUp, Level: level})
	}

	// The cleared board is shown for one tick before the next piece.
	e.current = Piece{}
	e.spawnPending = true
}

// spawn promotes the next kind to the current piece at the top center and
// draws a new next kind. A blocked spawn ends the game.
func (e *Engine) spawn() {
	e.current = NewPiece(e.next)
	e.next = RandomKind(e.rng)
	e.curX = e.grid.Width() / 2
	e.curY = e.grid.Height() - 1 + e.current.MinY()
	e.changed = true

	if !e.grid.CanPlace(e.current, e.curX, e.curY) {
		e.current = Piece{}
		e.state = StateGameOver
		e.sched.Stop()
		e.emit(Event{Type: EventGameOver, Score: e.score, Level: e.level})
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// State returns the run state.
func (e *Engine) State() RunState { return e.state }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Interval returns the current fall interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Current returns the falling piece and its pivot. The piece kind is Empty
// when nothing is falling.
func (e *Engine) Current() (Piece, int, int) {
	return e.current, e.curX, e.curY
}

// Next returns the kind that will spawn after the current piece.
func (e *Engine) Next() Kind { return e.next }

// Width returns the grid width.
func (e *Engine) Width() int { return e.grid.Width() }

// Height returns the grid height.
func (e *Engine) Height() int { return e.grid.Height() }

// Cell returns the settled kind at (col, row).
func (e *Engine) Cell(col, row int) Kind { return e.grid.At(col, row) }

// TakeChanged reports whether visible state changed since the last call
// and clears the flag.
func (e *Engine) TakeChanged() bool {
	c := e.changed
	e.changed = false
	return c
}

// Events returns and clears the events recorded since the last call.
func (e *Engine) Events() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := make([]Event, len(e.events))
	copy(out, e.events)
	e.events = e.events[:0]
	return out
}
