// Package life runs a Game of Life session with lockable cells.
//
// A session is driven by a single loop calling Update once per input sample.
// Pointer edits apply immediately; a generation is computed only between
// samples, once the tick delay has elapsed and the session is not paused.
package life

import (
	"time"

	"locklife/internal/core"
	"locklife/internal/input"
)

// Frame carries the input gathered by a frontend for one loop iteration.
type Frame struct {
	Pointer input.Sample

	TogglePause bool
	// StepOnce advances a single generation while paused.
	StepOnce bool
	Clear    bool
	Scatter  bool
	// Seed feeds Scatter.
	Seed int64
}

// Life is one running session.
type Life struct {
	cfg    Config
	grid   *core.Grid
	engine *core.Engine
	timer  *core.FixedDelay
	ctrl   *input.Controller

	paused      bool
	generation  int
	lastChanged int
}

// New builds a session with an all-dead, all-unlocked grid. now is the
// baseline for the first tick when cfg.StartPaused is false.
func New(cfg Config, now time.Time) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := core.NewEngine(cfg.Rule)
	if err != nil {
		return nil, err
	}
	grid := core.NewGrid(cfg.Height, cfg.Width)
	return &Life{
		cfg:    cfg,
		grid:   grid,
		engine: engine,
		timer:  core.NewFixedDelay(cfg.Delay, now),
		ctrl:   input.NewController(grid, cfg.CellSize),
		paused: cfg.StartPaused,
	}, nil
}

// Name returns the session identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Config returns the configuration the session was built with.
func (l *Life) Config() Config { return l.cfg }

// Grid exposes the live grid.
func (l *Life) Grid() *core.Grid { return l.grid }

// Controller exposes the pointer controller, mainly for pixel mapping.
func (l *Life) Controller() *input.Controller { return l.ctrl }

// Rule returns the active rule.
func (l *Life) Rule() core.Rule { return l.engine.Rule() }

// Delay returns the active tick delay.
func (l *Life) Delay() time.Duration { return l.timer.Delay() }

// Paused reports whether automatic ticking is suspended.
func (l *Life) Paused() bool { return l.paused }

// Generation returns the number of ticks since start or the last Clear.
func (l *Life) Generation() int { return l.generation }

// LastChanged returns how many cells flipped in the most recent tick.
func (l *Life) LastChanged() int { return l.lastChanged }

// Title is the window caption for the current state.
func (l *Life) Title() string {
	if l.paused {
		return "Game of Life   (paused)"
	}
	return "Game of Life"
}

// SetPaused suspends or resumes ticking. Resuming restarts the delay from
// now, so time spent paused never counts towards the next tick.
func (l *Life) SetPaused(paused bool, now time.Time) {
	if l.paused == paused {
		return
	}
	l.paused = paused
	if !paused {
		l.timer.Restart(now)
	}
}

// TogglePause flips the paused state.
func (l *Life) TogglePause(now time.Time) { l.SetPaused(!l.paused, now) }

// Tick advances exactly one generation and returns the number of cells
// that changed.
func (l *Life) Tick() int {
	l.lastChanged = l.engine.Advance(l.grid)
	l.generation++
	return l.lastChanged
}

// Clear kills and unlocks every cell and resets the generation counter.
func (l *Life) Clear() {
	l.grid.Clear()
	l.ctrl.Reset()
	l.generation = 0
	l.lastChanged = 0
}

// Scatter randomises the unlocked cells using the configured density.
func (l *Life) Scatter(seed int64) {
	l.grid.Scatter(core.NewRNG(seed), l.cfg.Density)
}

// Update runs one loop iteration: discrete events first, then the pointer
// sample, then at most one tick. It reports whether a tick ran.
func (l *Life) Update(f Frame, now time.Time) bool {
	if f.TogglePause {
		l.TogglePause(now)
	}
	if f.Clear {
		l.Clear()
	}
	if f.Scatter {
		l.Scatter(f.Seed)
	}
	l.ctrl.Handle(f.Pointer)

	if l.paused {
		if f.StepOnce {
			l.Tick()
			return true
		}
		return false
	}
	if !l.timer.ShouldStep(now) {
		return false
	}
	l.Tick()
	return true
}
