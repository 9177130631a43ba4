package life

import (
	"errors"
	"fmt"
	"time"

	"locklife/internal/core"
	"locklife/internal/render"
)

// Config holds everything a session needs at construction. It is built once
// at startup and not changed afterwards.
type Config struct {
	Height   int
	Width    int
	CellSize int

	Delay       time.Duration
	StartPaused bool
	// Density is the alive probability used by Scatter.
	Density float64

	Rule    core.Rule
	Palette render.Palette
}

// DefaultConfig returns the standard configuration: an 80x80 torus of
// 10px cells ticking every 250ms under B3/S23, starting paused.
func DefaultConfig() Config {
	return Config{
		Height:      80,
		Width:       80,
		CellSize:    10,
		Delay:       core.DefaultDelay,
		StartPaused: true,
		Density:     0.3,
		Rule:        core.Conway(),
		Palette:     render.DefaultPalette(),
	}
}

// Size returns the grid dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height %d must be positive", c.Height))
	}
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width %d must be positive", c.Width))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	}
	if c.Delay <= 0 {
		errs = append(errs, fmt.Errorf("delay %v must be positive", c.Delay))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0,1]", c.Density))
	}
	if err := c.Rule.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("rule: %w", err))
	}
	return errors.Join(errs...)
}
