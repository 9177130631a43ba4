package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"locklife/internal/render"
	"locklife/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life life.Config

	TPS      int
	HUDWidth int
	// Wait holds the banner on screen until Enter is pressed.
	Wait bool
	// Soup scatters the grid with Seed before the first frame.
	Soup bool
	Seed int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Life: life.DefaultConfig(), TPS: 60, HUDWidth: 180, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	l := &c.Life
	fs.IntVar(&l.Height, "h", l.Height, "grid height in cells")
	fs.IntVar(&l.Width, "w", l.Width, "grid width in cells")
	fs.IntVar(&l.CellSize, "cell", l.CellSize, "cell edge in pixels")
	fs.DurationVar(&l.Delay, "delay", l.Delay, "interval between generations")
	fs.BoolVar(&l.StartPaused, "paused", l.StartPaused, "start with the simulation paused")
	fs.Float64Var(&l.Density, "density", l.Density, "alive probability when scattering")

	fs.IntVar(&l.Rule.SurviveMin, "survive-min", l.Rule.SurviveMin, "fewest live neighbours for survival")
	fs.IntVar(&l.Rule.SurviveMax, "survive-max", l.Rule.SurviveMax, "most live neighbours for survival")
	fs.IntVar(&l.Rule.BirthMin, "birth-min", l.Rule.BirthMin, "fewest live neighbours for birth")
	fs.IntVar(&l.Rule.BirthMax, "birth-max", l.Rule.BirthMax, "most live neighbours for birth")

	colorVar(fs, &l.Palette.DeadUnlocked, "color-dead", "colour of dead cells")
	colorVar(fs, &l.Palette.DeadLocked, "color-dead-locked", "colour of locked dead cells")
	colorVar(fs, &l.Palette.AliveUnlocked, "color-alive", "colour of live cells")
	colorVar(fs, &l.Palette.AliveLocked, "color-alive-locked", "colour of locked live cells")
	colorVar(fs, &l.Palette.Grid, "color-grid", "colour of the grid lines")

	fs.IntVar(&c.TPS, "tps", c.TPS, "input samples per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 to hide")
	fs.BoolVar(&c.Wait, "wait", c.Wait, "wait for Enter after printing the controls")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "start from a random soup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the starting soup")
}

func colorVar(fs *flag.FlagSet, dst *color.RGBA, name, usage string) {
	fs.Func(name, fmt.Sprintf("%s (default %s)", usage, render.FormatHex(*dst)), func(s string) error {
		c, err := render.ParseHex(s)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	})
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Life.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud width %d must not be negative", c.HUDWidth))
	}
	return errors.Join(errs...)
}
