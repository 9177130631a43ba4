package app

import (
	"flag"
	"image/color"
	"io"
	"testing"
	"time"

	"locklife/internal/core"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("locklife", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, fs.Parse(args)
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Life.Height != 80 || cfg.Life.Width != 80 || cfg.Life.CellSize != 10 {
		t.Fatalf("grid defaults = %+v", cfg.Life)
	}
	if cfg.Life.Delay != 250*time.Millisecond || !cfg.Life.StartPaused {
		t.Fatalf("timing defaults = %v paused=%v", cfg.Life.Delay, cfg.Life.StartPaused)
	}
	if cfg.Life.Rule != core.Conway() {
		t.Fatalf("rule default = %+v", cfg.Life.Rule)
	}
}

func TestBindOverrides(t *testing.T) {
	cfg, err := parse(t,
		"-h", "20", "-w", "30", "-cell", "4",
		"-delay", "75ms", "-paused=false",
		"-birth-max", "4",
		"-color-alive", "#ffcc00",
		"-hud", "0",
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Life.Height != 20 || cfg.Life.Width != 30 || cfg.Life.CellSize != 4 {
		t.Fatalf("grid = %+v", cfg.Life)
	}
	if cfg.Life.Delay != 75*time.Millisecond || cfg.Life.StartPaused {
		t.Fatalf("timing = %v paused=%v", cfg.Life.Delay, cfg.Life.StartPaused)
	}
	if cfg.Life.Rule.BirthMax != 4 {
		t.Fatalf("birth max = %d", cfg.Life.Rule.BirthMax)
	}
	if want := (color.RGBA{R: 255, G: 204, B: 0, A: 255}); cfg.Life.Palette.AliveUnlocked != want {
		t.Fatalf("alive colour = %v", cfg.Life.Palette.AliveUnlocked)
	}
	if cfg.HUDWidth != 0 {
		t.Fatalf("hud = %d", cfg.HUDWidth)
	}
}

func TestBadColourRejected(t *testing.T) {
	if _, err := parse(t, "-color-grid", "green"); err == nil {
		t.Fatal("accepted a named colour")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := parse(t, "-tps", "0", "-survive-min", "9")
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate accepted tps 0 and survive-min 9")
	}
}

func TestWaitFlag(t *testing.T) {
	cfg, err := parse(t)
	if err != nil || cfg.Wait {
		t.Fatalf("wait default = %v, %v", cfg.Wait, err)
	}
	cfg, err = parse(t, "-wait")
	if err != nil || !cfg.Wait {
		t.Fatalf("-wait = %v, %v", cfg.Wait, err)
	}
}
