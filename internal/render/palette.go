package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"locklife/internal/core"
)

// Palette maps each display category to a fill colour. Grid is the
// background that shows through the gap between cells.
type Palette struct {
	DeadUnlocked  color.RGBA
	DeadLocked    color.RGBA
	AliveUnlocked color.RGBA
	AliveLocked   color.RGBA
	Grid          color.RGBA
}

// DefaultPalette returns black/white cells, red and green locks on a dark
// green grid.
func DefaultPalette() Palette {
	return Palette{
		DeadUnlocked:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		DeadLocked:    color.RGBA{R: 255, G: 0, B: 0, A: 255},
		AliveUnlocked: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		AliveLocked:   color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Grid:          color.RGBA{R: 40, G: 90, B: 0, A: 255},
	}
}

// Color returns the fill for a category.
func (p Palette) Color(cat core.Category) color.RGBA {
	switch cat {
	case core.CategoryDeadLocked:
		return p.DeadLocked
	case core.CategoryAliveUnlocked:
		return p.AliveUnlocked
	case core.CategoryAliveLocked:
		return p.AliveLocked
	default:
		return p.DeadUnlocked
	}
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatHex renders c as "#rrggbb". Alpha is ignored.
func FormatHex(c color.RGBA) string {
	c.A = 255
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
