package life

import (
	"slices"
	"time"

	"locklife/internal/core"
)

// SoupResult summarises one random soup run to completion.
type SoupResult struct {
	Seed       int64
	Initial    int
	Final      int
	Generation int
	// Period is 1 for a still life, 2 for a blinking end state, 0 when
	// the soup never settled within the step budget.
	Period int
}

// Settled reports whether the soup reached a still or period-2 state.
func (r SoupResult) Settled() bool { return r.Period > 0 }

// RunSoup scatters a fresh session seeded with seed and advances it until it
// repeats with period one or two, or maxSteps generations have run.
func RunSoup(cfg Config, seed int64, maxSteps int) (SoupResult, error) {
	cfg.StartPaused = true
	l, err := New(cfg, time.Time{})
	if err != nil {
		return SoupResult{}, err
	}
	l.Scatter(seed)
	res := SoupResult{Seed: seed, Initial: l.Grid().Population()}

	// history[0] is the previous generation, history[1] the one before.
	var history [2][]core.Category
	cur := l.Grid().Categories(nil)
	for step := 1; step <= maxSteps; step++ {
		history[1] = append(history[1][:0], history[0]...)
		history[0] = append(history[0][:0], cur...)
		changed := l.Tick()
		cur = l.Grid().Categories(cur)
		if changed == 0 {
			res.Period = 1
			break
		}
		if step >= 2 && slices.Equal(cur, history[1]) {
			res.Period = 2
			break
		}
	}
	res.Final = l.Grid().Population()
	res.Generation = l.Generation()
	return res, nil
}
