package core

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxNeighbors is the size of the Moore neighbourhood.
const MaxNeighbors = 8

// Rule holds the inclusive neighbour-count ranges for survival and birth.
type Rule struct {
	SurviveMin int
	SurviveMax int
	BirthMin   int
	BirthMax   int
}

// Conway returns the classic B3/S23 rule.
func Conway() Rule {
	return Rule{SurviveMin: 2, SurviveMax: 3, BirthMin: 3, BirthMax: 3}
}

// Next computes the next alive state of a cell with n live neighbours.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return n >= r.SurviveMin && n <= r.SurviveMax
	}
	return n >= r.BirthMin && n <= r.BirthMax
}

// Validate checks that every threshold lies in [0,8] and both ranges are
// ordered.
func (r Rule) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 || v > MaxNeighbors {
			errs = append(errs, fmt.Errorf("%s %d outside [0,%d]", name, v, MaxNeighbors))
		}
	}
	check("survive min", r.SurviveMin)
	check("survive max", r.SurviveMax)
	check("birth min", r.BirthMin)
	check("birth max", r.BirthMax)
	if r.SurviveMin > r.SurviveMax {
		errs = append(errs, fmt.Errorf("survive min %d above max %d", r.SurviveMin, r.SurviveMax))
	}
	if r.BirthMin > r.BirthMax {
		errs = append(errs, fmt.Errorf("birth min %d above max %d", r.BirthMin, r.BirthMax))
	}
	return errors.Join(errs...)
}

// String renders the rule in B/S notation, e.g. "B3/S23" or "B3-4/S2-5".
func (r Rule) String() string {
	return "B" + span(r.BirthMin, r.BirthMax) + "/S" + span(r.SurviveMin, r.SurviveMax)
}

func span(lo, hi int) string {
	switch {
	case lo == hi:
		return strconv.Itoa(lo)
	case hi == lo+1:
		return strconv.Itoa(lo) + strconv.Itoa(hi)
	default:
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
}
