package life

import (
	"strconv"
	"time"

	"locklife/internal/core"
)

const (
	keyDelay      = "delay_ms"
	keySurviveMin = "survive_min"
	keySurviveMax = "survive_max"
	keyBirthMin   = "birth_min"
	keyBirthMax   = "birth_max"

	maxDelayMS = 5000
)

// Parameters reports the session's current values for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	rule := l.Rule()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("h", "Height", l.grid.Height()),
				intParam("w", "Width", l.grid.Width()),
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.grid.Population()),
				intParam("changed", "Changed", l.lastChanged),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeText, Value: rule.String()},
				intParam(keySurviveMin, "Survive min", rule.SurviveMin),
				intParam(keySurviveMax, "Survive max", rule.SurviveMax),
				intParam(keyBirthMin, "Birth min", rule.BirthMin),
				intParam(keyBirthMax, "Birth max", rule.BirthMax),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam(keyDelay, "Delay (ms)", int(l.Delay()/time.Millisecond)),
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(l.paused)},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyDelay, Label: "Delay (ms)", Step: 25, Min: 25, Max: maxDelayMS},
		{Key: keySurviveMin, Label: "Survive min", Step: 1, Min: 0, Max: core.MaxNeighbors},
		{Key: keySurviveMax, Label: "Survive max", Step: 1, Min: 0, Max: core.MaxNeighbors},
		{Key: keyBirthMin, Label: "Birth min", Step: 1, Min: 0, Max: core.MaxNeighbors},
		{Key: keyBirthMax, Label: "Birth max", Step: 1, Min: 0, Max: core.MaxNeighbors},
	}
}

// SetIntParameter updates a tunable. Values that would produce an invalid
// rule or delay are rejected.
func (l *Life) SetIntParameter(key string, value int) bool {
	if key == keyDelay {
		if value <= 0 || value > maxDelayMS {
			return false
		}
		l.timer.SetDelay(time.Duration(value) * time.Millisecond)
		return true
	}
	rule := l.Rule()
	switch key {
	case keySurviveMin:
		rule.SurviveMin = value
	case keySurviveMax:
		rule.SurviveMax = value
	case keyBirthMin:
		rule.BirthMin = value
	case keyBirthMax:
		rule.BirthMax = value
	default:
		return false
	}
	return l.engine.SetRule(rule) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
