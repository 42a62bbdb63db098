package domain

import (
	"fmt"
	"strings"
)

// ClimateScenario is a closed enumeration of IPCC projection scenarios, each
// with a fixed sea-surface temperature shift.
type ClimateScenario string

const (
	ScenarioBaseline ClimateScenario = "baseline"
	ScenarioSSP126   ClimateScenario = "ssp1-2.6"
	ScenarioSSP585   ClimateScenario = "ssp5-8.5"
)

// Scenarios enumerates all scenarios in display order.
func Scenarios() []ClimateScenario {
	return []ClimateScenario{ScenarioBaseline, ScenarioSSP126, ScenarioSSP585}
}

// Shift returns the scenario's temperature offset in °C.
func (s ClimateScenario) Shift() float64 {
	switch s {
	case ScenarioSSP126:
		return 1.5
	case ScenarioSSP585:
		return 3.2
	default:
		return 0.0
	}
}

// Label returns the scenario's display name as shown in selection UIs.
func (s ClimateScenario) Label() string {
	switch s {
	case ScenarioSSP126:
		return "SSP1-2.6 (+1.5°C by 2050)"
	case ScenarioSSP585:
		return "SSP5-8.5 (+3.2°C by 2050)"
	default:
		return "Present Day (Baseline)"
	}
}

// Apply returns the effective temperature under this scenario.
func (s ClimateScenario) Apply(celsius float64) float64 {
	return celsius + s.Shift()
}

// ParseScenario resolves a scenario from its canonical name or its UI label,
// case-insensitively. Unknown names are an error, never a silent baseline.
func ParseScenario(name string) (ClimateScenario, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(name)); {
	case normalized == string(ScenarioBaseline), strings.Contains(normalized, "baseline"), strings.Contains(normalized, "present day"):
		return ScenarioBaseline, nil
	case strings.HasPrefix(normalized, string(ScenarioSSP126)):
		return ScenarioSSP126, nil
	case strings.HasPrefix(normalized, string(ScenarioSSP585)):
		return ScenarioSSP585, nil
	default:
		return "", fmt.Errorf("unknown climate scenario %q", name)
	}
}
