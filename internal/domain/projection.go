package domain

import "math"

const (
	// ProjectionStartYear anchors every population trajectory.
	ProjectionStartYear = 2026
	// ProjectionHorizonYears is the length of the projected series.
	ProjectionHorizonYears = 25

	collapseThresholdPct = 50.0
)

// PopulationPoint is one year of the projected relative population.
type PopulationPoint struct {
	Year          int     `json:"year"`
	PopulationPct float64 `json:"population_pct"`
}

// PopulationProjection is the multi-decade decline trajectory for the
// current risk score. CollapseYear is the first year the population drops
// below 50%, nil if it never does within the horizon.
type PopulationProjection struct {
	StartYear    int               `json:"start_year"`
	Series       []PopulationPoint `json:"series"`
	CollapseYear *int              `json:"collapse_year,omitempty"`
}

// DecayRate maps a risk score to the annual exponential decay rate.
func DecayRate(riskScore int) float64 {
	return 0.05 + float64(riskScore)/500
}

// ProjectPopulation computes the 25-year trajectory from the risk score
// alone. Pure and deterministic.
func ProjectPopulation(riskScore int) PopulationProjection {
	decay := DecayRate(riskScore)
	series := make([]PopulationPoint, 0, ProjectionHorizonYears)

	var collapse *int
	for i := 0; i < ProjectionHorizonYears; i++ {
		year := ProjectionStartYear + i
		pct := 100 * math.Exp(-decay*float64(i))
		if collapse == nil && pct < collapseThresholdPct {
			y := year
			collapse = &y
		}
		series = append(series, PopulationPoint{Year: year, PopulationPct: pct})
	}

	return PopulationProjection{
		StartYear:    ProjectionStartYear,
		Series:       series,
		CollapseYear: collapse,
	}
}
