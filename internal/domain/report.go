package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentReport aggregates everything computed for one assessment. It is
// the sole externally exported artifact, fully self-describing: the reading
// carries its own provenance, the scenario its shift, and the advisory is
// derived from the score at assembly time.
type AssessmentReport struct {
	ID               string               `json:"id"`
	GeneratedAt      time.Time            `json:"generated_at"`
	Coordinate       Coordinate           `json:"coordinate"`
	Reading          TemperatureReading   `json:"reading"`
	Scenario         ClimateScenario      `json:"scenario"`
	ScenarioShift    float64              `json:"scenario_shift"`
	NutritionalIndex float64              `json:"nutritional_index"`
	Assessment       RiskAssessment       `json:"assessment"`
	Projection       PopulationProjection `json:"projection"`
	Advisory         AdvisoryLevel        `json:"advisory"`
}

// AssembleReport packages the computed values into one immutable record,
// stamping an ID and creation time. Pure aggregation, no computation beyond
// the advisory lookup.
func AssembleReport(coord Coordinate, reading TemperatureReading, scenario ClimateScenario, ni float64, assessment RiskAssessment, projection PopulationProjection) AssessmentReport {
	return AssessmentReport{
		ID:               uuid.New().String(),
		GeneratedAt:      clock.Now().UTC(),
		Coordinate:       coord,
		Reading:          reading,
		Scenario:         scenario,
		ScenarioShift:    scenario.Shift(),
		NutritionalIndex: ni,
		Assessment:       assessment,
		Projection:       projection,
		Advisory:         AdvisoryFor(assessment.RiskScore),
	}
}
