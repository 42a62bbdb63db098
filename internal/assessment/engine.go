// Package assessment orchestrates a full thermal-metabolic risk assessment:
// resolve temperature, apply the scenario shift, evaluate risk, project the
// population trajectory, and assemble the report.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
)

// ErrInvalidRequest marks input rejected at the boundary before any
// computation runs. HTTP callers map it to a 400.
var ErrInvalidRequest = errors.New("invalid assessment request")

var validate = validator.New()

// Request is the external input boundary for one assessment.
type Request struct {
	Latitude         float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude        float64 `json:"longitude" validate:"min=-180,max=180"`
	Scenario         string  `json:"scenario" validate:"required"`
	NutritionalIndex float64 `json:"nutritional_index"`
	UseLiveData      bool    `json:"use_live_data"`
}

// TemperatureResolver resolves a sea-surface temperature reading for a
// coordinate. It cannot fail; the worst case is a model-labeled estimate.
type TemperatureResolver interface {
	Resolve(ctx context.Context, coord domain.Coordinate, useLive bool) domain.TemperatureReading
}

// Engine runs assessments against an injected temperature resolver.
type Engine struct {
	resolver TemperatureResolver
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates an Engine.
func New(resolver TemperatureResolver, logger *slog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Assess validates the request and runs one synchronous
// resolve → adjust → evaluate → project → assemble pass.
func (e *Engine) Assess(ctx context.Context, req Request) (domain.AssessmentReport, error) {
	start := time.Now()

	if err := validate.Struct(req); err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	coord, err := domain.NewCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	scenario, err := domain.ParseScenario(req.Scenario)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	ni, err := clampNutritionalIndex(req.NutritionalIndex)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	reading := e.resolver.Resolve(ctx, coord, req.UseLiveData)
	effective := scenario.Apply(reading.Celsius)
	assessment := domain.EvaluateRisk(effective, ni)
	projection := domain.ProjectPopulation(assessment.RiskScore)
	report := domain.AssembleReport(coord, reading, scenario, ni, assessment, projection)

	e.metrics.Assessments.WithLabelValues(string(assessment.Tier)).Inc()
	e.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())

	e.logger.Info("assessment complete",
		"lat", coord.Latitude,
		"lon", coord.Longitude,
		"scenario", scenario,
		"source", reading.Source,
		"effective_temp", assessment.EffectiveTemp,
		"tier", assessment.Tier,
		"risk_score", assessment.RiskScore,
	)

	return report, nil
}

// CheckReadiness reports ready unconditionally: the geographic model serves
// assessments without any warm-up or upstream dependency.
func (e *Engine) CheckReadiness(_ context.Context) error {
	return nil
}

// clampNutritionalIndex forgives out-of-range values from programmatic
// callers by clamping into [0, 1]; non-finite values are rejected.
func clampNutritionalIndex(ni float64) (float64, error) {
	if math.IsNaN(ni) || math.IsInf(ni, 0) {
		return 0, fmt.Errorf("nutritional index must be finite, got %v", ni)
	}
	return math.Max(0, math.Min(1, ni)), nil
}
