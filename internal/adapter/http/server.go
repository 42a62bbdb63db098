// Package http exposes the assessment API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/assessment"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/export"
)

// Assessor runs one risk assessment per request.
type Assessor interface {
	Assess(ctx context.Context, req assessment.Request) (domain.AssessmentReport, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the assessment API and operational endpoints.
type Server struct {
	httpServer *http.Server
	assessor   Assessor
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the assessment routes plus
// /healthz, /readyz, and /metrics.
func NewServer(addr string, assessor Assessor, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		assessor: assessor,
		logger:   logger,
	}

	mux.HandleFunc("POST /api/v1/assessments", s.handleAssess)
	mux.HandleFunc("POST /api/v1/assessments/csv", s.handleAssessCSV)
	mux.HandleFunc("GET /api/v1/scenarios", s.handleScenarios)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	report, ok := s.assess(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAssessCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := s.assess(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(report)))
	w.WriteHeader(http.StatusOK)

	if err := export.WriteCSV(w, report); err != nil {
		s.logger.Error("csv export failed", "error", err, "report_id", report.ID)
	}
}

// assess decodes, runs, and error-maps one assessment. Returns ok=false when
// a response has already been written.
func (s *Server) assess(w http.ResponseWriter, r *http.Request) (domain.AssessmentReport, bool) {
	var req assessment.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return domain.AssessmentReport{}, false
	}

	report, err := s.assessor.Assess(r.Context(), req)
	if err != nil {
		if errors.Is(err, assessment.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return domain.AssessmentReport{}, false
		}
		s.logger.Error("assessment failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return domain.AssessmentReport{}, false
	}

	return report, true
}

func (s *Server) handleScenarios(w http.ResponseWriter, _ *http.Request) {
	type scenarioEntry struct {
		Name         string  `json:"name"`
		Label        string  `json:"label"`
		ShiftCelsius float64 `json:"shift_celsius"`
	}

	scenarios := domain.Scenarios()
	entries := make([]scenarioEntry, 0, len(scenarios))
	for _, sc := range scenarios {
		entries = append(entries, scenarioEntry{
			Name:         string(sc),
			Label:        sc.Label(),
			ShiftCelsius: sc.Shift(),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
