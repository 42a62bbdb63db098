// Command assess runs a single thermal-metabolic risk assessment from the
// command line, printing a summary or the full report JSON and optionally
// writing the CSV report file.
//
// Usage:
//
//	go run ./cmd/assess -lat 36.8 -lon 34.6 \
//	  -scenario baseline -ni 1.0 [-live] [-json] [-csv report.csv]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/adapter/erddap"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/assessment"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/config"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/export"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/temperature"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	lat := flag.Float64("lat", math.NaN(), "latitude in [-90, 90] (required)")
	lon := flag.Float64("lon", math.NaN(), "longitude in [-180, 180] (required)")
	scenario := flag.String("scenario", "baseline", "climate scenario: baseline, ssp1-2.6, ssp5-8.5")
	ni := flag.Float64("ni", 1.0, "nutritional index in [0, 1]")
	live := flag.Bool("live", false, "query the live satellite source before falling back")
	asJSON := flag.Bool("json", false, "print the full report as JSON")
	csvPath := flag.String("csv", "", "write the CSV report to this path")
	flag.Parse()

	if math.IsNaN(*lat) || math.IsNaN(*lon) {
		flag.Usage()
		return fmt.Errorf("missing required flags: -lat, -lon")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	metrics := observability.NewMetrics()

	var fetcher temperature.SSTFetcher
	if *live && cfg.SSTLiveEnabled {
		fetcher = erddap.NewClient(cfg.SSTBaseURL, cfg.SSTTimeout, metrics, logger)
	}

	resolver := temperature.NewResolver(fetcher, cfg.SSTCacheTTL, cfg.SSTCacheSize, nil, metrics, logger)
	engine := assessment.New(resolver, logger, metrics)

	report, err := engine.Assess(context.Background(), assessment.Request{
		Latitude:         *lat,
		Longitude:        *lon,
		Scenario:         *scenario,
		NutritionalIndex: *ni,
		UseLiveData:      *live,
	})
	if err != nil {
		return err
	}

	if *csvPath != "" {
		if err := writeCSVFile(*csvPath, report); err != nil {
			return fmt.Errorf("writing csv report: %w", err)
		}
		log.Printf("wrote csv report: %s", *csvPath)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printSummary(report)
	return nil
}

func writeCSVFile(path string, report domain.AssessmentReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(report domain.AssessmentReport) {
	a := report.Assessment

	fmt.Printf("Location:          %s\n", report.Coordinate)
	fmt.Printf("Temperature:       %.1f°C (%s", a.EffectiveTemp, report.Reading.Source)
	if report.ScenarioShift > 0 {
		fmt.Printf(", +%.1f°C scenario shift", report.ScenarioShift)
	}
	fmt.Println(")")
	fmt.Printf("Scenario:          %s\n", report.Scenario.Label())
	fmt.Printf("Nutritional index: %.2f\n", report.NutritionalIndex)
	fmt.Printf("Lethal threshold:  %.2f°C\n", a.LethalThreshold)
	fmt.Printf("Risk:              %s (%d/100)\n", a.Tier, a.RiskScore)
	fmt.Printf("SMR:               %.1f mg O2/kg/h\n", a.SMR)
	fmt.Printf("Q10:               %.2f\n", a.Q10)
	fmt.Printf("Safety margin:     %.1f°C\n", a.SafetyMargin)

	if report.Projection.CollapseYear != nil {
		fmt.Printf("Projected 50%% population decline by %d\n", *report.Projection.CollapseYear)
	}

	fmt.Printf("\nAdvisory (%s):\n", report.Advisory)
	for _, action := range report.Advisory.Actions() {
		fmt.Printf("  - %s\n", action)
	}
}
