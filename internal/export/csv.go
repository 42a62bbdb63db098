// Package export serializes assessment reports for download. Formatting
// only; every value is computed upstream.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
)

// csvHeader is the report column layout, stable for downstream spreadsheets.
var csvHeader = []string{
	"Timestamp",
	"Location",
	"Temperature (°C)",
	"Scenario",
	"Nutritional Index",
	"SMR (mg O2/kg/h)",
	"Q10",
	"Risk Score (%)",
	"Status",
	"Safety Margin (°C)",
	"Data Source",
}

// WriteCSV serializes one report as a header row plus a single data row.
func WriteCSV(w io.Writer, report domain.AssessmentReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := []string{
		report.Reading.ObservedAt.Format("2006-01-02 15:04 UTC"),
		report.Coordinate.String(),
		strconv.FormatFloat(report.Assessment.EffectiveTemp, 'f', 1, 64),
		report.Scenario.Label(),
		strconv.FormatFloat(report.NutritionalIndex, 'f', 2, 64),
		strconv.FormatFloat(report.Assessment.SMR, 'f', 1, 64),
		strconv.FormatFloat(report.Assessment.Q10, 'f', 2, 64),
		strconv.Itoa(report.Assessment.RiskScore),
		string(report.Assessment.Tier),
		strconv.FormatFloat(report.Assessment.SafetyMargin, 'f', 1, 64),
		report.Reading.Source,
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// Filename returns the report's download filename, STEF_Report_YYYYMMDD_HHMM.csv.
func Filename(report domain.AssessmentReport) string {
	return "STEF_Report_" + report.GeneratedAt.Format("20060102_1504") + ".csv"
}
