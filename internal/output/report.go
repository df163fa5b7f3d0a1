package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/allocation-simulator/internal/domain"
)

// Report is what every formatter renders: one or more evaluated targets
// against the same current allocation, with their feedback text.
type Report struct {
	Currency    string
	Assumptions []string
	Scenarios   []ScenarioReport
}

// ScenarioReport is one evaluated target
type ScenarioReport struct {
	Name   string
	Result *domain.SimulationResult
	Text   domain.ScenarioText
}

// NewReport builds a report over the results, attaching the configured text
// of each result's category. A single result is named "Target"; several are
// numbered in order.
func NewReport(config *domain.Configuration, results ...*domain.SimulationResult) *Report {
	r := &Report{
		Currency:    config.Defaults.Currency,
		Assumptions: GenerateAssumptions(config),
		Scenarios:   make([]ScenarioReport, 0, len(results)),
	}
	for i, res := range results {
		name := "Target"
		if len(results) > 1 {
			name = fmt.Sprintf("Target %d", i+1)
		}
		text, ok := config.TextFor(res.Category)
		if !ok {
			text = domain.ScenarioText{Title: string(res.Category)}
		}
		r.Scenarios = append(r.Scenarios, ScenarioReport{Name: name, Result: res, Text: text})
	}
	return r
}

// GenerateReport renders a report in the named format to w
func GenerateReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteReportFile renders a report in the named format to a timestamped file in dir
func WriteReportFile(dir string, report *Report, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, report, dir, FileExtension(format))
}
