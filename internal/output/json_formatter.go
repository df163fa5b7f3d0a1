package output

import (
	"encoding/json"

	"github.com/rpgo/allocation-simulator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonScenario struct {
	Name   string                   `json:"name"`
	Title  string                   `json:"title"`
	Body   string                   `json:"body,omitempty"`
	Result *domain.SimulationResult `json:"result"`
}

type jsonReport struct {
	Currency       string          `json:"currency"`
	Assumptions    []string        `json:"assumptions,omitempty"`
	Scenarios      []jsonScenario  `json:"scenarios"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	out := jsonReport{
		Currency:    report.Currency,
		Assumptions: report.Assumptions,
		Scenarios:   make([]jsonScenario, 0, len(report.Scenarios)),
	}
	for _, sc := range report.Scenarios {
		out.Scenarios = append(out.Scenarios, jsonScenario{
			Name:   sc.Name,
			Title:  sc.Text.Title,
			Body:   sc.Text.Body,
			Result: sc.Result,
		})
	}
	if len(report.Scenarios) > 1 {
		rec := AnalyzeScenarios(report)
		out.Recommendation = &rec
	}
	return json.MarshalIndent(out, "", "  ")
}
