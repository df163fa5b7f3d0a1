package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
)

// HTMLFormatter produces a self-contained HTML report with a projection chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"scurr":   FormatSignedCurrency,
	"pct":     FormatPercentage,
	"spct":    FormatSignedPercentage,
	"compact": FormatCompact,
	"assets":  domain.Assets,
	"add":     func(i, j int) int { return i + j },
	"at":      valueAt,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlScenario struct {
	ScenarioReport
	Feedback template.HTML
	Chart    htmlChart
}

// htmlChart carries the series as plain numbers for the inline chart script
type htmlChart struct {
	Years     []int     `json:"years"`
	Inflation []float64 `json:"inflation"`
	Current   []float64 `json:"current"`
	Target    []float64 `json:"target"`
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	scenarios := make([]htmlScenario, 0, len(report.Scenarios))
	for _, sc := range report.Scenarios {
		var md bytes.Buffer
		if err := goldmark.Convert([]byte(sc.Text.Body), &md); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, htmlScenario{
			ScenarioReport: sc,
			// goldmark escapes raw HTML unless the unsafe renderer option is set
			Feedback: template.HTML(md.String()),
			Chart:    chartOf(sc.Result),
		})
	}

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	var rec *Recommendation
	if len(report.Scenarios) > 1 {
		r := AnalyzeScenarios(report)
		rec = &r
	}

	data := struct {
		Currency       string
		Assumptions    []string
		Scenarios      []htmlScenario
		Recommendation *Recommendation
	}{report.Currency, assumptions, scenarios, rec}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func chartOf(r *domain.SimulationResult) htmlChart {
	c := htmlChart{}
	for i, p := range r.Target.Points {
		c.Years = append(c.Years, p.Years)
		c.Inflation = append(c.Inflation, floatOf(valueAt(r.Inflation, i)))
		c.Current = append(c.Current, floatOf(valueAt(r.Current, i)))
		c.Target = append(c.Target, floatOf(p.Value))
	}
	return c
}

func floatOf(d decimal.Decimal) float64 { return d.InexactFloat64() }
