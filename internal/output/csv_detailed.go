package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/allocation-simulator/internal/domain"
)

// CSVDetailedExporter writes one row per scenario with both allocations,
// the target metrics, the wealth gap range and the category.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario"}
	for _, slot := range []domain.Slot{domain.SlotCurrent, domain.SlotTarget} {
		for _, asset := range domain.Assets() {
			header = append(header, string(slot)+"_"+string(asset))
		}
	}
	header = append(header, "ExpectedReturn", "WorstCase", "BestCase", "Confidence",
		"GapMin", "GapMax", "Category", "ActiveWarning")
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		r := sc.Result
		row := []string{sc.Name}
		for _, a := range []domain.Allocation{r.Input.Current, r.Input.Target} {
			for _, asset := range domain.Assets() {
				row = append(row, intToString(a.Get(asset)))
			}
		}
		m := r.TargetMetrics
		row = append(row,
			m.ExpectedReturn.StringFixed(2),
			m.WorstCaseDrawdown.StringFixed(2),
			m.BestCaseReturn.StringFixed(2),
			m.ConfidenceScore.StringFixed(2),
			r.WealthGap.Min.StringFixed(2),
			r.WealthGap.Max.StringFixed(2),
			string(r.Category),
			boolToString(r.AnyActiveWarning()),
		)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
