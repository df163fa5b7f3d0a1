package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer writes one row per scenario and horizon, in horizon order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Years", "Inflation", "Current", "Target", "Gap"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		r := sc.Result
		for i, p := range r.Target.Points {
			row := []string{
				sc.Name,
				intToString(p.Years),
				valueAt(r.Inflation, i).StringFixed(2),
				valueAt(r.Current, i).StringFixed(2),
				p.Value.StringFixed(2),
				r.GapAt(p.Years).StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
