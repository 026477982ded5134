package reporter

import (
	"encoding/json"
	"io"

	"github.com/evidencetools/rigor/internal/classify"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w      io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{w: w, pretty: pretty}
}

// Report outputs one result as a single JSON object
func (r *JSONReporter) Report(result *classify.Result) error {
	return r.encode(result)
}

// batchItem is one element of the batch JSON array
type batchItem struct {
	Source string           `json:"source"`
	Error  string           `json:"error,omitempty"`
	Result *classify.Result `json:"result,omitempty"`
}

// ReportBatch outputs a JSON array of per-input results
func (r *JSONReporter) ReportBatch(entries []BatchEntry) error {
	items := make([]batchItem, 0, len(entries))
	for _, e := range entries {
		item := batchItem{Source: e.Source, Result: e.Result}
		if e.Err != nil {
			item.Error = e.Err.Error()
		}
		items = append(items, item)
	}
	return r.encode(items)
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	if r.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
