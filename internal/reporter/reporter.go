// Package reporter renders classification results: a bordered terminal
// report for humans, JSON for machines.
package reporter

import (
	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/score"
	"github.com/evidencetools/rigor/internal/threats"
)

// Reporter defines the interface for outputting classification results
type Reporter interface {
	// Report outputs a single classification result
	Report(result *classify.Result) error
	// ReportBatch outputs results for multiple inputs
	ReportBatch(entries []BatchEntry) error
}

// BatchEntry pairs one input with its result (or the error that kept it
// from being classified).
type BatchEntry struct {
	Source string
	Result *classify.Result
	Err    error
}

// BatchSummary holds summary statistics for a batch run
type BatchSummary struct {
	Total    int
	Failed   int
	ByGrade  map[score.Grade]int
	HighRisk int // inputs with at least one high-severity risk
}

// ComputeBatchSummary computes summary statistics from batch entries
func ComputeBatchSummary(entries []BatchEntry) BatchSummary {
	s := BatchSummary{
		Total:   len(entries),
		ByGrade: make(map[score.Grade]int),
	}

	for _, e := range entries {
		if e.Err != nil || e.Result == nil {
			s.Failed++
			continue
		}
		s.ByGrade[e.Result.OverallGrade]++
		for _, r := range e.Result.Risks {
			if r.Severity == threats.SeverityHigh {
				s.HighRisk++
				break
			}
		}
	}

	return s
}
