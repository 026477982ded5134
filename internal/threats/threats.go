// Package threats evaluates a catalogue of internal-validity threats
// against the detected study design and emits the applicable ones with
// a severity and reasoning.
package threats

import (
	"sort"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

// Severity grades how much a threat undermines internal validity.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// rank orders severities for sorting, high first.
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// RiskItem is one emitted threat.
type RiskItem struct {
	Risk      string   `json:"risk"`
	Severity  Severity `json:"severity"`
	Reasoning string   `json:"reasoning"`
}

// Definition describes one catalogue entry. AppliesTo nil means all
// study types. Severity returning ok=false means the threat is not
// applicable to this particular study and is not emitted.
type Definition struct {
	Name           string
	AppliesTo      []study.Type // nil = all study types
	ExcludeMethods []study.Method
	Severity       func(f *features.Record, t study.Type) (Severity, bool)
	Reasoning      func(f *features.Record) string
}

func (d *Definition) appliesTo(t study.Type) bool {
	if d.AppliesTo == nil {
		return true
	}
	for _, at := range d.AppliesTo {
		if at == t {
			return true
		}
	}
	return false
}

func (d *Definition) excludes(m study.Method) bool {
	for _, em := range d.ExcludeMethods {
		if em == m {
			return true
		}
	}
	return false
}

// Identify evaluates the catalogue and returns emitted risks sorted by
// descending severity, stable within a tier (catalogue declaration
// order).
func Identify(t study.Type, m study.Method, f *features.Record) []RiskItem {
	var risks []RiskItem
	for i := range catalogue {
		d := &catalogue[i]
		if !d.appliesTo(t) || d.excludes(m) {
			continue
		}
		sev, ok := d.Severity(f, t)
		if !ok {
			continue
		}
		risks = append(risks, RiskItem{
			Risk:      d.Name,
			Severity:  sev,
			Reasoning: d.Reasoning(f),
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Severity.rank() < risks[j].Severity.rank()
	})
	return risks
}

// CountBySeverity tallies emitted risks per severity tier.
func CountBySeverity(risks []RiskItem) (high, medium, low int) {
	for _, r := range risks {
		switch r.Severity {
		case SeverityHigh:
			high++
		case SeverityMedium:
			medium++
		default:
			low++
		}
	}
	return high, medium, low
}
