package threats

import (
	"fmt"
	"strings"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

const maxQuestions = 5

// Questions builds up to five follow-up questions a reviewer should put
// to the authors, from a fixed-priority checklist. Truncation keeps the
// highest-priority items.
func Questions(t study.Type, m study.Method, f *features.Record, risks []RiskItem) []string {
	var qs []string

	if _, ok := f.SampleSize(); !ok {
		qs = append(qs, "What is the sample size, and was it determined by a power calculation?")
	}
	if m == study.MethodDiD && !f.HasParallelTrends {
		qs = append(qs, "What evidence supports parallel pre-treatment trends between treated and comparison groups?")
	}
	if m == study.MethodIV {
		qs = append(qs, "What is the first-stage F-statistic, and what is the theoretical case for the exclusion restriction?")
	}
	if m == study.MethodRDD && !f.HasSensitivityAnalysis {
		qs = append(qs, "Were manipulation (density) tests run, and are results stable across bandwidths?")
	}
	if m == study.MethodRandomization && !f.HasAttritionDiscussed {
		qs = append(qs, "What was the attrition rate, and did it differ between treatment arms?")
	}
	if !f.HasPreRegistration {
		qs = append(qs, "Was the study pre-registered, and do reported outcomes match the protocol?")
	}
	if !f.HasRobustnessChecks {
		qs = append(qs, "Are the results robust to alternative specifications and placebo tests?")
	}
	if names := highRiskNames(risks); len(names) > 0 {
		qs = append(qs, fmt.Sprintf("How do the authors address the high-severity concerns identified here (%s)?",
			strings.Join(names, ", ")))
	}
	if !f.HasExternalValidity {
		qs = append(qs, "To what population or setting do the authors expect these findings to generalize?")
	}

	if len(qs) > maxQuestions {
		qs = qs[:maxQuestions]
	}
	return qs
}

func highRiskNames(risks []RiskItem) []string {
	var names []string
	for _, r := range risks {
		if r.Severity == SeverityHigh {
			names = append(names, r.Risk)
		}
	}
	return names
}
