package threats

import (
	"strings"
	"testing"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

func TestQuestions_CapAtFive(t *testing.T) {
	// A bare unknown study trips most checklist items.
	qs := Questions(study.TypeUnknown, study.MethodUnknown, &features.Record{}, nil)
	if len(qs) > 5 {
		t.Errorf("question count = %d, want <= 5", len(qs))
	}
	if len(qs) == 0 {
		t.Error("expected questions for a signal-free text")
	}
}

func TestQuestions_IVAlwaysAsksFirstStage(t *testing.T) {
	n := 100000
	rec := features.Record{
		HasIV: true, HasPreRegistration: true, HasRobustnessChecks: true,
		HasExternalValidity: true, SampleSizeNumeric: &n,
	}
	qs := Questions(study.TypeQuasiIV, study.MethodIV, &rec, nil)

	found := false
	for _, q := range qs {
		if strings.Contains(q, "first-stage F-statistic") {
			found = true
		}
	}
	if !found {
		t.Errorf("IV first-stage question missing: %v", qs)
	}
}

func TestQuestions_PriorityOrder(t *testing.T) {
	// Missing sample size is the first checklist item.
	qs := Questions(study.TypeUnknown, study.MethodUnknown, &features.Record{}, nil)
	if !strings.Contains(qs[0], "sample size") {
		t.Errorf("first question = %q, want the sample-size question", qs[0])
	}
}

func TestQuestions_HighRisksCombined(t *testing.T) {
	n := 100000
	rec := features.Record{
		HasPreRegistration: true, HasRobustnessChecks: true,
		HasExternalValidity: true, SampleSizeNumeric: &n,
	}
	risks := []RiskItem{
		{Risk: "Selection bias", Severity: SeverityHigh},
		{Risk: "Unobserved confounding", Severity: SeverityHigh},
	}

	qs := Questions(study.TypeObsCohort, study.MethodSelectionOnObs, &rec, risks)
	combined := ""
	for _, q := range qs {
		if strings.Contains(q, "high-severity") {
			combined = q
		}
	}
	if combined == "" {
		t.Fatalf("combined high-risk question missing: %v", qs)
	}
	if !strings.Contains(combined, "Selection bias") || !strings.Contains(combined, "Unobserved confounding") {
		t.Errorf("combined question should name all high risks: %q", combined)
	}
}
