package reporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/score"
	"github.com/evidencetools/rigor/internal/ui"
)

const abstract = `In this randomized controlled trial, 1,200 participants were
randomly assigned to a treatment arm or a placebo control group. The trial was
pre-registered (ISRCTN49127293) and balance tests confirmed group equivalence.`

func plainUI() *ui.UI {
	var out, errOut bytes.Buffer
	return ui.New(&out, &errOut, "terminal")
}

func TestTerminalReport(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI())

	res := classify.Classify(abstract)
	if err := rep.Report(res); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"EVIDENCE ASSESSMENT",
		"Grade: " + string(res.OverallGrade),
		"randomized controlled trial",
		"Causal strength",
		"1,200",
		"Recommended use",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
	// Disclaimer footer is always present.
	if !strings.Contains(out, "triage aid") {
		t.Error("report missing disclaimer")
	}
	// Score bars render with the plain-mode glyphs.
	if !strings.Contains(out, "#") {
		t.Error("report missing score bars")
	}
}

func TestTerminalReport_QuestionCap(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI())

	res := classify.Classify("An observational survey of 30 respondents with self-reported outcomes and no controls.")
	if err := rep.Report(res); err != nil {
		t.Fatal(err)
	}

	// At most 3 questions in the rendered report.
	if strings.Contains(buf.String(), "  4. ") {
		t.Errorf("more than 3 questions rendered:\n%s", buf.String())
	}
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf, false)

	if err := rep.Report(classify.Classify(abstract)); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, field := range []string{"study_type", "overall_evidence_grade", "confidence", "disclaimer"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("JSON output missing %q", field)
		}
	}
}

func TestJSONReportBatch(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf, true)

	entries := []BatchEntry{
		{Source: "a.txt", Result: classify.Classify(abstract)},
		{Source: "b.txt", Err: errors.New("too short")},
	}
	if err := rep.ReportBatch(entries); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("batch output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("batch length = %d, want 2", len(decoded))
	}
	if decoded[1]["error"] != "too short" {
		t.Errorf("error entry = %v", decoded[1])
	}
}

func TestTerminalReportBatch(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI())

	entries := []BatchEntry{
		{Source: "a.txt", Result: classify.Classify(abstract)},
		{Source: "b.txt", Err: errors.New("too short")},
	}
	if err := rep.ReportBatch(entries); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "a.txt") || !strings.Contains(out, "b.txt") {
		t.Errorf("batch lines missing sources:\n%s", out)
	}
	if !strings.Contains(out, "Classified 1 studies (1 failed)") {
		t.Errorf("summary line wrong:\n%s", out)
	}
}

func TestComputeBatchSummary(t *testing.T) {
	entries := []BatchEntry{
		{Source: "a", Result: classify.Classify(abstract)},
		{Source: "b", Err: errors.New("x")},
	}
	s := ComputeBatchSummary(entries)

	if s.Total != 2 || s.Failed != 1 {
		t.Errorf("summary = %+v", s)
	}
	graded := 0
	for _, n := range s.ByGrade {
		graded += n
	}
	if graded != 1 {
		t.Errorf("graded count = %d, want 1", graded)
	}
	if _, ok := s.ByGrade[score.Grade("Nonsense")]; ok {
		t.Error("unexpected grade bucket")
	}
}
