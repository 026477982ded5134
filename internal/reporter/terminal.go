package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evidencetools/rigor/internal/classify"
	"github.com/evidencetools/rigor/internal/score"
	"github.com/evidencetools/rigor/internal/threats"
	"github.com/evidencetools/rigor/internal/ui"
)

const (
	reportWidth  = 72
	barWidth     = 10
	maxRiskLines = 6
	maxQuestions = 3
)

// TerminalReporter renders a fixed-width bordered report
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles}
}

// Report renders one classification result
func (r *TerminalReporter) Report(res *classify.Result) error {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("EVIDENCE ASSESSMENT"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s   %s\n",
		r.gradeStyle(res.OverallGrade).Render(fmt.Sprintf("Grade: %s", res.OverallGrade)),
		r.styles.Muted.Render(fmt.Sprintf("Confidence: %.2f", res.Confidence))))
	b.WriteString("\n")

	b.WriteString(r.styles.Label.Render("Methodology"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Study type:    %s\n", res.StudyType.Label())
	fmt.Fprintf(&b, "  Causal method: %s\n", res.CausalMethod.Label())
	if len(res.CausalMethodIndicators) > 0 {
		for _, line := range wrap("Indicators: "+strings.Join(res.CausalMethodIndicators, ", "), reportWidth-4) {
			fmt.Fprintf(&b, "  %s\n", r.styles.Muted.Render(line))
		}
	}
	fmt.Fprintf(&b, "  %s\n", res.SampleSizeInfo)
	b.WriteString("\n")

	b.WriteString(r.styles.Label.Render("Scores"))
	b.WriteString("\n")
	r.scoreLine(&b, "Causal strength", res.CausalStrength)
	r.scoreLine(&b, "Internal validity", res.InternalValidity)
	r.scoreLine(&b, "External validity", res.ExternalValidity)
	r.scoreLine(&b, "Measurement quality", res.MeasurementQuality)
	r.scoreLine(&b, "Transparency", res.Transparency)
	b.WriteString("\n")

	if len(res.Risks) > 0 {
		b.WriteString(r.styles.Label.Render("Top risks"))
		b.WriteString("\n")
		shown := res.Risks
		if len(shown) > maxRiskLines {
			shown = shown[:maxRiskLines]
		}
		for _, risk := range shown {
			r.riskLine(&b, risk)
		}
		if rest := len(res.Risks) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "  %s\n", r.styles.Muted.Render(fmt.Sprintf("(+%d more)", rest)))
		}
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Label.Render("Recommended use"))
	b.WriteString("\n")
	for _, line := range wrap(res.RecommendedUse, reportWidth-2) {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	if len(res.FollowupQuestions) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Label.Render("Questions to ask"))
		b.WriteString("\n")
		qs := res.FollowupQuestions
		if len(qs) > maxQuestions {
			qs = qs[:maxQuestions]
		}
		for i, q := range qs {
			for j, line := range wrap(q, reportWidth-5) {
				if j == 0 {
					fmt.Fprintf(&b, "  %d. %s\n", i+1, line)
				} else {
					fmt.Fprintf(&b, "     %s\n", line)
				}
			}
		}
	}

	b.WriteString("\n")
	for _, line := range wrap(res.Disclaimer, reportWidth-2) {
		fmt.Fprintf(&b, "%s\n", r.styles.Muted.Render(line))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(reportWidth + 2)

	fmt.Fprintln(r.w, box.Render(strings.TrimRight(b.String(), "\n")))
	return nil
}

// ReportBatch renders one line per input plus a summary
func (r *TerminalReporter) ReportBatch(entries []BatchEntry) error {
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(r.w, "%s %s: %v\n", r.styles.Warning.Render(r.styles.IconWarning), e.Source, e.Err)
			continue
		}
		res := e.Result
		high, _, _ := threats.CountBySeverity(res.Risks)
		riskNote := ""
		if high > 0 {
			riskNote = r.styles.High.Render(fmt.Sprintf("  %d high-severity risks", high))
		}
		fmt.Fprintf(r.w, "%-40s %s  strength %.1f%s\n",
			truncate(e.Source, 40),
			r.gradeStyle(res.OverallGrade).Render(fmt.Sprintf("%-11s", res.OverallGrade)),
			res.CausalStrength,
			riskNote)
	}

	summary := ComputeBatchSummary(entries)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Border.Render(strings.Repeat("─", 45)))
	fmt.Fprintf(r.w, "Classified %d studies", summary.Total-summary.Failed)
	if summary.Failed > 0 {
		fmt.Fprintf(r.w, " (%d failed)", summary.Failed)
	}
	var parts []string
	for _, g := range []score.Grade{score.GradeVeryStrong, score.GradeStrong, score.GradeModerate, score.GradeWeak, score.GradeVeryWeak} {
		if n := summary.ByGrade[g]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, g))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(r.w, ": %s", strings.Join(parts, ", "))
	}
	fmt.Fprintln(r.w)
	return nil
}

func (r *TerminalReporter) scoreLine(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "  %-20s %s %.1f/5\n", label, r.styles.ScoreBar(v, barWidth), v)
}

func (r *TerminalReporter) riskLine(b *strings.Builder, risk threats.RiskItem) {
	var style lipgloss.Style
	var icon string
	switch risk.Severity {
	case threats.SeverityHigh:
		style, icon = r.styles.High, r.styles.IconHigh
	case threats.SeverityMedium:
		style, icon = r.styles.Medium, r.styles.IconMedium
	default:
		style, icon = r.styles.Low, r.styles.IconLow
	}

	fmt.Fprintf(b, "  %s %s %s\n",
		style.Render(icon),
		r.styles.Header.Render(risk.Risk),
		style.Render(fmt.Sprintf("[%s]", risk.Severity)))
	for _, line := range wrap(risk.Reasoning, reportWidth-6) {
		fmt.Fprintf(b, "      %s\n", r.styles.Muted.Render(line))
	}
}

func (r *TerminalReporter) gradeStyle(g score.Grade) lipgloss.Style {
	switch g {
	case score.GradeVeryStrong, score.GradeStrong:
		return r.styles.GradeStrong
	case score.GradeModerate:
		return r.styles.GradeMid
	default:
		return r.styles.GradeWeak
	}
}

// wrap splits text into lines no wider than width, breaking on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
