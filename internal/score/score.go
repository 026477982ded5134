// Package score computes the component scores and the weighted overall
// evidence grade from the upstream pipeline outputs.
package score

import (
	"math"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/profile"
	"github.com/evidencetools/rigor/internal/study"
	"github.com/evidencetools/rigor/internal/threats"
)

// Grade is the overall evidence grade.
type Grade string

const (
	GradeVeryStrong Grade = "Very Strong"
	GradeStrong     Grade = "Strong"
	GradeModerate   Grade = "Moderate"
	GradeWeak       Grade = "Weak"
	GradeVeryWeak   Grade = "Very Weak"
)

// Component is an independent 0-5 heuristic score with the signals that
// produced it.
type Component struct {
	Score float64
	Notes []string
}

// ExternalValidity scores how far findings plausibly generalize.
func ExternalValidity(f *features.Record, t study.Type) Component {
	s := 2.5
	var notes []string

	switch {
	case f.SampleAtLeast(10000):
		s += 1.0
		notes = append(notes, "large sample (>= 10,000)")
	case f.SampleAtLeast(1000):
		s += 0.5
		notes = append(notes, "moderate sample (>= 1,000)")
	case f.SampleBelow(100):
		s -= 0.5
		notes = append(notes, "small sample (< 100)")
	}
	if f.HasExternalValidity {
		s += 0.5
		notes = append(notes, "external validity discussed")
	}
	if t.IsReview() {
		s += 0.5
		notes = append(notes, "evidence pooled across studies")
	}

	return Component{Score: round1(clamp(s, 0, 5)), Notes: notes}
}

// MeasurementQuality scores the reliability of outcome measurement.
func MeasurementQuality(f *features.Record) Component {
	s := 2.5
	var notes []string

	if f.HasAdminData {
		s += 1.0
		notes = append(notes, "administrative/registry data")
	}
	if f.HasObjectiveMeasures {
		s += 0.75
		notes = append(notes, "objective measures")
	}
	if f.HasValidatedInstruments {
		s += 0.5
		notes = append(notes, "validated instruments")
	}
	if f.HasSelfReport && !f.HasAdminData && !f.HasObjectiveMeasures {
		s -= 0.5
		notes = append(notes, "self-report only")
	}

	return Component{Score: round1(clamp(s, 0, 5)), Notes: notes}
}

// Transparency scores reproducibility disclosures. The baseline is low:
// abstracts rarely disclose fully.
func Transparency(f *features.Record) Component {
	s := 1.5
	var notes []string

	add := func(cond bool, delta float64, note string) {
		if cond {
			s += delta
			notes = append(notes, note)
		}
	}
	add(f.HasPreRegistration, 1.0, "pre-registration")
	add(f.HasDataAvailability, 0.75, "data availability")
	add(f.HasCodeAvailability, 0.5, "code availability")
	add(f.HasCONSORT, 0.5, "CONSORT reporting")
	add(f.HasPRISMA, 0.5, "PRISMA reporting")
	add(f.HasRobustnessChecks, 0.5, "robustness checks")
	add(f.HasSensitivityAnalysis, 0.25, "sensitivity analysis")

	return Component{Score: round1(clamp(s, 0, 5)), Notes: notes}
}

// InternalValidity converts threat severities into a 0-5 score.
func InternalValidity(risks []threats.RiskItem) float64 {
	high, medium, _ := threats.CountBySeverity(risks)
	return clamp(5-1.5*float64(high)-0.5*float64(medium), 0, 5)
}

// Overall computes the weighted overall score and its grade.
func Overall(p *profile.Profile, causal, internal, external, measurement, transparency float64) (float64, Grade) {
	w := p.Weights
	total := w.CausalStrength*causal +
		w.InternalValidity*internal +
		w.ExternalValidity*external +
		w.MeasurementQuality*measurement +
		w.Transparency*transparency

	t := p.Thresholds
	switch {
	case total >= t.VeryStrong:
		return total, GradeVeryStrong
	case total >= t.Strong:
		return total, GradeStrong
	case total >= t.Moderate:
		return total, GradeModerate
	case total >= t.Weak:
		return total, GradeWeak
	default:
		return total, GradeVeryWeak
	}
}

// Confidence estimates how much signal the text carried: a proxy for
// information density, not for classification correctness.
func Confidence(f *features.Record) float64 {
	c := 0.3
	c += math.Min(0.3, 0.03*float64(len(f.MatchedKeywords)))
	if _, ok := f.SampleSize(); ok {
		c += 0.1
	}
	if f.HasRandomization || f.HasDiD || f.HasIV || f.HasRDD || f.HasMetaAnalysis {
		c += 0.15
	}
	if f.HasRobustnessChecks {
		c += 0.05
	}
	if f.HasPreRegistration {
		c += 0.05
	}
	if f.HasBalanceTests {
		c += 0.05
	}
	return math.Round(clamp(c, 0, 1)*100) / 100
}

// Five canned guidance strings; Moderate splits on causal strength.
const (
	usePolicyReady = "Suitable to inform policy and practice decisions; the design supports causal interpretation."
	useStrong      = "Credible causal evidence; usable for decisions with attention to the flagged caveats."
	useSupporting  = "Use as supporting evidence; the design is credible but key execution details need verification against the full paper."
	useSuggestive  = "Treat as suggestive or hypothesis-generating; causal identification is limited."
	useNotCausal   = "Not suitable for causal conclusions; at most descriptive context."
)

// RecommendedUse maps the grade (and, for Moderate, the causal-strength
// sub-branch) to guidance text.
func RecommendedUse(g Grade, causalStrength float64) string {
	switch g {
	case GradeVeryStrong:
		return usePolicyReady
	case GradeStrong:
		return useStrong
	case GradeModerate:
		if causalStrength >= 3 {
			return useSupporting
		}
		return useSuggestive
	case GradeWeak:
		return useSuggestive
	default:
		return useNotCausal
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
