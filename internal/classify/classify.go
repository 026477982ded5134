// Package classify runs the full classification pipeline: feature
// extraction, design detection, strength scoring, threat identification,
// and aggregation into a single immutable result.
package classify

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/profile"
	"github.com/evidencetools/rigor/internal/score"
	"github.com/evidencetools/rigor/internal/strength"
	"github.com/evidencetools/rigor/internal/study"
	"github.com/evidencetools/rigor/internal/threats"
)

// Result is the complete classification of one study text. Constructed
// once per Classify call and never mutated.
type Result struct {
	StudyType               study.Type         `json:"study_type"`
	CausalMethod            study.Method       `json:"causal_method"`
	CausalMethodIndicators  []string           `json:"causal_method_indicators"`
	CausalStrength          float64            `json:"causal_strength"`
	CausalJustification     string             `json:"causal_strength_justification"`
	Risks                   []threats.RiskItem `json:"risks"`
	InternalValidity        float64            `json:"internal_validity"`
	ExternalValidity        float64            `json:"external_validity"`
	ExternalValidityNotes   []string           `json:"external_validity_notes"`
	MeasurementQuality      float64            `json:"measurement_quality"`
	MeasurementSignals      []string           `json:"measurement_signals"`
	Transparency            float64            `json:"transparency_reproducibility"`
	TransparencySignals     []string           `json:"transparency_signals"`
	SampleSizeInfo          string             `json:"sample_size_info"`
	OverallGrade            score.Grade        `json:"overall_evidence_grade"`
	OverallScore            float64            `json:"overall_score"`
	Confidence              float64            `json:"confidence"`
	RecommendedUse          string             `json:"recommended_use"`
	FollowupQuestions       []string           `json:"followup_questions"`
	Disclaimer              string             `json:"disclaimer"`
	MatchedKeywords         []string           `json:"matched_keywords"`
}

// Classify runs the pipeline under the default profile.
func Classify(text string) *Result {
	return ClassifyWithProfile(text, profile.Default())
}

// ClassifyWithProfile runs the pipeline with explicit scoring
// configuration. Pure: identical inputs always produce an identical
// result, and no state survives the call.
func ClassifyWithProfile(text string, p *profile.Profile) *Result {
	f := features.Extract(text)

	st := study.DetectType(f)
	method := study.DetectMethod(f, st)
	assessment := strength.Assess(method, f)
	risks := threats.Identify(st, method, f)

	external := score.ExternalValidity(f, st)
	measurement := score.MeasurementQuality(f)
	transparency := score.Transparency(f)
	internal := score.InternalValidity(risks)

	overall, grade := score.Overall(p, assessment.Score, internal,
		external.Score, measurement.Score, transparency.Score)

	return &Result{
		StudyType:              st,
		CausalMethod:           method,
		CausalMethodIndicators: study.MethodIndicators(f),
		CausalStrength:         assessment.Score,
		CausalJustification:    assessment.Justification,
		Risks:                  risks,
		InternalValidity:       round1(internal),
		ExternalValidity:       external.Score,
		ExternalValidityNotes:  external.Notes,
		MeasurementQuality:     measurement.Score,
		MeasurementSignals:     measurement.Notes,
		Transparency:           transparency.Score,
		TransparencySignals:    transparency.Notes,
		SampleSizeInfo:         sampleSizeInfo(f),
		OverallGrade:           grade,
		OverallScore:           round1(overall),
		Confidence:             score.Confidence(f),
		RecommendedUse:         score.RecommendedUse(grade, assessment.Score),
		FollowupQuestions:      threats.Questions(st, method, f, risks),
		Disclaimer:             p.Disclaimer,
		MatchedKeywords:        f.MatchedKeywords,
	}
}

// ExtractFeatures exposes raw feature extraction for debugging and
// tooling; classification itself goes through Classify.
func ExtractFeatures(text string) *features.Record {
	return features.Extract(text)
}

func sampleSizeInfo(f *features.Record) string {
	var parts []string
	if n, ok := f.SampleSize(); ok {
		parts = append(parts, fmt.Sprintf("Detected sample size: %s (from %q)", groupDigits(n), f.SampleSizeText))
	}
	if f.StudyCountText != "" {
		parts = append(parts, fmt.Sprintf("Review scope: %s", f.StudyCountText))
	}
	if len(parts) == 0 {
		return "No sample size detected in the text."
	}
	return strings.Join(parts, " ")
}

// groupDigits renders n with thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
