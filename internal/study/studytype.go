package study

import (
	"sort"

	"github.com/evidencetools/rigor/internal/features"
)

// TypeRule is one entry in the prioritized study-type table. Rules are
// evaluated in descending Priority order and the first matching
// predicate wins, so predicates encode mutual exclusivity explicitly
// rather than relying on specificity.
type TypeRule struct {
	Type      Type
	Priority  int
	Predicate func(*features.Record) bool
}

// hasQuasiMarkers reports whether the text carries any quasi-experimental
// identification language. The RCT rules exclude these so that a study
// mentioning both randomization and, say, an instrument is classified
// under the quasi-experimental method.
func hasQuasiMarkers(f *features.Record) bool {
	return f.HasIV || f.HasRDD || f.HasDiD || f.HasSyntheticControl
}

// typeRules is the ordered catalogue. Reviews and randomized designs have
// strong, nearly unambiguous lexical signals and sit at the top; weaker
// overlapping signals (fixed effects, matching, bare observational
// markers) sit at the bottom to avoid false positives.
var typeRules = []TypeRule{
	{TypeMetaAnalysis, 100, func(f *features.Record) bool {
		return f.HasMetaAnalysis
	}},
	{TypeSystematicReview, 95, func(f *features.Record) bool {
		return f.HasSystematicReview && !f.HasMetaAnalysis
	}},
	{TypeClusterRCT, 90, func(f *features.Record) bool {
		return f.HasClusterRandomization && !hasQuasiMarkers(f)
	}},
	{TypeRCT, 85, func(f *features.Record) bool {
		return f.HasRandomization && !hasQuasiMarkers(f)
	}},
	{TypeQuasiSynthetic, 80, func(f *features.Record) bool {
		return f.HasSyntheticControl
	}},
	{TypeQuasiRDD, 75, func(f *features.Record) bool {
		return f.HasRDD
	}},
	{TypeQuasiIV, 70, func(f *features.Record) bool {
		return f.HasIV
	}},
	{TypeQuasiEventStudy, 65, func(f *features.Record) bool {
		return f.HasEventStudy && !f.HasDiD
	}},
	{TypeQuasiDiD, 60, func(f *features.Record) bool {
		return f.HasDiD || (f.HasFixedEffects && f.HasParallelTrends)
	}},
	{TypeQuasiMatching, 55, func(f *features.Record) bool {
		return f.HasMatchingPSM && !f.HasRandomization
	}},
	{TypeMixedMethods, 50, func(f *features.Record) bool {
		return f.HasMixedMethods
	}},
	{TypeQualitative, 48, func(f *features.Record) bool {
		return f.HasQualitative && !f.HasRandomization
	}},
	{TypeModeling, 46, func(f *features.Record) bool {
		return f.HasModeling
	}},
	{TypeObsCaseControl, 44, func(f *features.Record) bool {
		return f.HasCaseControl && !f.HasRandomization
	}},
	{TypeObsCohort, 40, func(f *features.Record) bool {
		return f.HasBaseline && !f.HasRandomization && !hasQuasiMarkers(f) && !f.HasMatchingPSM
	}},
	{TypeObsCrossSection, 35, func(f *features.Record) bool {
		if f.HasBaseline || f.HasRandomization || hasQuasiMarkers(f) {
			return false
		}
		_, hasN := f.SampleSize()
		return hasN || f.HasSelfReport
	}},
}

func init() {
	// First-match-wins over a priority-ordered table; keep the slice
	// sorted even if an entry is added out of order.
	sort.SliceStable(typeRules, func(i, j int) bool {
		return typeRules[i].Priority > typeRules[j].Priority
	})
}

// Rules exposes the ordered rule table for tests that pin the priority
// ordering.
func Rules() []TypeRule {
	return typeRules
}

// DetectType maps a feature record to exactly one study type. Total:
// falls back to TypeUnknown when no rule matches.
func DetectType(f *features.Record) Type {
	for _, rule := range typeRules {
		if rule.Predicate(f) {
			return rule.Type
		}
	}
	return TypeUnknown
}
