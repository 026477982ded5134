package study

import "github.com/evidencetools/rigor/internal/features"

// methodByType is the primary lookup: study types with an unambiguous
// identification strategy map directly to it.
var methodByType = map[Type]Method{
	TypeRCT:              MethodRandomization,
	TypeClusterRCT:       MethodRandomization,
	TypeQuasiDiD:         MethodDiD,
	TypeQuasiRDD:         MethodRDD,
	TypeQuasiIV:          MethodIV,
	TypeQuasiMatching:    MethodPSM,
	TypeQuasiSynthetic:   MethodSynthetic,
	TypeQuasiEventStudy:  MethodEventStudy,
	TypeSystematicReview: MethodMetaAnalytic,
	TypeMetaAnalysis:     MethodMetaAnalytic,
	TypeQualitative:      MethodNone,
	TypeMixedMethods:     MethodNone,
	TypeModeling:         MethodNone,
}

// DetectMethod maps (features, study type) to one causal method. Types
// without a table entry fall back to feature checks: fixed effects, then
// matching, then selection-on-observables for observational designs.
func DetectMethod(f *features.Record, t Type) Method {
	if m, ok := methodByType[t]; ok {
		return m
	}
	if f.HasFixedEffects {
		return MethodFixedEffects
	}
	if f.HasMatchingPSM {
		return MethodPSM
	}
	if t.IsObservational() {
		return MethodSelectionOnObs
	}
	return MethodUnknown
}

// methodIndicators is a fixed enumeration of method-relevant signals,
// reported independently of the detected study type.
var methodIndicators = []struct {
	label   string
	present func(*features.Record) bool
}{
	{"random assignment", func(f *features.Record) bool { return f.HasRandomization }},
	{"cluster-level randomization", func(f *features.Record) bool { return f.HasClusterRandomization }},
	{"difference-in-differences", func(f *features.Record) bool { return f.HasDiD }},
	{"parallel-trends evidence", func(f *features.Record) bool { return f.HasParallelTrends }},
	{"event-study design", func(f *features.Record) bool { return f.HasEventStudy }},
	{"fixed effects", func(f *features.Record) bool { return f.HasFixedEffects }},
	{"instrumental variables", func(f *features.Record) bool { return f.HasIV }},
	{"regression discontinuity", func(f *features.Record) bool { return f.HasRDD }},
	{"matching/propensity scores", func(f *features.Record) bool { return f.HasMatchingPSM }},
	{"synthetic control", func(f *features.Record) bool { return f.HasSyntheticControl }},
	{"natural experiment", func(f *features.Record) bool { return f.HasNaturalExperiment }},
	{"meta-analytic pooling", func(f *features.Record) bool { return f.HasMetaAnalysis }},
}

// MethodIndicators returns human-readable labels for every detected
// method-relevant signal, in fixed enumeration order.
func MethodIndicators(f *features.Record) []string {
	var out []string
	for _, ind := range methodIndicators {
		if ind.present(f) {
			out = append(out, ind.label)
		}
	}
	return out
}
