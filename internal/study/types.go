// Package study maps an extracted feature record to a discrete study
// type and causal-identification method.
package study

// Type is the discrete study-design label.
type Type string

const (
	TypeRCT              Type = "rct"
	TypeClusterRCT       Type = "cluster_rct"
	TypeQuasiDiD         Type = "quasi_experimental_did"
	TypeQuasiIV          Type = "quasi_experimental_iv"
	TypeQuasiRDD         Type = "quasi_experimental_rdd"
	TypeQuasiMatching    Type = "quasi_experimental_matching"
	TypeQuasiSynthetic   Type = "quasi_experimental_synthetic_control"
	TypeQuasiEventStudy  Type = "quasi_experimental_event_study"
	TypeObsCohort        Type = "observational_cohort"
	TypeObsCaseControl   Type = "observational_case_control"
	TypeObsCrossSection  Type = "observational_cross_sectional"
	TypeQualitative      Type = "qualitative"
	TypeMixedMethods     Type = "mixed_methods"
	TypeModeling         Type = "modeling_simulation"
	TypeSystematicReview Type = "systematic_review"
	TypeMetaAnalysis     Type = "meta_analysis"
	TypeUnknown          Type = "unknown"
)

// Label returns a human-readable name for the study type.
func (t Type) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

var typeLabels = map[Type]string{
	TypeRCT:              "randomized controlled trial",
	TypeClusterRCT:       "cluster-randomized trial",
	TypeQuasiDiD:         "quasi-experimental (difference-in-differences)",
	TypeQuasiIV:          "quasi-experimental (instrumental variables)",
	TypeQuasiRDD:         "quasi-experimental (regression discontinuity)",
	TypeQuasiMatching:    "quasi-experimental (matching)",
	TypeQuasiSynthetic:   "quasi-experimental (synthetic control)",
	TypeQuasiEventStudy:  "quasi-experimental (event study)",
	TypeObsCohort:        "observational cohort",
	TypeObsCaseControl:   "observational case-control",
	TypeObsCrossSection:  "observational cross-sectional",
	TypeQualitative:      "qualitative",
	TypeMixedMethods:     "mixed methods",
	TypeModeling:         "modeling/simulation",
	TypeSystematicReview: "systematic review",
	TypeMetaAnalysis:     "meta-analysis",
	TypeUnknown:          "unknown design",
}

// IsRandomized reports whether the type is an RCT variant.
func (t Type) IsRandomized() bool {
	return t == TypeRCT || t == TypeClusterRCT
}

// IsObservational reports whether the type is one of the observational
// variants.
func (t Type) IsObservational() bool {
	switch t {
	case TypeObsCohort, TypeObsCaseControl, TypeObsCrossSection:
		return true
	}
	return false
}

// IsReview reports whether the type is a systematic review or
// meta-analysis.
func (t Type) IsReview() bool {
	return t == TypeSystematicReview || t == TypeMetaAnalysis
}

// Method is the causal-identification strategy label.
type Method string

const (
	MethodRandomization   Method = "randomization"
	MethodDiD             Method = "difference_in_differences"
	MethodRDD             Method = "regression_discontinuity"
	MethodIV              Method = "instrumental_variables"
	MethodPSM             Method = "propensity_score_matching"
	MethodSynthetic       Method = "synthetic_control"
	MethodEventStudy      Method = "event_study"
	MethodFixedEffects    Method = "fixed_effects"
	MethodSelectionOnObs  Method = "selection_on_observables"
	MethodMetaAnalytic    Method = "meta_analytic"
	MethodNone            Method = "none"
	MethodUnknown         Method = "unknown"
)

// Label returns a human-readable name for the method.
func (m Method) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

var methodLabels = map[Method]string{
	MethodRandomization:  "randomization",
	MethodDiD:            "difference-in-differences",
	MethodRDD:            "regression discontinuity",
	MethodIV:             "instrumental variables",
	MethodPSM:            "propensity score matching",
	MethodSynthetic:      "synthetic control",
	MethodEventStudy:     "event study",
	MethodFixedEffects:   "fixed effects",
	MethodSelectionOnObs: "selection on observables",
	MethodMetaAnalytic:   "meta-analytic pooling",
	MethodNone:           "no causal strategy",
	MethodUnknown:        "unknown strategy",
}
