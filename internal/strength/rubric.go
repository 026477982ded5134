// Package strength scores the causal identification of a study against
// a per-method rubric: a baseline plus conditional modifiers, all data.
package strength

import (
	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

// Modifier is a conditional adjustment to a method's baseline score.
// Delta is signed; Description is recorded in the justification when the
// condition holds.
type Modifier struct {
	Condition   func(*features.Record) bool
	Delta       float64
	Description string
}

// Rubric holds the scoring data for one causal method.
type Rubric struct {
	Baseline  float64
	Modifiers []Modifier
	// Required lists the conditions strong evidence under this method
	// depends on; always appended to the justification.
	Required []string
}

func has(get func(*features.Record) bool) func(*features.Record) bool { return get }

var rubrics = map[study.Method]Rubric{
	study.MethodRandomization: {
		Baseline: 4.5,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasPlacebo }), 0.2, "placebo or sham control"},
			{has(func(f *features.Record) bool { return f.HasBlinding }), 0.2, "blinded assessment"},
			{has(func(f *features.Record) bool { return f.HasPreRegistration }), 0.3, "pre-registered protocol"},
			{has(func(f *features.Record) bool { return f.HasBalanceTests }), 0.2, "covariate balance verified"},
			{has(func(f *features.Record) bool { return f.HasAttritionDiscussed }), 0.1, "attrition addressed"},
			{has(func(f *features.Record) bool { return !f.HasControlGroup }), -0.2, "no explicit control group described"},
			{has(func(f *features.Record) bool { return f.SampleBelow(100) }), -0.5, "very small sample (< 100)"},
		},
		Required: []string{"intact randomization", "low differential attrition", "pre-specified outcomes"},
	},
	study.MethodDiD: {
		Baseline: 3.5,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasParallelTrends }), 0.5, "parallel trends assessed"},
			{has(func(f *features.Record) bool { return f.HasEventStudy }), 0.3, "event-study dynamics shown"},
			{has(func(f *features.Record) bool { return f.HasFixedEffects }), 0.2, "unit and time fixed effects"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
			{has(func(f *features.Record) bool { return !f.HasParallelTrends }), -0.5, "parallel trends not discussed"},
			{has(func(f *features.Record) bool { return f.SampleBelow(100) }), -0.3, "very small sample (< 100)"},
		},
		Required: []string{"credible parallel pre-trends", "no concurrent shocks to treated units"},
	},
	study.MethodRDD: {
		Baseline: 3.8,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.3, "bandwidth/sensitivity analysis"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
			{has(func(f *features.Record) bool { return f.SampleBelow(100) }), -0.5, "too few observations near the cutoff"},
		},
		Required: []string{"no manipulation of the running variable", "effects local to the cutoff acknowledged"},
	},
	study.MethodIV: {
		Baseline: 3.0,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasNaturalExperiment }), 0.3, "plausibly exogenous instrument source"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.3, "instrument strength/robustness reported"},
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.2, "sensitivity analysis"},
			{has(func(f *features.Record) bool { return f.HasPreRegistration }), 0.2, "pre-registered analysis"},
			{has(func(f *features.Record) bool { return f.SampleBelow(100) }), -0.3, "very small sample (< 100)"},
		},
		Required: []string{"strong first stage", "defensible exclusion restriction"},
	},
	study.MethodPSM: {
		Baseline: 2.5,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasBalanceTests }), 0.3, "post-matching balance verified"},
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.3, "sensitivity to hidden bias assessed"},
			{has(func(f *features.Record) bool { return f.HasAdminData }), 0.2, "rich administrative covariates"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
		},
		Required: []string{"all confounders observable and matched on", "common support across groups"},
	},
	study.MethodSynthetic: {
		Baseline: 3.3,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.3, "placebo-in-space/time checks"},
			{has(func(f *features.Record) bool { return f.HasParallelTrends }), 0.2, "good pre-period fit shown"},
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.2, "donor-pool sensitivity assessed"},
		},
		Required: []string{"close pre-treatment fit", "credible donor pool"},
	},
	study.MethodEventStudy: {
		Baseline: 3.2,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasParallelTrends }), 0.3, "flat pre-event coefficients"},
			{has(func(f *features.Record) bool { return f.HasFixedEffects }), 0.2, "unit and time fixed effects"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
		},
		Required: []string{"no anticipation of the event", "flat pre-event trends"},
	},
	study.MethodFixedEffects: {
		Baseline: 2.5,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasBaseline }), 0.3, "panel structure with baseline"},
			{has(func(f *features.Record) bool { return f.HasAdminData }), 0.2, "administrative panel data"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
		},
		Required: []string{"no time-varying confounding", "within-unit variation in treatment"},
	},
	study.MethodSelectionOnObs: {
		Baseline: 1.8,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.3, "sensitivity to unobservables assessed"},
			{has(func(f *features.Record) bool { return f.HasAdminData }), 0.2, "administrative data linkage"},
			{has(func(f *features.Record) bool { return f.HasRobustnessChecks }), 0.2, "robustness checks reported"},
			{has(func(f *features.Record) bool { return f.SampleAtLeast(10000) }), 0.2, "large sample"},
			{has(func(f *features.Record) bool {
				return f.HasSelfReport && !f.HasAdminData && !f.HasObjectiveMeasures
			}), -0.2, "self-reported measures only"},
		},
		Required: []string{"all relevant confounders measured", "treatment effectively random conditional on controls"},
	},
	study.MethodMetaAnalytic: {
		Baseline: 3.5,
		Modifiers: []Modifier{
			{has(func(f *features.Record) bool { return f.HasPRISMA }), 0.3, "PRISMA-compliant reporting"},
			{has(func(f *features.Record) bool { return f.HasPreRegistration }), 0.3, "registered review protocol"},
			{has(func(f *features.Record) bool { return f.HasSensitivityAnalysis }), 0.2, "publication-bias/sensitivity analysis"},
			{has(func(f *features.Record) bool { return f.StudyCountText != "" }), 0.2, "included-study count reported"},
		},
		Required: []string{"comprehensive search", "included studies themselves well identified"},
	},
	// Floor for unidentifiable strategies.
	study.MethodNone:    {Baseline: 1.0},
	study.MethodUnknown: {Baseline: 1.0},
}

// RubricFor returns the rubric for a method, falling back to the
// unknown-method floor.
func RubricFor(m study.Method) Rubric {
	if r, ok := rubrics[m]; ok {
		return r
	}
	return rubrics[study.MethodUnknown]
}
