package threats

import (
	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

func always(sev Severity) func(*features.Record, study.Type) (Severity, bool) {
	return func(*features.Record, study.Type) (Severity, bool) { return sev, true }
}

// catalogue is the ordered threat table. Order matters: it is the stable
// tie-break within a severity tier of the emitted risk list.
var catalogue = []Definition{
	{
		Name:           "Selection bias",
		ExcludeMethods: []study.Method{study.MethodRandomization},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if t.IsRandomized() {
				return "", false
			}
			switch {
			case f.HasMatchingPSM && f.HasBalanceTests:
				return SeverityLow, true
			case f.HasMatchingPSM || f.HasSelectionDiscussed:
				return SeverityMedium, true
			default:
				return SeverityHigh, true
			}
		},
		Reasoning: func(f *features.Record) string {
			switch {
			case f.HasMatchingPSM && f.HasBalanceTests:
				return "Treatment is not randomly assigned, but matching with verified balance reduces observable selection."
			case f.HasMatchingPSM:
				return "Matching addresses observable selection, but balance after matching is not demonstrated."
			case f.HasSelectionDiscussed:
				return "Selection into treatment is acknowledged but not resolved by the design."
			default:
				return "Units select into treatment and nothing in the text indicates how selection is handled."
			}
		},
	},
	{
		Name:      "Attrition bias",
		AppliesTo: []study.Type{study.TypeRCT, study.TypeClusterRCT, study.TypeObsCohort},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasAttritionDiscussed && f.HasSensitivityAnalysis {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasAttritionDiscussed && f.HasSensitivityAnalysis {
				return "Attrition is reported and its impact bounded by sensitivity analysis."
			}
			if f.HasAttritionDiscussed {
				return "Attrition is mentioned, but no sensitivity analysis bounds differential dropout."
			}
			return "Follow-up designs lose participants; the text does not report attrition or dropout."
		},
	},
	{
		Name:      "Parallel trends violation",
		AppliesTo: []study.Type{study.TypeQuasiDiD, study.TypeQuasiEventStudy},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasParallelTrends {
				return SeverityLow, true
			}
			return SeverityHigh, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasParallelTrends {
				return "Pre-treatment trends are examined, supporting the identifying assumption."
			}
			return "The design rests on parallel trends, and the text offers no pre-trend evidence."
		},
	},
	{
		Name:      "Weak instruments",
		AppliesTo: []study.Type{study.TypeQuasiIV},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasRobustnessChecks {
				return SeverityMedium, true
			}
			return SeverityHigh, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasRobustnessChecks {
				return "Robustness checks are reported, but first-stage strength is not explicitly documented."
			}
			return "Nothing in the text indicates the instrument's first-stage strength."
		},
	},
	{
		Name:      "Exclusion restriction violation",
		AppliesTo: []study.Type{study.TypeQuasiIV},
		Severity:  always(SeverityMedium),
		Reasoning: func(f *features.Record) string {
			return "The exclusion restriction is inherently untestable; the instrument may affect outcomes through other channels."
		},
	},
	{
		Name:      "Running-variable manipulation",
		AppliesTo: []study.Type{study.TypeQuasiRDD},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasSensitivityAnalysis || f.HasRobustnessChecks {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasSensitivityAnalysis || f.HasRobustnessChecks {
				return "Sensitivity or robustness checks reduce concern about sorting around the cutoff."
			}
			return "Units may sort around the cutoff; no manipulation or density test is reported."
		},
	},
	{
		Name:      "Spillover/SUTVA violation",
		AppliesTo: []study.Type{study.TypeRCT, study.TypeClusterRCT, study.TypeQuasiDiD},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasSpilloverDiscussed {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasSpilloverDiscussed {
				return "Spillovers between units are considered in the analysis."
			}
			return "Treatment effects may spill over to comparison units; the text does not address interference."
		},
	},
	{
		Name: "Measurement error",
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasObjectiveMeasures || f.HasAdminData || f.HasValidatedInstruments {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasObjectiveMeasures || f.HasAdminData || f.HasValidatedInstruments {
				return "Outcomes rely on objective, administrative, or validated measures."
			}
			return "Outcome measurement quality is unclear; no objective or validated measures are mentioned."
		},
	},
	{
		Name: "Multiple hypothesis testing",
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasPreRegistration {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasPreRegistration {
				return "Pre-registration constrains the space of tested hypotheses."
			}
			return "Without pre-registration, reported effects may reflect selective testing across many outcomes."
		},
	},
	{
		Name:      "Publication bias",
		AppliesTo: []study.Type{study.TypeSystematicReview, study.TypeMetaAnalysis},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasSensitivityAnalysis {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasSensitivityAnalysis {
				return "Sensitivity analysis probes the influence of unpublished or outlying studies."
			}
			return "Pooled estimates may overstate effects if null results went unpublished; no bias assessment is reported."
		},
	},
	{
		Name: "Limited generalizability",
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasExternalValidity || f.SampleAtLeast(10001) {
				return SeverityLow, true
			}
			return SeverityMedium, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasExternalValidity {
				return "External validity is explicitly discussed."
			}
			if f.SampleAtLeast(10001) {
				return "A very large sample mitigates, though does not guarantee, generalizability."
			}
			return "The text gives no indication of how findings transfer beyond the studied sample."
		},
	},
	{
		Name: "Unobserved confounding",
		AppliesTo: []study.Type{
			study.TypeObsCohort, study.TypeObsCaseControl,
			study.TypeObsCrossSection, study.TypeQuasiMatching,
		},
		Severity: func(f *features.Record, t study.Type) (Severity, bool) {
			if f.HasSensitivityAnalysis {
				return SeverityMedium, true
			}
			return SeverityHigh, true
		},
		Reasoning: func(f *features.Record) string {
			if f.HasSensitivityAnalysis {
				return "Sensitivity analysis bounds how strong an unobserved confounder would need to be."
			}
			return "The design cannot rule out unmeasured confounders driving the association."
		},
	},
}

// Catalogue exposes the ordered threat definitions for tests that pin
// the declaration order.
func Catalogue() []Definition {
	return catalogue
}
