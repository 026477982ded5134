package study

import (
	"testing"

	"github.com/evidencetools/rigor/internal/features"
)

// The rule table's ordering is a behavioral contract: silently
// reordering it silently changes classifications. Pin it.
func TestRuleTableOrder(t *testing.T) {
	want := []Type{
		TypeMetaAnalysis,
		TypeSystematicReview,
		TypeClusterRCT,
		TypeRCT,
		TypeQuasiSynthetic,
		TypeQuasiRDD,
		TypeQuasiIV,
		TypeQuasiEventStudy,
		TypeQuasiDiD,
		TypeQuasiMatching,
		TypeMixedMethods,
		TypeQualitative,
		TypeModeling,
		TypeObsCaseControl,
		TypeObsCohort,
		TypeObsCrossSection,
	}

	rules := Rules()
	if len(rules) != len(want) {
		t.Fatalf("rule count = %d, want %d", len(rules), len(want))
	}
	for i, rule := range rules {
		if rule.Type != want[i] {
			t.Errorf("rule[%d] = %s, want %s", i, rule.Type, want[i])
		}
		if i > 0 && rules[i-1].Priority <= rule.Priority {
			t.Errorf("rule[%d] priority %d does not descend from %d", i, rule.Priority, rules[i-1].Priority)
		}
	}
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		rec  features.Record
		want Type
	}{
		{
			"plain rct",
			features.Record{HasRandomization: true, HasControlGroup: true},
			TypeRCT,
		},
		{
			"cluster rct",
			features.Record{HasRandomization: true, HasClusterRandomization: true},
			TypeClusterRCT,
		},
		{
			// Randomization language plus an instrument is classified
			// under the quasi-experimental method, not as an RCT.
			"randomization plus iv goes to iv",
			features.Record{HasRandomization: true, HasIV: true},
			TypeQuasiIV,
		},
		{
			"randomization plus rdd goes to rdd",
			features.Record{HasRandomization: true, HasRDD: true},
			TypeQuasiRDD,
		},
		{
			"meta-analysis beats everything",
			features.Record{HasMetaAnalysis: true, HasRandomization: true, HasIV: true},
			TypeMetaAnalysis,
		},
		{
			"systematic review without meta-analysis",
			features.Record{HasSystematicReview: true},
			TypeSystematicReview,
		},
		{
			"event study without did",
			features.Record{HasEventStudy: true},
			TypeQuasiEventStudy,
		},
		{
			"event study with did collapses to did",
			features.Record{HasEventStudy: true, HasDiD: true},
			TypeQuasiDiD,
		},
		{
			"fixed effects with parallel trends is did",
			features.Record{HasFixedEffects: true, HasParallelTrends: true},
			TypeQuasiDiD,
		},
		{
			"matching without randomization",
			features.Record{HasMatchingPSM: true},
			TypeQuasiMatching,
		},
		{
			"matching with randomization is rct",
			features.Record{HasMatchingPSM: true, HasRandomization: true},
			TypeRCT,
		},
		{
			"cohort from baseline",
			features.Record{HasBaseline: true},
			TypeObsCohort,
		},
		{
			"case-control",
			features.Record{HasCaseControl: true},
			TypeObsCaseControl,
		},
		{
			"cross-sectional from self-report",
			features.Record{HasSelfReport: true},
			TypeObsCrossSection,
		},
		{
			"nothing matches",
			features.Record{},
			TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(&tt.rec); got != tt.want {
				t.Errorf("DetectType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectType_CrossSectionalFromSampleSize(t *testing.T) {
	n := 500
	rec := features.Record{SampleSizeNumeric: &n}
	if got := DetectType(&rec); got != TypeObsCrossSection {
		t.Errorf("DetectType() = %s, want %s", got, TypeObsCrossSection)
	}
}
