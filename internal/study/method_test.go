package study

import (
	"reflect"
	"testing"

	"github.com/evidencetools/rigor/internal/features"
)

func TestDetectMethod_TableLookup(t *testing.T) {
	tests := []struct {
		typ  Type
		want Method
	}{
		{TypeRCT, MethodRandomization},
		{TypeClusterRCT, MethodRandomization},
		{TypeQuasiDiD, MethodDiD},
		{TypeQuasiIV, MethodIV},
		{TypeQuasiRDD, MethodRDD},
		{TypeQuasiMatching, MethodPSM},
		{TypeQuasiSynthetic, MethodSynthetic},
		{TypeQuasiEventStudy, MethodEventStudy},
		{TypeSystematicReview, MethodMetaAnalytic},
		{TypeMetaAnalysis, MethodMetaAnalytic},
		{TypeQualitative, MethodNone},
		{TypeModeling, MethodNone},
	}

	for _, tt := range tests {
		if got := DetectMethod(&features.Record{}, tt.typ); got != tt.want {
			t.Errorf("DetectMethod(%s) = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestDetectMethod_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		rec  features.Record
		typ  Type
		want Method
	}{
		{"fixed effects first", features.Record{HasFixedEffects: true, HasMatchingPSM: true}, TypeObsCohort, MethodFixedEffects},
		{"then matching", features.Record{HasMatchingPSM: true}, TypeUnknown, MethodPSM},
		{"observational default", features.Record{}, TypeObsCohort, MethodSelectionOnObs},
		{"cross-sectional default", features.Record{}, TypeObsCrossSection, MethodSelectionOnObs},
		{"unknown default", features.Record{}, TypeUnknown, MethodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMethod(&tt.rec, tt.typ); got != tt.want {
				t.Errorf("DetectMethod() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMethodIndicators_FixedOrder(t *testing.T) {
	rec := features.Record{
		HasIV:            true,
		HasRandomization: true,
		HasFixedEffects:  true,
	}

	want := []string{"random assignment", "fixed effects", "instrumental variables"}
	if got := MethodIndicators(&rec); !reflect.DeepEqual(got, want) {
		t.Errorf("MethodIndicators() = %v, want %v", got, want)
	}
}

func TestMethodIndicators_IndependentOfType(t *testing.T) {
	// Indicators report detected signals regardless of the winning type.
	rec := features.Record{HasRandomization: true, HasIV: true}
	got := MethodIndicators(&rec)
	if len(got) != 2 {
		t.Fatalf("indicator count = %d, want 2 (%v)", len(got), got)
	}
}
