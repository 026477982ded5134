package score

import (
	"testing"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/profile"
	"github.com/evidencetools/rigor/internal/study"
	"github.com/evidencetools/rigor/internal/threats"
)

func intp(n int) *int { return &n }

func TestExternalValidity(t *testing.T) {
	tests := []struct {
		name string
		rec  features.Record
		typ  study.Type
		want float64
	}{
		{"baseline", features.Record{}, study.TypeRCT, 2.5},
		{"large sample", features.Record{SampleSizeNumeric: intp(50000)}, study.TypeRCT, 3.5},
		{"moderate sample", features.Record{SampleSizeNumeric: intp(1500)}, study.TypeRCT, 3.0},
		{"small sample", features.Record{SampleSizeNumeric: intp(60)}, study.TypeRCT, 2.0},
		{"discussed", features.Record{HasExternalValidity: true}, study.TypeRCT, 3.0},
		{"review bonus", features.Record{}, study.TypeMetaAnalysis, 3.0},
		{"stacked", features.Record{SampleSizeNumeric: intp(50000), HasExternalValidity: true}, study.TypeMetaAnalysis, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExternalValidity(&tt.rec, tt.typ); got.Score != tt.want {
				t.Errorf("score = %.1f, want %.1f", got.Score, tt.want)
			}
		})
	}
}

func TestMeasurementQuality(t *testing.T) {
	tests := []struct {
		name string
		rec  features.Record
		want float64
	}{
		{"baseline", features.Record{}, 2.5},
		{"admin data", features.Record{HasAdminData: true}, 3.5},
		{"self-report only", features.Record{HasSelfReport: true}, 2.0},
		{"self-report plus admin keeps bonus", features.Record{HasSelfReport: true, HasAdminData: true}, 3.5},
		{"everything", features.Record{HasAdminData: true, HasObjectiveMeasures: true, HasValidatedInstruments: true}, 4.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeasurementQuality(&tt.rec); got.Score != tt.want {
				t.Errorf("score = %.1f, want %.1f", got.Score, tt.want)
			}
		})
	}
}

func TestTransparency(t *testing.T) {
	if got := Transparency(&features.Record{}); got.Score != 1.5 {
		t.Errorf("baseline = %.1f, want 1.5", got.Score)
	}

	full := features.Record{
		HasPreRegistration: true, HasDataAvailability: true, HasCodeAvailability: true,
		HasCONSORT: true, HasPRISMA: true, HasRobustnessChecks: true, HasSensitivityAnalysis: true,
	}
	// 1.5 + 4.0 clamps to 5.
	if got := Transparency(&full); got.Score != 5.0 {
		t.Errorf("full disclosure = %.1f, want 5.0", got.Score)
	}
}

func TestInternalValidity(t *testing.T) {
	tests := []struct {
		name  string
		risks []threats.RiskItem
		want  float64
	}{
		{"no risks", nil, 5.0},
		{"one high", []threats.RiskItem{{Severity: threats.SeverityHigh}}, 3.5},
		{"two medium", []threats.RiskItem{{Severity: threats.SeverityMedium}, {Severity: threats.SeverityMedium}}, 4.0},
		{"lows are free", []threats.RiskItem{{Severity: threats.SeverityLow}, {Severity: threats.SeverityLow}}, 5.0},
		{"floor at zero", []threats.RiskItem{
			{Severity: threats.SeverityHigh}, {Severity: threats.SeverityHigh},
			{Severity: threats.SeverityHigh}, {Severity: threats.SeverityHigh},
		}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InternalValidity(tt.risks); got != tt.want {
				t.Errorf("InternalValidity = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestOverall_Thresholds(t *testing.T) {
	p := profile.Default()

	tests := []struct {
		name   string
		scores [5]float64 // causal, internal, external, measurement, transparency
		want   Grade
	}{
		{"all fives", [5]float64{5, 5, 5, 5, 5}, GradeVeryStrong},
		{"all fours", [5]float64{4, 4, 4, 4, 4}, GradeStrong},
		{"all threes", [5]float64{3, 3, 3, 3, 3}, GradeModerate},
		{"all twos", [5]float64{2, 2, 2, 2, 2}, GradeWeak},
		{"all ones", [5]float64{1, 1, 1, 1, 1}, GradeVeryWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, grade := Overall(p, tt.scores[0], tt.scores[1], tt.scores[2], tt.scores[3], tt.scores[4])
			if grade != tt.want {
				t.Errorf("grade = %s (%.2f), want %s", grade, total, tt.want)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	if got := Confidence(&features.Record{}); got != 0.3 {
		t.Errorf("empty-record confidence = %.2f, want 0.30", got)
	}

	rich := features.Record{
		HasRandomization: true, HasRobustnessChecks: true,
		HasPreRegistration: true, HasBalanceTests: true,
		SampleSizeNumeric: intp(1200),
		MatchedKeywords:   []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
	}
	// 0.3 + 0.3 (keyword cap) + 0.1 + 0.15 + 3*0.05 = 1.0
	if got := Confidence(&rich); got != 1.0 {
		t.Errorf("rich-record confidence = %.2f, want 1.00", got)
	}

	for _, rec := range []*features.Record{{}, &rich} {
		c := Confidence(rec)
		if c < 0 || c > 1 {
			t.Errorf("confidence %.2f out of [0,1]", c)
		}
	}
}

func TestRecommendedUse_ModerateSplit(t *testing.T) {
	strong := RecommendedUse(GradeModerate, 3.5)
	weak := RecommendedUse(GradeModerate, 2.0)
	if strong == weak {
		t.Error("Moderate guidance should split on causal strength")
	}
	if weak != RecommendedUse(GradeWeak, 2.0) {
		t.Error("low-causal Moderate shares guidance with Weak")
	}

	for _, g := range []Grade{GradeVeryStrong, GradeStrong, GradeModerate, GradeWeak, GradeVeryWeak} {
		if RecommendedUse(g, 4) == "" {
			t.Errorf("no guidance for grade %s", g)
		}
	}
}
