package features

import (
	"reflect"
	"testing"
)

func TestExtract_DesignSignals(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		check func(*Record) bool
	}{
		{"randomized", "Participants were randomized to treatment.", func(r *Record) bool { return r.HasRandomization }},
		{"randomised british spelling", "A randomised controlled trial of vitamin D.", func(r *Record) bool { return r.HasRandomization }},
		{"rct abbreviation", "We conducted an RCT in 40 schools.", func(r *Record) bool { return r.HasRandomization }},
		{"cluster randomization", "A cluster-randomized trial across 60 villages.", func(r *Record) bool { return r.HasClusterRandomization }},
		{"did", "We use a difference-in-differences design.", func(r *Record) bool { return r.HasDiD }},
		{"did abbreviation", "Our DiD estimates are stable.", func(r *Record) bool { return r.HasDiD }},
		{"parallel trends", "Pre-trends are flat, supporting parallel trends.", func(r *Record) bool { return r.HasParallelTrends }},
		{"iv", "We instrument for schooling with distance to college.", func(r *Record) bool { return r.HasIV }},
		{"2sls", "Estimated by 2SLS with district controls.", func(r *Record) bool { return r.HasIV }},
		{"rdd", "A regression discontinuity design around the eligibility cutoff.", func(r *Record) bool { return r.HasRDD }},
		{"psm", "Propensity score matching on observables.", func(r *Record) bool { return r.HasMatchingPSM }},
		{"synthetic control", "We build a synthetic control from donor states.", func(r *Record) bool { return r.HasSyntheticControl }},
		{"fixed effects", "Models include county and year fixed effects.", func(r *Record) bool { return r.HasFixedEffects }},
		{"prereg isrctn", "The trial was registered (ISRCTN49127293).", func(r *Record) bool { return r.HasPreRegistration }},
		{"prereg nct", "Registered at NCT04231151.", func(r *Record) bool { return r.HasPreRegistration }},
		{"prisma", "We followed PRISMA guidelines.", func(r *Record) bool { return r.HasPRISMA }},
		{"admin data", "Outcomes come from linked administrative records.", func(r *Record) bool { return r.HasAdminData }},
		{"balance", "Baseline balance tests show no differences.", func(r *Record) bool { return r.HasBalanceTests }},
		{"attrition", "Loss to follow-up was below 5%.", func(r *Record) bool { return r.HasAttritionDiscussed }},
		{"external validity", "Results generalize to the national population.", func(r *Record) bool { return r.HasExternalValidity }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract(tt.text)
			if !tt.check(rec) {
				t.Errorf("Extract(%q): expected signal not set", tt.text)
			}
		})
	}
}

func TestExtract_NoSignals(t *testing.T) {
	rec := Extract("The weather yesterday was pleasant and mild throughout the afternoon.")

	if len(rec.MatchedKeywords) != 0 {
		t.Errorf("MatchedKeywords = %v, want empty", rec.MatchedKeywords)
	}
	if rec.SampleSizeNumeric != nil {
		t.Errorf("SampleSizeNumeric = %v, want nil", *rec.SampleSizeNumeric)
	}
}

func TestExtract_SampleSize(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"We enrolled participants with N = 1,200 across sites.", 1200},
		{"n=350 patients completed the protocol.", 350},
		{"A sample of 2,400 respondents was surveyed.", 2400},
		{"Covering 3.5 million adults in the registry.", 3500000},
		{"The panel includes 850,000 workers.", 850000},
		{"We surveyed 12k participants online.", 12000},
		{"N = 4 thousand enrollees were tracked.", 4000},
		{"Data on 96 households were collected.", 96},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rec := Extract(tt.text)
			got, ok := rec.SampleSize()
			if !ok {
				t.Fatalf("Extract(%q): no sample size detected", tt.text)
			}
			if got != tt.want {
				t.Errorf("sample size = %d, want %d", got, tt.want)
			}
			if rec.SampleSizeText == "" {
				t.Error("SampleSizeText is empty")
			}
		})
	}
}

func TestExtract_SampleSizeRejectsBareDecimals(t *testing.T) {
	// A decimal without a multiplier word must not be read as a count.
	texts := []string{
		"The mean effect was n = 2.5 in treated clinics overall.",
	}
	for _, text := range texts {
		rec := Extract(text)
		if n, ok := rec.SampleSize(); ok {
			t.Errorf("Extract(%q): sample size = %d, want none", text, n)
		}
	}
}

func TestExtract_SampleSizeIgnoresYears(t *testing.T) {
	rec := Extract("Enrollment began in 2008 and the policy changed in 2014.")
	if n, ok := rec.SampleSize(); ok {
		t.Errorf("sample size = %d, want none (years are not counts)", n)
	}
}

// The composite pattern's alternatives keep their source order; the
// first non-empty numeric group wins even when later alternatives would
// also match. "N =" phrasing must beat the bare plural-noun phrasing.
func TestSampleSizeGroupPrecedence(t *testing.T) {
	rec := Extract("With N = 500, we surveyed 9,000 households about income.")
	got, ok := rec.SampleSize()
	if !ok {
		t.Fatal("no sample size detected")
	}
	if got != 500 {
		t.Errorf("sample size = %d, want 500 (N= group takes precedence)", got)
	}
}

func TestExtract_StudyCount(t *testing.T) {
	rec := Extract("This meta-analysis pools 42 studies published since 2000.")
	if rec.StudyCountText != "42 studies" {
		t.Errorf("StudyCountText = %q, want %q", rec.StudyCountText, "42 studies")
	}
}

func TestExtract_MatchedKeywordOrder(t *testing.T) {
	// Keywords appear in detector declaration order, not text order.
	text := "Balance tests passed after participants were randomized to placebo."
	rec := Extract(text)

	want := []string{"randomization", "placebo", "balance tests"}
	if !reflect.DeepEqual(rec.MatchedKeywords, want) {
		t.Errorf("MatchedKeywords = %v, want %v", rec.MatchedKeywords, want)
	}
}

func TestExtract_BooleanSetOnce(t *testing.T) {
	rec := Extract("Randomized, randomized, and randomized again: a randomization story.")
	count := 0
	for _, k := range rec.MatchedKeywords {
		if k == "randomization" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("randomization keyword recorded %d times, want 1", count)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	text := "A randomized trial with N = 1,200 participants, pre-registered, with balance tests."
	a := Extract(text)
	b := Extract(text)
	if !reflect.DeepEqual(a, b) {
		t.Error("Extract is not deterministic for identical input")
	}
}
