// Package features turns raw study text into a flat record of design,
// quality, and validity signals. Every signal is detected independently
// with its own pattern; downstream detectors combine them but never
// feed back into extraction.
package features

// Record holds every signal extracted from a single text. All fields are
// derived once per Extract call; a false boolean or nil pointer means the
// pattern did not match, never an error.
type Record struct {
	// Design signals
	HasRandomization        bool `json:"has_randomization"`
	HasClusterRandomization bool `json:"has_cluster_randomization"`
	HasControlGroup         bool `json:"has_control_group"`
	HasPlacebo              bool `json:"has_placebo"`
	HasBlinding             bool `json:"has_blinding"`
	HasDiD                  bool `json:"has_did"`
	HasParallelTrends       bool `json:"has_parallel_trends"`
	HasEventStudy           bool `json:"has_event_study"`
	HasFixedEffects         bool `json:"has_fixed_effects"`
	HasIV                   bool `json:"has_iv"`
	HasRDD                  bool `json:"has_rdd"`
	HasMatchingPSM          bool `json:"has_matching_psm"`
	HasSyntheticControl     bool `json:"has_synthetic_control"`
	HasNaturalExperiment    bool `json:"has_natural_experiment"`
	HasBaseline             bool `json:"has_baseline"`
	HasCaseControl          bool `json:"has_case_control"`

	// Study-genre signals
	HasSystematicReview bool `json:"has_systematic_review"`
	HasMetaAnalysis     bool `json:"has_meta_analysis"`
	HasQualitative      bool `json:"has_qualitative"`
	HasMixedMethods     bool `json:"has_mixed_methods"`
	HasModeling         bool `json:"has_modeling"`

	// Measurement signals
	HasSelfReport           bool `json:"has_self_report"`
	HasAdminData            bool `json:"has_admin_data"`
	HasObjectiveMeasures    bool `json:"has_objective_measures"`
	HasValidatedInstruments bool `json:"has_validated_instruments"`

	// Transparency and robustness signals
	HasPreRegistration     bool `json:"has_pre_registration"`
	HasCONSORT             bool `json:"has_consort"`
	HasPRISMA              bool `json:"has_prisma"`
	HasRobustnessChecks    bool `json:"has_robustness_checks"`
	HasSensitivityAnalysis bool `json:"has_sensitivity_analysis"`
	HasBalanceTests        bool `json:"has_balance_tests"`
	HasDataAvailability    bool `json:"has_data_availability"`
	HasCodeAvailability    bool `json:"has_code_availability"`

	// Validity-discussion signals
	HasAttritionDiscussed bool `json:"has_attrition_discussed"`
	HasExternalValidity   bool `json:"has_external_validity"`
	HasSpilloverDiscussed bool `json:"has_spillover_discussed"`
	HasSelectionDiscussed bool `json:"has_selection_discussed"`

	// SampleSizeNumeric is the first parsed sample-size number, after
	// thousands-separator stripping and thousand/million multipliers.
	// Nil when no sample-size phrasing matched.
	SampleSizeNumeric *int   `json:"sample_size_numeric"`
	SampleSizeText    string `json:"sample_size_text,omitempty"`

	// StudyCountText is the raw "<n> studies/trials" mention, if any.
	StudyCountText string `json:"study_count_text,omitempty"`

	// MatchedKeywords lists the human-readable name of every detector
	// that fired, in detector declaration order. Used only for confidence
	// weighting and transparency, never for decision logic.
	MatchedKeywords []string `json:"matched_keywords"`
}

// SampleSize returns the parsed sample size and whether one was detected.
func (r *Record) SampleSize() (int, bool) {
	if r.SampleSizeNumeric == nil {
		return 0, false
	}
	return *r.SampleSizeNumeric, true
}

// SampleAtLeast reports whether a sample size was detected and is >= n.
func (r *Record) SampleAtLeast(n int) bool {
	v, ok := r.SampleSize()
	return ok && v >= n
}

// SampleBelow reports whether a sample size was detected and is < n.
func (r *Record) SampleBelow(n int) bool {
	v, ok := r.SampleSize()
	return ok && v < n
}
