package features

import "regexp"

// detector binds a human-readable name to a pattern and the record field
// it sets. Detectors are evaluated independently; declaration order here
// is the order names appear in Record.MatchedKeywords.
type detector struct {
	name    string
	pattern *regexp.Regexp
	set     func(*Record)
}

var detectors = []detector{
	{
		"randomization",
		regexp.MustCompile(`(?i)\brandomi[sz]ed|\brandomi[sz]ation|\brandomly\s+(?:assigned|allocated|selected\s+into)|\bRCT\b|\brandom\s+assignment`),
		func(r *Record) { r.HasRandomization = true },
	},
	{
		"cluster randomization",
		regexp.MustCompile(`(?i)\bcluster[\s-]+randomi[sz]|\bcluster\s+RCT\b|\brandomi[sz]ed\s+at\s+the\s+(?:school|village|clinic|community|cluster)\s+level`),
		func(r *Record) { r.HasClusterRandomization = true },
	},
	{
		"control group",
		regexp.MustCompile(`(?i)\bcontrol\s+(?:group|arm|condition|village|school)s?\b|\bcomparison\s+group\b|\buntreated\s+group\b`),
		func(r *Record) { r.HasControlGroup = true },
	},
	{
		"placebo",
		regexp.MustCompile(`(?i)\bplacebo\b|\bsham\s+(?:treatment|procedure|intervention)`),
		func(r *Record) { r.HasPlacebo = true },
	},
	{
		"blinding",
		regexp.MustCompile(`(?i)\b(?:single|double|triple)[\s-]blind|\bblinded\b|\bmasked\s+(?:assessors?|outcome)`),
		func(r *Record) { r.HasBlinding = true },
	},
	{
		"difference-in-differences",
		// The DiD abbreviation stays case-sensitive: a case-insensitive
		// \bDiD\b would match the plain English word "did".
		regexp.MustCompile(`(?i:difference[\s-]in[\s-]difference|\bdiff[\s-]in[\s-]diff\b)|\bDiD\b|\bDD\s+(?:design|estimat)`),
		func(r *Record) { r.HasDiD = true },
	},
	{
		"parallel trends",
		regexp.MustCompile(`(?i)parallel\s+trends?|common\s+trends?\s+assumption|pre[\s-]trends?\b|pre[\s-]treatment\s+trends?`),
		func(r *Record) { r.HasParallelTrends = true },
	},
	{
		"event study",
		regexp.MustCompile(`(?i)\bevent[\s-]stud(?:y|ies)\b`),
		func(r *Record) { r.HasEventStudy = true },
	},
	{
		"fixed effects",
		regexp.MustCompile(`(?i)\bfixed[\s-]effects?\b|\bwithin[\s-]estimator\b|\btwo[\s-]way\s+fixed\s+effects?\b|\bTWFE\b`),
		func(r *Record) { r.HasFixedEffects = true },
	},
	{
		"instrumental variables",
		regexp.MustCompile(`(?i)instrumental[\s-]variables?|\binstrument(?:ed|s)?\s+(?:for|with|by)\b|\b2SLS\b|\btwo[\s-]stage\s+least\s+squares\b|\bexogenous\s+(?:variation|instrument)`),
		func(r *Record) { r.HasIV = true },
	},
	{
		"regression discontinuity",
		regexp.MustCompile(`(?i)regression[\s-]discontinuit|\bRDD?\s+design\b|\bRDD\b|\brunning\s+variable\b|\bdiscontinuity\s+(?:design|at\s+the\s+cutoff)`),
		func(r *Record) { r.HasRDD = true },
	},
	{
		"matching/propensity score",
		regexp.MustCompile(`(?i)propensity[\s-]score|\bPSM\b|\bmatched\s+(?:sample|pairs?|cohort|on\s+observ)|\bmatching\s+(?:estimator|on\s+observ|approach|method)|coarsened\s+exact\s+matching|nearest[\s-]neigh?bou?r\s+matching`),
		func(r *Record) { r.HasMatchingPSM = true },
	},
	{
		"synthetic control",
		regexp.MustCompile(`(?i)synthetic[\s-]control`),
		func(r *Record) { r.HasSyntheticControl = true },
	},
	{
		"natural experiment",
		regexp.MustCompile(`(?i)natural\s+experiment|\bquasi[\s-]random\b|\bexogenous\s+(?:shock|policy\s+change)|plausibly\s+exogenous`),
		func(r *Record) { r.HasNaturalExperiment = true },
	},
	{
		"baseline/longitudinal",
		regexp.MustCompile(`(?i)\bbaseline\b|\blongitudinal\b|\bcohort\s+(?:study|of|was|design)|\bfollowed\s+(?:up\s+)?(?:for|over)\b|\bpanel\s+(?:data|survey|study)|\bfollow[\s-]up\s+(?:period|survey|visit)`),
		func(r *Record) { r.HasBaseline = true },
	},
	{
		"case-control",
		regexp.MustCompile(`(?i)\bcase[\s-]control\s+(?:study|design|analysis)`),
		func(r *Record) { r.HasCaseControl = true },
	},
	{
		"systematic review",
		regexp.MustCompile(`(?i)systematic(?:ally)?\s+review|\bsystematic\s+search\b|\bevidence\s+synthesis\b`),
		func(r *Record) { r.HasSystematicReview = true },
	},
	{
		"meta-analysis",
		regexp.MustCompile(`(?i)meta[\s-]anal|\bpooled\s+(?:estimate|effect)|\brandom[\s-]effects\s+model\b`),
		func(r *Record) { r.HasMetaAnalysis = true },
	},
	{
		"qualitative methods",
		regexp.MustCompile(`(?i)\bqualitative\b|\bsemi[\s-]structured\s+interviews?\b|\bfocus\s+groups?\b|\bethnograph|\bthematic\s+analysis\b`),
		func(r *Record) { r.HasQualitative = true },
	},
	{
		"mixed methods",
		regexp.MustCompile(`(?i)mixed[\s-]methods?\b`),
		func(r *Record) { r.HasMixedMethods = true },
	},
	{
		"modeling/simulation",
		regexp.MustCompile(`(?i)\bsimulation\s+(?:model|study|approach)|\bmicrosimulation\b|\bagent[\s-]based\s+model|\bcalibrated\s+model\b|\bprojection\s+model\b`),
		func(r *Record) { r.HasModeling = true },
	},
	{
		"self-reported measures",
		regexp.MustCompile(`(?i)self[\s-]report|\bsurvey\s+respons|\bquestionnaires?\b|\bself[\s-]assessed\b`),
		func(r *Record) { r.HasSelfReport = true },
	},
	{
		"administrative data",
		regexp.MustCompile(`(?i)administrative\s+(?:data|records?)|\bregistry\s+(?:data|records?|linkage)|\bregister[\s-]based\b|\btax\s+records?\b|\bclaims\s+data\b|\blinked\s+(?:administrative|registry)`),
		func(r *Record) { r.HasAdminData = true },
	},
	{
		"objective measures",
		regexp.MustCompile(`(?i)\bobjective(?:ly)?\s+measur|\bbiomarkers?\b|\blab(?:oratory)?[\s-](?:confirmed|tested|measured)|\bclinical(?:ly)?\s+(?:measured|assessed|confirmed)|\bsensor\s+data\b|\badministered\s+tests?\b`),
		func(r *Record) { r.HasObjectiveMeasures = true },
	},
	{
		"validated instruments",
		regexp.MustCompile(`(?i)validated\s+(?:scale|instrument|questionnaire|measure)s?`),
		func(r *Record) { r.HasValidatedInstruments = true },
	},
	{
		"pre-registration",
		regexp.MustCompile(`(?i)pre[\s-]?regist|\bregistered\s+(?:trial|protocol|report)|\bISRCTN\d*\b|\bNCT\d+\b|\bPROSPERO\b|\bAEA\s+RCT\s+registry\b|\btrial\s+registration\b`),
		func(r *Record) { r.HasPreRegistration = true },
	},
	{
		"CONSORT",
		regexp.MustCompile(`(?i)\bCONSORT\b`),
		func(r *Record) { r.HasCONSORT = true },
	},
	{
		"PRISMA",
		regexp.MustCompile(`(?i)\bPRISMA\b`),
		func(r *Record) { r.HasPRISMA = true },
	},
	{
		"robustness checks",
		regexp.MustCompile(`(?i)robust(?:ness)?\s+(?:checks?|tests?|to\b|analyses)|\bfalsification\s+tests?\b|\bplacebo\s+tests?\b|\bspecification\s+(?:checks?|tests?)`),
		func(r *Record) { r.HasRobustnessChecks = true },
	},
	{
		"sensitivity analysis",
		regexp.MustCompile(`(?i)sensitivity\s+analys|\bbounding\s+exercise|\bRosenbaum\s+bounds\b|\bE[\s-]value\b`),
		func(r *Record) { r.HasSensitivityAnalysis = true },
	},
	{
		"balance tests",
		regexp.MustCompile(`(?i)\bbalance(?:d)?\s+(?:tests?|tables?|checks?|across\s+(?:arms|groups))|\bcovariate\s+balance\b|\bbaseline\s+(?:balance|equivalence)|\bgroups\s+were\s+balanced\b`),
		func(r *Record) { r.HasBalanceTests = true },
	},
	{
		"data availability",
		regexp.MustCompile(`(?i)data\s+(?:are|is)\s+(?:publicly\s+)?available|\bopen\s+data\b|\breplication\s+data\b|\bdata\s+availability\s+statement\b`),
		func(r *Record) { r.HasDataAvailability = true },
	},
	{
		"code availability",
		regexp.MustCompile(`(?i)code\s+(?:are|is)\s+(?:publicly\s+)?available|\breplication\s+(?:code|package|files)\b|\banalysis\s+code\b|\bopen[\s-]source\s+code\b`),
		func(r *Record) { r.HasCodeAvailability = true },
	},
	{
		"attrition discussed",
		regexp.MustCompile(`(?i)\battrition\b|\bloss\s+to\s+follow[\s-]up\b|\bdropout\s+rates?\b|\bdifferential\s+(?:attrition|dropout)`),
		func(r *Record) { r.HasAttritionDiscussed = true },
	},
	{
		"external validity discussed",
		regexp.MustCompile(`(?i)external\s+validity|\bgenerali[sz]abilit|\bgenerali[sz]e\s+to\b|\brepresentative\s+(?:sample|of\s+the)\b|\bnationally\s+representative\b`),
		func(r *Record) { r.HasExternalValidity = true },
	},
	{
		"spillover/interference discussed",
		regexp.MustCompile(`(?i)\bspillovers?\b|\bSUTVA\b|\binterference\s+between\s+units\b|\bcontamination\s+(?:between|across)\b|\bgeneral\s+equilibrium\s+effects?\b`),
		func(r *Record) { r.HasSpilloverDiscussed = true },
	},
	{
		"selection discussed",
		regexp.MustCompile(`(?i)selection\s+bias|\bself[\s-]selection\b|\bselection\s+into\s+(?:treatment|the\s+program)|\bnon[\s-]random\s+selection\b`),
		func(r *Record) { r.HasSelectionDiscussed = true },
	},
}

// sampleSizePattern captures alternative sample-size phrasings. Group
// order is significant: parsing takes the first non-empty numeric group
// left to right, matching the source pattern's group precedence. Each
// numeric group is paired with an optional multiplier group. Decimal
// numbers are only accepted when a multiplier word follows, so
// four-digit years are never read as counts.
var sampleSizePattern = regexp.MustCompile(`(?i)` +
	`\bn\s*=\s*([\d,]+(?:\.\d+)?)\s*(million|thousand|k\b)?` + // groups 1, 2
	`|\bsample\s+(?:size\s+)?of\s+([\d,]+(?:\.\d+)?)\s*(million|thousand|k\b)?` + // 3, 4
	`|\b([\d,]+(?:\.\d+)?)\s*(million|thousand)\s+(?:adults|participants|individuals|patients|people|respondents|observations|records|workers|students|children|households|firms|person[\s-]years)` + // 5, 6
	`|\b([\d,]+)(k)\s+(?:participants|respondents|individuals|observations|users|patients)` + // 7, 8
	`|\b([\d][\d,]{0,11})\s+(?:participants|patients|respondents|subjects|individuals|adults|children|students|households|firms|workers|observations|enrollees|births|cases|records|villages|schools|clinics)\b`) // 9

// sampleSizeGroups pairs each numeric capture group with its multiplier
// group (0 when the alternative has none).
var sampleSizeGroups = []struct{ num, mult int }{
	{1, 2},
	{3, 4},
	{5, 6},
	{7, 8},
	{9, 0},
}

// studyCountPattern matches "<n> studies/trials" mentions in reviews.
var studyCountPattern = regexp.MustCompile(`(?i)\b(\d{1,4})\s+(?:included\s+)?(studies|trials|articles|papers|publications)\b`)
