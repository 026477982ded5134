package features

import (
	"math"
	"strconv"
	"strings"
)

// Extract scans text against the detector catalogue and returns a fully
// populated Record. It never fails: text with no recognizable signals
// yields a Record of false flags and an empty keyword list.
func Extract(text string) *Record {
	rec := &Record{MatchedKeywords: []string{}}

	for _, d := range detectors {
		if d.pattern.MatchString(text) {
			d.set(rec)
			rec.MatchedKeywords = append(rec.MatchedKeywords, d.name)
		}
	}

	if m := sampleSizePattern.FindStringSubmatch(text); m != nil {
		if n, ok := parseSampleSize(m); ok {
			rec.SampleSizeNumeric = &n
			rec.SampleSizeText = strings.TrimSpace(m[0])
		}
	}

	if m := studyCountPattern.FindString(text); m != "" {
		rec.StudyCountText = strings.TrimSpace(m)
	}

	return rec
}

// parseSampleSize picks the first non-empty numeric capture group in
// declared group order and applies its multiplier. Reports false when
// the captured number is unusable (a bare decimal with no multiplier).
func parseSampleSize(m []string) (int, bool) {
	for _, g := range sampleSizeGroups {
		raw := m[g.num]
		if raw == "" {
			continue
		}
		mult := ""
		if g.mult > 0 {
			mult = strings.ToLower(strings.TrimSpace(m[g.mult]))
		}

		raw = strings.ReplaceAll(raw, ",", "")
		if strings.Contains(raw, ".") && mult == "" {
			// Decimals only count with a multiplier word ("3.5 million").
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		switch mult {
		case "million":
			v *= 1_000_000
		case "thousand", "k":
			v *= 1_000
		}
		if v < 0 {
			continue
		}
		return int(math.Round(v)), true
	}
	return 0, false
}
