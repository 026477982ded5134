package strength

import (
	"fmt"
	"math"
	"strings"

	"github.com/evidencetools/rigor/internal/features"
	"github.com/evidencetools/rigor/internal/study"
)

// Assessment is the scored causal strength of a study.
type Assessment struct {
	Score         float64
	Justification string
}

// Assess computes the 0-5 causal-strength score for a method given the
// extracted features. Total: unknown methods get the 1.0 floor.
func Assess(m study.Method, f *features.Record) Assessment {
	rubric := RubricFor(m)

	score := rubric.Baseline
	var applied []string
	for _, mod := range rubric.Modifiers {
		if mod.Condition(f) {
			score += mod.Delta
			applied = append(applied, fmt.Sprintf("%+.1f %s", mod.Delta, mod.Description))
		}
	}

	score = clamp(score, 0, 5)
	score = math.Round(score*10) / 10

	var b strings.Builder
	fmt.Fprintf(&b, "Base strength for %s: %.1f/5.", m.Label(), rubric.Baseline)
	if len(applied) > 0 {
		fmt.Fprintf(&b, " Modifiers applied: %s.", strings.Join(applied, "; "))
	}
	if len(rubric.Required) > 0 {
		fmt.Fprintf(&b, " Strong evidence requires: %s.", strings.Join(rubric.Required, "; "))
	}

	return Assessment{Score: score, Justification: b.String()}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
