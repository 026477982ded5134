// Package profile holds the scoring configuration: aggregation weights,
// grade thresholds, and the disclaimer attached to every result.
// Profiles are immutable data loaded from YAML; the shipped default is
// embedded in the binary.
package profile

import (
	"fmt"
	"math"
)

// Weights are the component weights of the overall evidence grade.
// They must sum to 1.
type Weights struct {
	CausalStrength     float64 `yaml:"causal_strength"`
	InternalValidity   float64 `yaml:"internal_validity"`
	ExternalValidity   float64 `yaml:"external_validity"`
	MeasurementQuality float64 `yaml:"measurement_quality"`
	Transparency       float64 `yaml:"transparency"`
}

// Thresholds are the minimum weighted scores for each grade, in
// descending order. Anything below Weak grades Very Weak.
type Thresholds struct {
	VeryStrong float64 `yaml:"very_strong"`
	Strong     float64 `yaml:"strong"`
	Moderate   float64 `yaml:"moderate"`
	Weak       float64 `yaml:"weak"`
}

// Profile is one named scoring configuration.
type Profile struct {
	Name       string     `yaml:"name"`
	Weights    Weights    `yaml:"weights"`
	Thresholds Thresholds `yaml:"grade_thresholds"`
	Disclaimer string     `yaml:"disclaimer"`
}

// Validate checks profile invariants: weights sum to 1 (within 0.001)
// and thresholds strictly descend.
func (p *Profile) Validate() error {
	sum := p.Weights.CausalStrength + p.Weights.InternalValidity +
		p.Weights.ExternalValidity + p.Weights.MeasurementQuality + p.Weights.Transparency
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("profile %q: weights sum to %.3f, want 1.000", p.Name, sum)
	}
	t := p.Thresholds
	if !(t.VeryStrong > t.Strong && t.Strong > t.Moderate && t.Moderate > t.Weak) {
		return fmt.Errorf("profile %q: grade thresholds must strictly descend", p.Name)
	}
	if t.Weak <= 0 || t.VeryStrong >= 5 {
		return fmt.Errorf("profile %q: grade thresholds must lie inside (0, 5)", p.Name)
	}
	if p.Disclaimer == "" {
		return fmt.Errorf("profile %q: disclaimer must not be empty", p.Name)
	}
	return nil
}
