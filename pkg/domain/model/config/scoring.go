package config

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// weightSumTolerance is the accepted deviation when checking that the
// three share weights sum to 1.0
const weightSumTolerance = 0.001

// ScoringWeights defines the relative share of each risk signal.
// The three shares must sum to 1.0 so the composite stays in [0,1].
type ScoringWeights struct {
	Gap      float64
	Impact   float64
	Priority float64
}

// Sum returns the total of all shares
func (w ScoringWeights) Sum() float64 {
	return w.Gap + w.Impact + w.Priority
}

// PriorityTiers maps urgency classifications to their weight. Fallback
// covers every value outside the known vocabulary.
type PriorityTiers struct {
	Critical float64
	High     float64
	Medium   float64
	Fallback float64
}

// ScoringConfig holds all tunables of the risk scorer and the
// classification filters
type ScoringConfig struct {
	Weights                 ScoringWeights
	Priority                PriorityTiers
	QuickWinImpactThreshold float64
	ComplianceThemeKeywords []string
}

// DefaultScoringConfig returns the standard weighting: gap severity 0.40,
// impact materiality 0.35, organisational urgency 0.25.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Weights: ScoringWeights{
			Gap:      0.40,
			Impact:   0.35,
			Priority: 0.25,
		},
		Priority: PriorityTiers{
			Critical: 1.0,
			High:     0.75,
			Medium:   0.5,
			Fallback: 0.25,
		},
		QuickWinImpactThreshold: 0.3,
		ComplianceThemeKeywords: []string{"risk", "compliance", "regulation", "climate"},
	}
}

// Validate checks that the configuration keeps risk scores bounded
func (c *ScoringConfig) Validate() error {
	if c.Weights.Gap < 0 || c.Weights.Impact < 0 || c.Weights.Priority < 0 {
		return goerr.New("scoring weights must be non-negative",
			goerr.V("weights", c.Weights))
	}
	if diff := math.Abs(c.Weights.Sum() - 1.0); diff > weightSumTolerance {
		return goerr.New("scoring weights must sum to 1.0",
			goerr.V("sum", c.Weights.Sum()), goerr.V("tolerance", weightSumTolerance))
	}
	for name, v := range map[string]float64{
		"critical": c.Priority.Critical,
		"high":     c.Priority.High,
		"medium":   c.Priority.Medium,
		"fallback": c.Priority.Fallback,
	} {
		if v < 0 || v > 1 {
			return goerr.New("priority tier weight out of range",
				goerr.V("tier", name), goerr.V("weight", v))
		}
	}
	if c.QuickWinImpactThreshold < 0 || c.QuickWinImpactThreshold > 1 {
		return goerr.New("quick win threshold out of range",
			goerr.V("threshold", c.QuickWinImpactThreshold))
	}
	if len(c.ComplianceThemeKeywords) == 0 {
		return goerr.New("compliance theme keywords must not be empty")
	}
	return nil
}

// PriorityWeight resolves the urgency weight for a priority level.
// Matching is case-insensitive; anything unrecognized gets the fallback.
func (c *ScoringConfig) PriorityWeight(p types.PriorityLevel) float64 {
	switch p.Normalize() {
	case "critical":
		return c.Priority.Critical
	case "high":
		return c.Priority.High
	case "medium":
		return c.Priority.Medium
	default:
		return c.Priority.Fallback
	}
}
