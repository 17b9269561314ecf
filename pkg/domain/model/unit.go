package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// Unit represents an organisational unit (department) snapshot record
type Unit struct {
	ID               types.UnitID        `json:"id"`
	Label            string              `json:"label"`
	Department       string              `json:"department"`
	Description      string              `json:"description"`
	OverallScore     float64             `json:"overall_score"`
	GapSeverity      types.Severity      `json:"gap_severity"`
	PriorityLevel    types.PriorityLevel `json:"priority_level"`
	CriticalGapCount int                 `json:"critical_gap_count"`
	ModerateGapCount int                 `json:"moderate_gap_count"`
	NoGapCount       int                 `json:"no_gap_count"`
	TopGaps          string              `json:"top_gaps"`
	DesiredKnowledge string              `json:"desired_knowledge"`

	ImpactProfile
}

// DisplayLabel returns the human-facing unit name, falling back to the
// department name when no label is set
func (u *Unit) DisplayLabel() string {
	if u.Label != "" {
		return u.Label
	}
	return u.Department
}

// Validate checks structural integrity of the unit record
func (u *Unit) Validate() error {
	if err := u.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid unit", goerr.V("label", u.Label))
	}
	for _, f := range u.Factors() {
		if f.Value < 0 || f.Value > 1 {
			return goerr.New("impact factor out of range",
				goerr.V("unit", u.ID), goerr.V("factor", f.Key), goerr.V("value", f.Value))
		}
	}
	return nil
}
