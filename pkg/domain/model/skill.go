package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// Maturity level bounds shared by skills and the maturity table
const (
	MinMaturityLevel = 1
	MaxMaturityLevel = 4
)

// Skill represents a single skill-assessment record owned by a unit.
// Gap and severity are always derived from the levels, never trusted
// from upstream columns.
type Skill struct {
	ID                types.SkillID       `json:"id"`
	UnitID            types.UnitID        `json:"department"`
	Family            types.SkillFamily   `json:"skill_family"`
	Name              string              `json:"green_skill"`
	Description       string              `json:"description"`
	WhyItMatters      string              `json:"why_it_matters"`
	ExampleBehaviours string              `json:"example_behaviours"`
	Theme             string              `json:"theme"`
	RequiredLevel     int                 `json:"required_level"`
	CurrentLevel      int                 `json:"current_level"`
	DesiredKnowledge  string              `json:"desired_knowledge"`
	PriorityLevel     types.PriorityLevel `json:"priority_level"`

	ImpactProfile
}

// Gap returns required minus current level. Negative values mean
// over-qualification and are passed through as-is.
func (s *Skill) Gap() int {
	return s.RequiredLevel - s.CurrentLevel
}

// GapSeverity derives the severity bucket from the current gap
func (s *Skill) GapSeverity() types.Severity {
	return types.SeverityFromGap(s.Gap())
}

// Validate checks structural integrity of the skill record
func (s *Skill) Validate() error {
	if err := s.UnitID.Validate(); err != nil {
		return goerr.Wrap(err, "skill has no owning unit", goerr.V("skill", s.Name))
	}
	if s.Name == "" {
		return goerr.New("skill name is required", goerr.V("id", s.ID))
	}
	if err := s.Family.Validate(); err != nil {
		return goerr.Wrap(err, "invalid skill", goerr.V("skill", s.Name))
	}
	if s.RequiredLevel < MinMaturityLevel || s.RequiredLevel > MaxMaturityLevel {
		return goerr.New("required level out of range",
			goerr.V("skill", s.Name), goerr.V("level", s.RequiredLevel))
	}
	if s.CurrentLevel < MinMaturityLevel || s.CurrentLevel > MaxMaturityLevel {
		return goerr.New("current level out of range",
			goerr.V("skill", s.Name), goerr.V("level", s.CurrentLevel))
	}
	for _, f := range s.Factors() {
		if f.Value < 0 || f.Value > 1 {
			return goerr.New("impact factor out of range",
				goerr.V("skill", s.Name), goerr.V("factor", f.Key), goerr.V("value", f.Value))
		}
	}
	return nil
}
