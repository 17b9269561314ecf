package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// SkillFamily represents one of the four fixed skill families
type SkillFamily string

const (
	SkillFamilyTechnical     SkillFamily = "Technical"
	SkillFamilyKnowledgeable SkillFamily = "Knowledgeable"
	SkillFamilyValues        SkillFamily = "Values"
	SkillFamilyAttitudes     SkillFamily = "Attitudes"
)

// SkillFamilies returns all valid skill families in their fixed order
func SkillFamilies() []SkillFamily {
	return []SkillFamily{
		SkillFamilyTechnical,
		SkillFamilyKnowledgeable,
		SkillFamilyValues,
		SkillFamilyAttitudes,
	}
}

// Validate checks if the SkillFamily is one of the four fixed families
func (f SkillFamily) Validate() error {
	switch f {
	case SkillFamilyTechnical, SkillFamilyKnowledgeable, SkillFamilyValues, SkillFamilyAttitudes:
		return nil
	}
	return goerr.New("unknown skill family", goerr.V("family", f))
}

// String returns the string representation of SkillFamily
func (f SkillFamily) String() string {
	return string(f)
}
