package model

// PriorityAction is one entry of a unit's ranked remediation list
type PriorityAction struct {
	Skill            *Skill
	RiskScore        float64
	Action           string
	Contribution     string
	TargetMaturity   string
	LinkedTheme      string
	Priority         string
	CurrentMaturity  string
	RequiredMaturity string
	LearningPathway  []string
}

// RankedSkill pairs a skill with its computed risk score for org-wide
// priority listings
type RankedSkill struct {
	Skill     *Skill
	RiskScore float64
}
