package model

// The knowledge resource is a secondary, independently curated dataset
// keyed by free-text unit labels. Keys are never guaranteed to match the
// primary unit identifiers and are resolved by fuzzy matching.

// UnitOverview is the narrative description of a unit in the knowledge
// resource
type UnitOverview struct {
	Definition          string `json:"definition"`
	GreenSkillsFocus    string `json:"green_skills_focus"`
	ExampleGreenJobs    string `json:"example_green_jobs"`
	RiskOfNotUpskilling string `json:"risk_of_not_upskilling"`
}

// MaturityStage is one entry of a unit's four-stage maturity map, with
// one exemplar skill per family
type MaturityStage struct {
	Level          string `json:"level"`
	Description    string `json:"description"`
	TechnicalSkill string `json:"technical_skill"`
	KnowledgeSkill string `json:"knowledge_skill"`
	Value          string `json:"value"`
	Attitude       string `json:"attitude"`
}

// UnitScorecard holds target/current/gap percentages for a unit
type UnitScorecard struct {
	DesiredKnowledge  float64 `json:"desired_knowledge"`
	CurrentCapability float64 `json:"current_capability"`
	Gap               float64 `json:"gap"`
	PriorityLevel     string  `json:"priority_level"`
}

// SkillAction is a per-skill override action curated for a unit
type SkillAction struct {
	SkillFamily    string `json:"skill_family"`
	SkillName      string `json:"green_skill"`
	Action         string `json:"action"`
	Contribution   string `json:"contribution"`
	TargetMaturity string `json:"target_maturity"`
	LinkedTheme    string `json:"linked_theme"`
	Priority       string `json:"priority"`
}

// UnitProfile is the reconciled knowledge bundle for one unit. The three
// sub-tables are matched independently, so Maturity may be empty and
// Scorecard may be the zero-value fallback even when the overview resolved.
type UnitProfile struct {
	Overview  UnitOverview
	Maturity  []MaturityStage
	Scorecard UnitScorecard
}
