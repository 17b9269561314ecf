package model

// MaturityLevel is one of the four fixed proficiency stages
type MaturityLevel struct {
	Level       int
	Label       string
	Short       string
	Description string
}

var maturityLevels = []MaturityLevel{
	{Level: 1, Label: "Curious Explorer", Short: "Explorer", Description: "Basic awareness of sustainability terms and environmental impact."},
	{Level: 2, Label: "Engaged Learner", Short: "Learner", Description: "Applies basic sustainability principles and identifies impact areas."},
	{Level: 3, Label: "Active Contributor", Short: "Contributor", Description: "Consistently integrates sustainability into daily decisions and processes."},
	{Level: 4, Label: "Conscious Changemaker", Short: "Changemaker", Description: "Leads strategic sustainability initiatives and drives organisational transformation."},
}

// MaturityLevels returns the fixed four-stage maturity table in order
func MaturityLevels() []MaturityLevel {
	levels := make([]MaturityLevel, len(maturityLevels))
	copy(levels, maturityLevels)
	return levels
}

// MaturityLabel returns the full label for a level, "Unknown" for any
// level outside the table
func MaturityLabel(level int) string {
	for _, m := range maturityLevels {
		if m.Level == level {
			return m.Label
		}
	}
	return "Unknown"
}

// MaturityShort returns the short label for a level, or a placeholder
// for any level outside the table
func MaturityShort(level int) string {
	for _, m := range maturityLevels {
		if m.Level == level {
			return m.Short
		}
	}
	return "—"
}
