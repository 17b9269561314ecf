package interfaces

import (
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

// KnowledgeSource exposes the secondary knowledge resource as four lookup
// tables keyed by free-text unit labels. Key lists preserve source order:
// fuzzy matching is first-match-wins, so ordering is part of the contract.
type KnowledgeSource interface {
	OverviewKeys() []string
	Overview(key string) (model.UnitOverview, bool)

	MaturityKeys() []string
	Maturity(key string) ([]model.MaturityStage, bool)

	ScorecardKeys() []string
	Scorecard(key string) (model.UnitScorecard, bool)

	ActionKeys() []string
	Actions(key string) ([]model.SkillAction, bool)
}
