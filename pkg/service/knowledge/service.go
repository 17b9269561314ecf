package knowledge

import (
	"strings"

	"github.com/secmon-lab/gsip/pkg/domain/interfaces"
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

// Service reconciles primary unit labels against the independently keyed
// knowledge resource. Each sub-table gets its own matcher because each
// may resolve to a different key, or to none at all.
type Service struct {
	source    interfaces.KnowledgeSource
	overview  *Matcher
	maturity  *Matcher
	scorecard *Matcher
	action    *Matcher
}

// New creates a knowledge reconciliation service over the given source
func New(source interfaces.KnowledgeSource) *Service {
	return &Service{
		source:    source,
		overview:  NewMatcher(source.OverviewKeys()),
		maturity:  NewMatcher(source.MaturityKeys()),
		scorecard: NewMatcher(source.ScorecardKeys()),
		action:    NewMatcher(source.ActionKeys()),
	}
}

// UnitProfile assembles the knowledge bundle for a unit label. The three
// sub-tables are matched independently: a missing maturity map or
// scorecard does not block the rest. Only a missing overview means the
// unit has no profile at all.
func (x *Service) UnitProfile(label string) (*model.UnitProfile, bool) {
	overviewKey, ok := x.overview.Match(label)
	if !ok {
		return nil, false
	}
	overview, ok := x.source.Overview(overviewKey)
	if !ok {
		return nil, false
	}

	profile := &model.UnitProfile{
		Overview: overview,
		Scorecard: model.UnitScorecard{
			PriorityLevel: "Unknown",
		},
	}

	if key, ok := x.maturity.Match(label); ok {
		if stages, ok := x.source.Maturity(key); ok {
			profile.Maturity = stages
		}
	}

	if key, ok := x.scorecard.Match(label); ok {
		if sc, ok := x.source.Scorecard(key); ok {
			profile.Scorecard = sc
		}
	}

	return profile, true
}

// SkillAction resolves the override action for a skill within a unit.
// The unit label is fuzzy-matched; the skill name is an exact
// case-insensitive match within the unit's action list.
func (x *Service) SkillAction(label, skillName string) (model.SkillAction, bool) {
	key, ok := x.action.Match(label)
	if !ok {
		return model.SkillAction{}, false
	}
	actions, ok := x.source.Actions(key)
	if !ok {
		return model.SkillAction{}, false
	}

	for _, a := range actions {
		if strings.EqualFold(a.SkillName, skillName) {
			return a, true
		}
	}
	return model.SkillAction{}, false
}
