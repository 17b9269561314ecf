package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// maintainStep is the single pathway entry for skills already at or
// above their required level
const maintainStep = "Maintain current proficiency through continuous practice"

// pathwayTemplates maps (destination level, skill family) to a pathway
// step. Twelve templates: three destination levels by four families.
var pathwayTemplates = map[int]map[types.SkillFamily]string{
	2: {
		types.SkillFamilyTechnical:     "Complete foundational technical sustainability training",
		types.SkillFamilyKnowledgeable: "Study core ESG frameworks and climate regulations",
		types.SkillFamilyValues:        "Participate in sustainability values workshops",
		types.SkillFamilyAttitudes:     "Attend mindset-shift and awareness sessions",
	},
	3: {
		types.SkillFamilyTechnical:     "Apply skills in live projects with mentorship",
		types.SkillFamilyKnowledgeable: "Lead cross-functional knowledge-sharing sessions",
		types.SkillFamilyValues:        "Champion sustainability values in team decisions",
		types.SkillFamilyAttitudes:     "Mentor peers and model sustainability behaviours",
	},
	4: {
		types.SkillFamilyTechnical:     "Drive strategic sustainability initiatives and innovation",
		types.SkillFamilyKnowledgeable: "Design organisational sustainability learning programmes",
		types.SkillFamilyValues:        "Shape organisational sustainability culture and policy",
		types.SkillFamilyAttitudes:     "Lead transformational change across the organisation",
	},
}

// BuildLearningPathway produces the ordered development steps from the
// current level up to and including the required level. Families outside
// the fixed four get the Attitudes wording.
func BuildLearningPathway(currentLevel, requiredLevel int, family types.SkillFamily) []string {
	if currentLevel >= requiredLevel {
		return []string{maintainStep}
	}

	var pathway []string
	for lvl := currentLevel + 1; lvl <= requiredLevel; lvl++ {
		steps, ok := pathwayTemplates[lvl]
		if !ok {
			continue
		}
		step, ok := steps[family]
		if !ok {
			step = steps[types.SkillFamilyAttitudes]
		}
		pathway = append(pathway, step)
	}
	return pathway
}

// PriorityActions builds the ranked remediation list for one unit. Each
// skill resolves its action narrative from the knowledge resource
// override when present, falling back to the skill's own fields. The
// result is sorted by risk score descending, ties in snapshot order.
func (uc *UseCases) PriorityActions(ctx context.Context, unitID types.UnitID) ([]model.PriorityAction, error) {
	unit, err := uc.repo.Unit().Get(ctx, unitID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get unit", goerr.V("unit", unitID))
	}

	skills, err := uc.repo.Skill().ListByUnit(ctx, unitID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list unit skills", goerr.V("unit", unitID))
	}

	label := unit.DisplayLabel()
	actions := make([]model.PriorityAction, 0, len(skills))
	for _, s := range skills {
		actions = append(actions, uc.buildAction(label, s))
	}

	sortByScoreDesc(actions, func(a model.PriorityAction) float64 { return a.RiskScore })
	return actions, nil
}

func (uc *UseCases) buildAction(unitLabel string, s *model.Skill) model.PriorityAction {
	var override model.SkillAction
	if uc.knowledge != nil {
		override, _ = uc.knowledge.SkillAction(unitLabel, s.Name)
	}

	requiredMaturity := model.MaturityLabel(s.RequiredLevel)

	return model.PriorityAction{
		Skill:            s,
		RiskScore:        uc.SkillRisk(s),
		Action:           fallback(override.Action, s.ExampleBehaviours),
		Contribution:     fallback(override.Contribution, s.WhyItMatters),
		TargetMaturity:   fallback(override.TargetMaturity, requiredMaturity),
		LinkedTheme:      fallback(override.LinkedTheme, s.Theme),
		Priority:         fallback(override.Priority, string(s.PriorityLevel)),
		CurrentMaturity:  model.MaturityLabel(s.CurrentLevel),
		RequiredMaturity: requiredMaturity,
		LearningPathway:  BuildLearningPathway(s.CurrentLevel, s.RequiredLevel, s.Family),
	}
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
