package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

// sortByScoreDesc stable-sorts items by the extracted score, descending.
// Stability matters: ties must preserve input order across the engine.
func sortByScoreDesc[T any](items []T, score func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return score(items[i]) > score(items[j])
	})
}

// QuickWins returns skills with a moderate gap and high sustainability
// leverage: cheap to close, high payoff. Sorted by impact mean
// descending.
func (uc *UseCases) QuickWins(ctx context.Context) ([]*model.Skill, error) {
	skills, err := uc.repo.Skill().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list skills")
	}

	wins := make([]*model.Skill, 0)
	for _, s := range skills {
		if s.Gap() == 1 && s.MeanImpact() >= uc.scoring.QuickWinImpactThreshold {
			wins = append(wins, s)
		}
	}

	sortByScoreDesc(wins, func(s *model.Skill) float64 { return s.MeanImpact() })
	return wins, nil
}

// ComplianceRisks returns skills with a critical gap whose theme touches
// regulatory, compliance, or climate concerns
func (uc *UseCases) ComplianceRisks(ctx context.Context) ([]*model.Skill, error) {
	skills, err := uc.repo.Skill().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list skills")
	}

	risks := make([]*model.Skill, 0)
	for _, s := range skills {
		if !s.GapSeverity().IsCritical() {
			continue
		}
		theme := strings.ToLower(s.Theme)
		for _, kw := range uc.scoring.ComplianceThemeKeywords {
			if strings.Contains(theme, kw) {
				risks = append(risks, s)
				break
			}
		}
	}
	return risks, nil
}

// TopPriority returns all skills ranked by risk descending, truncated to
// limit. A non-positive limit returns the full ranking.
func (uc *UseCases) TopPriority(ctx context.Context, limit int) ([]model.RankedSkill, error) {
	skills, err := uc.repo.Skill().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list skills")
	}

	ranked := make([]model.RankedSkill, 0, len(skills))
	for _, s := range skills {
		ranked = append(ranked, model.RankedSkill{Skill: s, RiskScore: uc.SkillRisk(s)})
	}

	sortByScoreDesc(ranked, func(r model.RankedSkill) float64 { return r.RiskScore })

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
