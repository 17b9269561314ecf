package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// SkillRisk computes the composite risk score of a skill as a convex
// combination of gap severity, impact materiality, and organisational
// urgency. Each term is bounded in [0,1], so the result is too.
//
// The blend is deliberate: a skill with a small gap but high materiality
// and urgency can outrank a skill with a larger gap but low materiality.
func (uc *UseCases) SkillRisk(s *model.Skill) float64 {
	var gapWeight float64
	switch {
	case s.Gap() >= 2:
		gapWeight = 1.0
	case s.Gap() == 1:
		gapWeight = 0.5
	}

	w := uc.scoring.Weights
	return w.Gap*gapWeight +
		w.Impact*s.MeanImpact() +
		w.Priority*uc.scoring.PriorityWeight(s.PriorityLevel)
}

// UnitRisk computes a unit's risk as the arithmetic mean of its skills'
// risk scores. A unit with no skills has risk 0.
func (uc *UseCases) UnitRisk(ctx context.Context, unitID types.UnitID) (float64, error) {
	skills, err := uc.repo.Skill().ListByUnit(ctx, unitID)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list unit skills", goerr.V("unit", unitID))
	}
	if len(skills) == 0 {
		return 0, nil
	}

	var total float64
	for _, s := range skills {
		total += uc.SkillRisk(s)
	}
	return total / float64(len(skills)), nil
}

// RankedUnit pairs a unit with its aggregated risk score
type RankedUnit struct {
	Unit      *model.Unit
	RiskScore float64
}

// UnitRisks scores every unit and returns them sorted by risk
// descending. Ties preserve snapshot order.
func (uc *UseCases) UnitRisks(ctx context.Context) ([]RankedUnit, error) {
	units, err := uc.repo.Unit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list units")
	}

	ranked := make([]RankedUnit, 0, len(units))
	for _, u := range units {
		risk, err := uc.UnitRisk(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedUnit{Unit: u, RiskScore: risk})
	}

	sortByScoreDesc(ranked, func(r RankedUnit) float64 { return r.RiskScore })
	return ranked, nil
}
