package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/model/config"
	"github.com/secmon-lab/gsip/pkg/domain/types"
	"github.com/secmon-lab/gsip/pkg/usecase"
)

func TestQuickWins(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(&model.Snapshot{
		Units: []*model.Unit{{ID: "eng", Label: "Engineering"}},
		Skills: []*model.Skill{
			// gap 1, impact 0.35: quick win
			{ID: 1, UnitID: "eng", Name: "Values Alignment", CurrentLevel: 2, RequiredLevel: 3,
				ImpactProfile: uniformImpact(0.35)},
			// gap 1, impact 0.6: quick win, higher leverage
			{ID: 2, UnitID: "eng", Name: "Carbon Literacy", CurrentLevel: 3, RequiredLevel: 4,
				ImpactProfile: uniformImpact(0.6)},
			// gap 1 but impact below threshold
			{ID: 3, UnitID: "eng", Name: "Low Leverage", CurrentLevel: 2, RequiredLevel: 3,
				ImpactProfile: uniformImpact(0.1)},
			// high impact but critical gap, not a quick win
			{ID: 4, UnitID: "eng", Name: "Deep Gap", CurrentLevel: 1, RequiredLevel: 4,
				ImpactProfile: uniformImpact(0.9)},
			// no gap at all
			{ID: 5, UnitID: "eng", Name: "Settled", CurrentLevel: 3, RequiredLevel: 3,
				ImpactProfile: uniformImpact(0.9)},
		},
	})

	wins, err := uc.QuickWins(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, wins).Length(2)
	gt.Value(t, wins[0].Name).Equal("Carbon Literacy")
	gt.Value(t, wins[1].Name).Equal("Values Alignment")
}

func TestQuickWinsThresholdBoundary(t *testing.T) {
	ctx := context.Background()

	// 0.5 is exactly representable, so the mean lands exactly on the
	// threshold and exercises the inclusive comparison
	cfg := config.DefaultScoringConfig()
	cfg.QuickWinImpactThreshold = 0.5

	uc := newUseCases(&model.Snapshot{
		Skills: []*model.Skill{
			{ID: 1, UnitID: "eng", Name: "Exactly At Threshold", CurrentLevel: 2, RequiredLevel: 3,
				ImpactProfile: uniformImpact(0.5)},
		},
	}, usecase.WithScoringConfig(cfg))

	wins, err := uc.QuickWins(ctx)
	gt.NoError(t, err).Required()
	// the threshold is inclusive
	gt.Array(t, wins).Length(1)
}

func TestComplianceRisks(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(&model.Snapshot{
		Skills: []*model.Skill{
			// critical gap + matching theme
			{ID: 1, UnitID: "eng", Name: "CSRD Reporting", CurrentLevel: 1, RequiredLevel: 4,
				Theme: "Regulation & Disclosure"},
			// keyword match is case-insensitive
			{ID: 2, UnitID: "eng", Name: "Climate Modelling", CurrentLevel: 2, RequiredLevel: 4,
				Theme: "CLIMATE adaptation"},
			// critical gap but unrelated theme
			{ID: 3, UnitID: "eng", Name: "Team Building", CurrentLevel: 1, RequiredLevel: 3,
				Theme: "Culture"},
			// matching theme but only a moderate gap
			{ID: 4, UnitID: "eng", Name: "Risk Screening", CurrentLevel: 3, RequiredLevel: 4,
				Theme: "Risk Management"},
			// empty theme never matches
			{ID: 5, UnitID: "eng", Name: "Blank Theme", CurrentLevel: 1, RequiredLevel: 4},
		},
	})

	risks, err := uc.ComplianceRisks(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(2)
	gt.Value(t, risks[0].Name).Equal("CSRD Reporting")
	gt.Value(t, risks[1].Name).Equal("Climate Modelling")
}

func TestTopPriority(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(&model.Snapshot{
		Skills: []*model.Skill{
			{ID: 1, UnitID: "a", Name: "Low", CurrentLevel: 3, RequiredLevel: 3, PriorityLevel: "Low"},
			{ID: 2, UnitID: "a", Name: "High", CurrentLevel: 1, RequiredLevel: 4,
				PriorityLevel: "Critical", ImpactProfile: uniformImpact(0.7)},
			{ID: 3, UnitID: "b", Name: "Mid", CurrentLevel: 2, RequiredLevel: 3,
				PriorityLevel: "Medium", ImpactProfile: uniformImpact(0.4)},
		},
	})

	t.Run("ranked descending and truncated", func(t *testing.T) {
		ranked, err := uc.TopPriority(ctx, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, ranked).Length(2)
		gt.Value(t, ranked[0].Skill.Name).Equal("High")
		gt.Value(t, ranked[1].Skill.Name).Equal("Mid")
		if ranked[0].RiskScore < ranked[1].RiskScore {
			t.Error("ranking must be non-increasing by risk")
		}
	})

	t.Run("non-positive limit returns everything", func(t *testing.T) {
		ranked, err := uc.TopPriority(ctx, 0)
		gt.NoError(t, err).Required()
		gt.Array(t, ranked).Length(3)
	})

	t.Run("limit larger than population returns everything", func(t *testing.T) {
		ranked, err := uc.TopPriority(ctx, 100)
		gt.NoError(t, err).Required()
		gt.Array(t, ranked).Length(3)
	})
}

func TestTopPriorityStableTies(t *testing.T) {
	ctx := context.Background()
	// identical risk scores must preserve snapshot order
	mk := func(id types.SkillID, name string) *model.Skill {
		return &model.Skill{ID: id, UnitID: "a", Name: name,
			CurrentLevel: 2, RequiredLevel: 3, PriorityLevel: "Medium",
			ImpactProfile: uniformImpact(0.5)}
	}
	uc := newUseCases(&model.Snapshot{
		Skills: []*model.Skill{mk(1, "first"), mk(2, "second"), mk(3, "third")},
	})

	ranked, err := uc.TopPriority(ctx, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, ranked[0].Skill.Name).Equal("first")
	gt.Value(t, ranked[1].Skill.Name).Equal("second")
	gt.Value(t, ranked[2].Skill.Name).Equal("third")
}
