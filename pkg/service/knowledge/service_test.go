package knowledge_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gsip/pkg/service/knowledge"
)

const testResource = `{
	"overview": {
		"it_security": {
			"definition": "Protects digital assets",
			"green_skills_focus": "Energy-aware infrastructure",
			"example_green_jobs": "Green SOC Analyst",
			"risk_of_not_upskilling": "Rising compute emissions"
		},
		"finance": {
			"definition": "Manages the money",
			"green_skills_focus": "Climate accounting",
			"example_green_jobs": "ESG Controller",
			"risk_of_not_upskilling": "Regulatory exposure"
		}
	},
	"maturity_map": {
		"finance": [
			{"level": "1", "description": "Aware", "technical_skill": "Reads ESG reports",
			 "knowledge_skill": "Knows CSRD basics", "value": "Curiosity", "attitude": "Open"}
		]
	},
	"scorecard": {
		"it_security": {
			"desired_knowledge": 0.8,
			"current_capability": 0.5,
			"gap": 0.3,
			"priority_level": "High"
		}
	},
	"actions": {
		"it_security": [
			{"skill_family": "Technical", "green_skill": "Green Ops",
			 "action": "Adopt carbon-aware scheduling", "contribution": "Cuts compute emissions",
			 "target_maturity": "Active Contributor", "linked_theme": "Climate Risk", "priority": "High"}
		]
	}
}`

func newTestService(t *testing.T) *knowledge.Service {
	t.Helper()
	src, err := knowledge.ParseSource([]byte(testResource))
	gt.NoError(t, err).Required()
	return knowledge.New(src)
}

func TestParseSourcePreservesKeyOrder(t *testing.T) {
	src, err := knowledge.ParseSource([]byte(testResource))
	gt.NoError(t, err).Required()

	gt.Array(t, src.OverviewKeys()).Equal([]string{"it_security", "finance"})
	gt.Array(t, src.MaturityKeys()).Equal([]string{"finance"})
	gt.Array(t, src.ScorecardKeys()).Equal([]string{"it_security"})
	gt.Array(t, src.ActionKeys()).Equal([]string{"it_security"})
}

func TestParseSourceMissingTables(t *testing.T) {
	src, err := knowledge.ParseSource([]byte(`{"overview": {}}`))
	gt.NoError(t, err).Required()
	gt.Array(t, src.OverviewKeys()).Length(0)
	gt.Array(t, src.ActionKeys()).Length(0)
}

func TestParseSourceRejectsMalformed(t *testing.T) {
	_, err := knowledge.ParseSource([]byte(`{"overview": []}`))
	gt.Error(t, err)

	_, err = knowledge.ParseSource([]byte(`not json`))
	gt.Error(t, err)
}

func TestUnitProfile(t *testing.T) {
	svc := newTestService(t)

	t.Run("all sub-tables resolved", func(t *testing.T) {
		profile, ok := svc.UnitProfile("IT & Security")
		gt.Bool(t, ok).True()
		gt.Value(t, profile.Overview.Definition).Equal("Protects digital assets")
		gt.Array(t, profile.Maturity).Length(0)
		gt.Number(t, profile.Scorecard.DesiredKnowledge).Equal(0.8)
		gt.Value(t, profile.Scorecard.PriorityLevel).Equal("High")
	})

	t.Run("sub-tables match independently", func(t *testing.T) {
		// finance has an overview and a maturity map but no scorecard
		profile, ok := svc.UnitProfile("Finance")
		gt.Bool(t, ok).True()
		gt.Value(t, profile.Overview.Definition).Equal("Manages the money")
		gt.Array(t, profile.Maturity).Length(1)
		gt.Value(t, profile.Maturity[0].Description).Equal("Aware")

		// missing scorecard degrades to the zero-value fallback
		gt.Number(t, profile.Scorecard.DesiredKnowledge).Equal(0)
		gt.Number(t, profile.Scorecard.Gap).Equal(0)
		gt.Value(t, profile.Scorecard.PriorityLevel).Equal("Unknown")
	})

	t.Run("missing overview means no profile", func(t *testing.T) {
		_, ok := svc.UnitProfile("Marketing")
		gt.Bool(t, ok).False()
	})
}

func TestSkillAction(t *testing.T) {
	svc := newTestService(t)

	t.Run("case-insensitive exact match on skill name", func(t *testing.T) {
		action, ok := svc.SkillAction("IT & Security", "green ops")
		gt.Bool(t, ok).True()
		gt.Value(t, action.Action).Equal("Adopt carbon-aware scheduling")
		gt.Value(t, action.TargetMaturity).Equal("Active Contributor")
	})

	t.Run("no fuzzy matching at skill grain", func(t *testing.T) {
		_, ok := svc.SkillAction("IT & Security", "Green")
		gt.Bool(t, ok).False()
	})

	t.Run("unknown unit has no actions", func(t *testing.T) {
		_, ok := svc.SkillAction("Marketing", "Green Ops")
		gt.Bool(t, ok).False()
	})
}
