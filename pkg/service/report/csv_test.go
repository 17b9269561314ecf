package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
	"github.com/secmon-lab/gsip/pkg/repository/memory"
	"github.com/secmon-lab/gsip/pkg/service/report"
	"github.com/secmon-lab/gsip/pkg/usecase"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "0%"},
		{value: 1, expected: "100%"},
		{value: 0.8, expected: "80%"},
		{value: 0.33, expected: "33%"},
		{value: 0.666, expected: "67%"},
		{value: 0.004, expected: "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			gt.Value(t, report.FormatScore(tt.value)).Equal(tt.expected)
		})
	}
}

func TestFormatRisk(t *testing.T) {
	gt.Value(t, report.FormatRisk(0.825)).Equal("0.825")
	gt.Value(t, report.FormatRisk(0.52751)).Equal("0.5275")
	gt.Value(t, report.FormatRisk(0)).Equal("0")
	gt.Value(t, report.FormatRisk(1)).Equal("1")
}

func uniformImpact(v float64) model.ImpactProfile {
	f := model.Factor(v)
	return model.ImpactProfile{
		CarbonFootprint: f, RenewableEnergy: f, HVAC: f, OfficeSpace: f,
		RemoteWork: f, WorkSchedule: f, WaterUse: f, DigitalFootprint: f,
		AICompute: f, IoTTelemetry: f, HardwareCircularity: f, SupplyChainEmissions: f,
		LogisticsShipping: f, FleetElectrification: f, EmployeeCommuting: f, MaterialWaste: f,
	}
}

func TestWriteCSV(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(&model.Snapshot{
		Units: []*model.Unit{
			{ID: "rd", Label: "Engineering, R&D"},
		},
		Skills: []*model.Skill{
			{
				ID: 1, UnitID: "rd",
				Family:            types.SkillFamilyTechnical,
				Name:              "Green Ops",
				CurrentLevel:      2,
				RequiredLevel:     3,
				PriorityLevel:     "High",
				Theme:             "Ops",
				WhyItMatters:      "Why",
				ExampleBehaviours: `Do "this", now`,
				ImpactProfile:     uniformImpact(0.4),
			},
		},
	})
	uc := usecase.New(repo)

	var buf bytes.Buffer
	gt.NoError(t, report.WriteCSV(ctx, &buf, uc)).Required()

	out := buf.Bytes()

	t.Run("starts with UTF-8 BOM", func(t *testing.T) {
		gt.Bool(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF})).True()
	})

	t.Run("bit-exact contract", func(t *testing.T) {
		expected := "\xEF\xBB\xBF" +
			"Department,Department Risk,Skill,Skill Family,Risk Score,Severity,Recommended Action,Contribution,Target Maturity,Linked Theme,Priority,Current Maturity,Required Maturity,Learning Pathway\n" +
			`"Engineering, R&D",53%,Green Ops,Technical,0.5275,Moderate,"Do ""this"", now",Why,Active Contributor,Ops,High,Engaged Learner,Active Contributor,Apply skills in live projects with mentorship` + "\n"
		gt.Value(t, string(out)).Equal(expected)
	})
}

func TestWriteCSVQuotesNewlines(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(&model.Snapshot{
		Units: []*model.Unit{{ID: "x", Label: "Plain"}},
		Skills: []*model.Skill{
			{
				ID: 1, UnitID: "x",
				Family:            types.SkillFamilyValues,
				Name:              "Multi",
				CurrentLevel:      3,
				RequiredLevel:     3,
				ExampleBehaviours: "line one\nline two",
			},
		},
	})
	uc := usecase.New(repo)

	var buf bytes.Buffer
	gt.NoError(t, report.WriteCSV(ctx, &buf, uc)).Required()
	gt.String(t, buf.String()).Contains("\"line one\nline two\"")
}
