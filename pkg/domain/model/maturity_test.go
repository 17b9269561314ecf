package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

func TestMaturityTable(t *testing.T) {
	levels := model.MaturityLevels()
	gt.Array(t, levels).Length(4)

	gt.Value(t, levels[0].Label).Equal("Curious Explorer")
	gt.Value(t, levels[1].Label).Equal("Engaged Learner")
	gt.Value(t, levels[2].Label).Equal("Active Contributor")
	gt.Value(t, levels[3].Label).Equal("Conscious Changemaker")

	for i, m := range levels {
		gt.Number(t, m.Level).Equal(i + 1)
		gt.String(t, m.Short).NotEqual("")
		gt.String(t, m.Description).NotEqual("")
	}
}

func TestMaturityLabel(t *testing.T) {
	gt.Value(t, model.MaturityLabel(1)).Equal("Curious Explorer")
	gt.Value(t, model.MaturityLabel(4)).Equal("Conscious Changemaker")
	gt.Value(t, model.MaturityLabel(0)).Equal("Unknown")
	gt.Value(t, model.MaturityLabel(5)).Equal("Unknown")
}

func TestMaturityShort(t *testing.T) {
	gt.Value(t, model.MaturityShort(2)).Equal("Learner")
	gt.Value(t, model.MaturityShort(3)).Equal("Contributor")
	gt.Value(t, model.MaturityShort(99)).Equal("—")
}
