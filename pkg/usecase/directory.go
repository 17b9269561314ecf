package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// UnitDirectory returns the reconciled knowledge bundle for a unit:
// narrative overview, maturity stages, and scorecard. The second return
// is false when the knowledge resource has no overview for the unit or
// no knowledge service is attached.
func (uc *UseCases) UnitDirectory(ctx context.Context, unitID types.UnitID) (*model.UnitProfile, bool, error) {
	if uc.knowledge == nil {
		return nil, false, nil
	}

	unit, err := uc.repo.Unit().Get(ctx, unitID)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get unit", goerr.V("unit", unitID))
	}

	profile, ok := uc.knowledge.UnitProfile(unit.DisplayLabel())
	return profile, ok, nil
}
