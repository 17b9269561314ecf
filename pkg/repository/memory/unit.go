package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

type unitRepository struct {
	mu    sync.RWMutex
	order []types.UnitID
	units map[types.UnitID]*model.Unit
}

func newUnitRepository(units []*model.Unit) *unitRepository {
	repo := &unitRepository{
		units: make(map[types.UnitID]*model.Unit, len(units)),
	}
	for _, u := range units {
		if _, exists := repo.units[u.ID]; exists {
			continue
		}
		copied := *u
		repo.units[u.ID] = &copied
		repo.order = append(repo.order, u.ID)
	}
	return repo
}

func (r *unitRepository) Get(ctx context.Context, id types.UnitID) (*model.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, exists := r.units[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "unit not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	copied := *unit
	return &copied, nil
}

func (r *unitRepository) List(ctx context.Context) ([]*model.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]*model.Unit, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.units[id]
		units = append(units, &copied)
	}
	return units, nil
}
