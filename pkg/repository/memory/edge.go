package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/gsip/pkg/domain/model"
)

type edgeRepository struct {
	mu    sync.RWMutex
	edges []*model.UnitEdge
}

func newEdgeRepository(edges []*model.UnitEdge) *edgeRepository {
	repo := &edgeRepository{
		edges: make([]*model.UnitEdge, 0, len(edges)),
	}
	for _, e := range edges {
		copied := *e
		repo.edges = append(repo.edges, &copied)
	}
	return repo
}

func (r *edgeRepository) List(ctx context.Context) ([]*model.UnitEdge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	edges := make([]*model.UnitEdge, 0, len(r.edges))
	for _, e := range r.edges {
		copied := *e
		edges = append(edges, &copied)
	}
	return edges, nil
}
