package interfaces

import (
	"context"

	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// UnitRepository defines the interface for organisational unit access
type UnitRepository interface {
	// Get retrieves a unit by ID
	Get(ctx context.Context, id types.UnitID) (*model.Unit, error)

	// List retrieves all units in snapshot order
	List(ctx context.Context) ([]*model.Unit, error)
}

// SkillRepository defines the interface for skill record access
type SkillRepository interface {
	// List retrieves all skills in snapshot order
	List(ctx context.Context) ([]*model.Skill, error)

	// ListByUnit retrieves all skills owned by a unit, preserving
	// snapshot order
	ListByUnit(ctx context.Context, unitID types.UnitID) ([]*model.Skill, error)
}

// EdgeRepository defines the interface for unit relationship access
type EdgeRepository interface {
	// List retrieves all unit edges
	List(ctx context.Context) ([]*model.UnitEdge, error)
}

// Repository aggregates read access to one immutable snapshot
type Repository interface {
	Unit() UnitRepository
	Skill() SkillRepository
	Edge() EdgeRepository

	// Version identifies the snapshot; derived results may be memoized
	// per (version, unit) by callers
	Version() model.SnapshotVersion
}
