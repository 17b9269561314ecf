package model

import "github.com/google/uuid"

// SnapshotVersion identifies one immutable analysis snapshot. Callers
// memoizing derived results should key on (version, unit).
type SnapshotVersion string

// NewSnapshotVersion generates a new UUID v4 SnapshotVersion
func NewSnapshotVersion() SnapshotVersion {
	return SnapshotVersion(uuid.New().String())
}

// Snapshot is the immutable input bundle of one analysis session. The
// engine never mutates it; all derived values are pure functions of it.
type Snapshot struct {
	Version SnapshotVersion
	Units   []*Unit
	Skills  []*Skill
	Edges   []*UnitEdge
}
