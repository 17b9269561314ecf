package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/interfaces"
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

// ErrNotFound is returned when a requested record does not exist in the
// snapshot
var ErrNotFound = goerr.New("record not found")

// Memory is an immutable in-memory snapshot repository. It is the only
// repository backend: the engine works on read-only snapshots supplied
// by an external data-access collaborator, so there is nothing to persist.
type Memory struct {
	version model.SnapshotVersion
	unit    *unitRepository
	skill   *skillRepository
	edge    *edgeRepository
}

var _ interfaces.Repository = &Memory{}

// New builds a repository over the given snapshot. The snapshot is copied
// shallowly; records are copied on read to keep the snapshot immutable.
func New(snapshot *model.Snapshot) *Memory {
	version := snapshot.Version
	if version == "" {
		version = model.NewSnapshotVersion()
	}

	return &Memory{
		version: version,
		unit:    newUnitRepository(snapshot.Units),
		skill:   newSkillRepository(snapshot.Skills),
		edge:    newEdgeRepository(snapshot.Edges),
	}
}

func (m *Memory) Unit() interfaces.UnitRepository {
	return m.unit
}

func (m *Memory) Skill() interfaces.SkillRepository {
	return m.skill
}

func (m *Memory) Edge() interfaces.EdgeRepository {
	return m.edge
}

func (m *Memory) Version() model.SnapshotVersion {
	return m.version
}
