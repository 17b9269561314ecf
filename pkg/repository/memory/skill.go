package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

type skillRepository struct {
	mu     sync.RWMutex
	skills []*model.Skill
	byUnit map[types.UnitID][]*model.Skill
}

func newSkillRepository(skills []*model.Skill) *skillRepository {
	repo := &skillRepository{
		skills: make([]*model.Skill, 0, len(skills)),
		byUnit: make(map[types.UnitID][]*model.Skill),
	}
	for _, s := range skills {
		copied := *s
		repo.skills = append(repo.skills, &copied)
		repo.byUnit[s.UnitID] = append(repo.byUnit[s.UnitID], &copied)
	}
	return repo
}

func (r *skillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySkills(r.skills), nil
}

func (r *skillRepository) ListByUnit(ctx context.Context, unitID types.UnitID) ([]*model.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// A unit without skills is a normal outcome, not an error
	return copySkills(r.byUnit[unitID]), nil
}

func copySkills(src []*model.Skill) []*model.Skill {
	skills := make([]*model.Skill, 0, len(src))
	for _, s := range src {
		copied := *s
		skills = append(skills, &copied)
	}
	return skills
}
