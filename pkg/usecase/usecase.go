package usecase

import (
	"github.com/secmon-lab/gsip/pkg/domain/interfaces"
	"github.com/secmon-lab/gsip/pkg/domain/model/config"
	"github.com/secmon-lab/gsip/pkg/service/knowledge"
)

// UseCases wires the scoring, classification, and recommendation logic
// over one immutable snapshot repository and the reconciled knowledge
// resource. All methods are pure functions of the snapshot.
type UseCases struct {
	repo      interfaces.Repository
	knowledge *knowledge.Service
	scoring   *config.ScoringConfig
}

type Option func(*UseCases)

// WithScoringConfig overrides the default risk weighting
func WithScoringConfig(cfg *config.ScoringConfig) Option {
	return func(uc *UseCases) {
		uc.scoring = cfg
	}
}

// WithKnowledge attaches the knowledge reconciliation service. Without
// it, recommendations fall back to the skills' own narrative fields.
func WithKnowledge(svc *knowledge.Service) Option {
	return func(uc *UseCases) {
		uc.knowledge = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.scoring == nil {
		uc.scoring = config.DefaultScoringConfig()
	}

	return uc
}
