package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/types"
)

// UnitEdge is a relationship between two units. Edges are carried through
// the snapshot for presentation consumers; risk scoring never propagates
// across them.
type UnitEdge struct {
	ID     string         `json:"id"`
	Source types.UnitID   `json:"source"`
	Target types.UnitID   `json:"target"`
	Kind   types.EdgeKind `json:"relationship"`
	Weight float64        `json:"weight"`
}

// Validate checks structural integrity of the edge record
func (e *UnitEdge) Validate() error {
	if err := e.Source.Validate(); err != nil {
		return goerr.Wrap(err, "edge has no source", goerr.V("edge", e.ID))
	}
	if err := e.Target.Validate(); err != nil {
		return goerr.Wrap(err, "edge has no target", goerr.V("edge", e.ID))
	}
	if err := e.Kind.Validate(); err != nil {
		return goerr.Wrap(err, "invalid edge", goerr.V("edge", e.ID))
	}
	if e.Weight < 0 || e.Weight > 1 {
		return goerr.New("edge weight out of range",
			goerr.V("edge", e.ID), goerr.V("weight", e.Weight))
	}
	return nil
}
