package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// EdgeKind represents the relationship category of a unit edge
type EdgeKind string

const (
	// EdgeKindSharedGap links two units exposed to the same capability gap
	EdgeKindSharedGap EdgeKind = "shared_gap"
	// EdgeKindDependency links a unit to another it depends on across functions
	EdgeKindDependency EdgeKind = "cross_unit_dependency"
)

// Validate checks if the EdgeKind is a known relationship category
func (k EdgeKind) Validate() error {
	switch k {
	case EdgeKindSharedGap, EdgeKindDependency:
		return nil
	}
	return goerr.New("unknown edge kind", goerr.V("kind", k))
}

// String returns the string representation of EdgeKind
func (k EdgeKind) String() string {
	return string(k)
}
