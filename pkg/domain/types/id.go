package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// UnitID represents a unique identifier for an organisational unit
type UnitID string

// Validate checks if the UnitID is valid
func (u UnitID) Validate() error {
	if u == "" {
		return goerr.New("unit ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UnitID
func (u UnitID) String() string {
	return string(u)
}

// SkillID represents a unique identifier for a skill record
type SkillID int64
