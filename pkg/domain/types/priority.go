package types

import "strings"

// PriorityLevel represents an organisational urgency classification.
// The vocabulary is open: values outside the known set are accepted and
// fall into the lowest scoring weight bucket (see config.ScoringConfig).
type PriorityLevel string

const (
	PriorityCritical PriorityLevel = "Critical"
	PriorityHigh     PriorityLevel = "High"
	PriorityMedium   PriorityLevel = "Medium"
	PriorityLow      PriorityLevel = "Low"
)

// Normalize collapses the priority string to its lowercase form for
// case-insensitive tier matching.
func (p PriorityLevel) Normalize() string {
	return strings.ToLower(string(p))
}

// String returns the string representation of PriorityLevel
func (p PriorityLevel) String() string {
	return string(p)
}
