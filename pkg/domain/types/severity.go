package types

import "strings"

// Severity represents a discrete gap severity bucket
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityModerate Severity = "Moderate"
	SeverityNoGap    Severity = "No Gap"
)

// SeverityFromGap derives the severity bucket from a level gap.
// Critical for gap >= 2, Moderate for gap == 1, otherwise No Gap.
// Negative gaps (over-qualification) fall into No Gap.
func SeverityFromGap(gap int) Severity {
	switch {
	case gap >= 2:
		return SeverityCritical
	case gap == 1:
		return SeverityModerate
	default:
		return SeverityNoGap
	}
}

// IsCritical reports whether the severity string means Critical,
// ignoring case. Unrecognized strings are not critical.
func (s Severity) IsCritical() bool {
	return strings.EqualFold(string(s), string(SeverityCritical))
}

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}
