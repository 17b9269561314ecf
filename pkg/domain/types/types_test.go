package types_test

import (
	"testing"

	"github.com/secmon-lab/gsip/pkg/domain/types"
)

func TestSeverityFromGap(t *testing.T) {
	tests := []struct {
		name     string
		gap      int
		expected types.Severity
	}{
		{name: "gap of 3 is critical", gap: 3, expected: types.SeverityCritical},
		{name: "gap of 2 is critical", gap: 2, expected: types.SeverityCritical},
		{name: "gap of 1 is moderate", gap: 1, expected: types.SeverityModerate},
		{name: "gap of 0 is no gap", gap: 0, expected: types.SeverityNoGap},
		{name: "negative gap (over-qualified) is no gap", gap: -1, expected: types.SeverityNoGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.SeverityFromGap(tt.gap); got != tt.expected {
				t.Errorf("SeverityFromGap(%d) = %v, want %v", tt.gap, got, tt.expected)
			}
		})
	}
}

func TestSeverityIsCritical(t *testing.T) {
	tests := []struct {
		severity types.Severity
		expected bool
	}{
		{severity: "Critical", expected: true},
		{severity: "critical", expected: true},
		{severity: "CRITICAL", expected: true},
		{severity: "Moderate", expected: false},
		{severity: "No Gap", expected: false},
		{severity: "", expected: false},
		{severity: "severe", expected: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			if got := tt.severity.IsCritical(); got != tt.expected {
				t.Errorf("IsCritical(%q) = %v, want %v", tt.severity, got, tt.expected)
			}
		})
	}
}

func TestSkillFamilyValidate(t *testing.T) {
	for _, f := range types.SkillFamilies() {
		if err := f.Validate(); err != nil {
			t.Errorf("Validate(%q) returned error: %v", f, err)
		}
	}
	if err := types.SkillFamily("Leadership").Validate(); err == nil {
		t.Error("Validate should reject an unknown family")
	}
	if err := types.SkillFamily("").Validate(); err == nil {
		t.Error("Validate should reject an empty family")
	}
}

func TestEdgeKindValidate(t *testing.T) {
	if err := types.EdgeKindSharedGap.Validate(); err != nil {
		t.Errorf("shared_gap should be valid: %v", err)
	}
	if err := types.EdgeKindDependency.Validate(); err != nil {
		t.Errorf("cross_unit_dependency should be valid: %v", err)
	}
	if err := types.EdgeKind("friendship").Validate(); err == nil {
		t.Error("Validate should reject an unknown edge kind")
	}
}

func TestUnitIDValidate(t *testing.T) {
	if err := types.UnitID("eng").Validate(); err != nil {
		t.Errorf("non-empty unit ID should be valid: %v", err)
	}
	if err := types.UnitID("").Validate(); err == nil {
		t.Error("empty unit ID should be invalid")
	}
}
