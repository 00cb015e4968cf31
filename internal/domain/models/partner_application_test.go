package models

import "testing"

func TestNormalizeApplicationStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "approved", ApplicationStatusApproved},
		{"uppercase", "REJECTED", ApplicationStatusRejected},
		{"whitespace trimmed", "  Pending ", ApplicationStatusPending},
		{"empty defaults to pending", "", ApplicationStatusPending},
		{"unknown defaults to pending", "archived", ApplicationStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeApplicationStatus(tt.input); got != tt.want {
				t.Errorf("NormalizeApplicationStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidApplicationStatus(t *testing.T) {
	valid := []string{"pending", "Approved", " rejected "}
	for _, s := range valid {
		if !IsValidApplicationStatus(s) {
			t.Errorf("IsValidApplicationStatus(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "archived", "approve", "0"}
	for _, s := range invalid {
		if IsValidApplicationStatus(s) {
			t.Errorf("IsValidApplicationStatus(%q) = true, want false", s)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: " Admin "}
	if !admin.IsAdmin() {
		t.Error("expected role ' Admin ' to count as admin")
	}

	partner := &User{Role: RolePartner}
	if partner.IsAdmin() {
		t.Error("partner role must not count as admin")
	}
}
