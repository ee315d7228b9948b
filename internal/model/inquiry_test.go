package model

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{StatusPending, true},
		{StatusContacted, true},
		{StatusCompleted, true},
		{"done", false},
		{"PENDING", false},
		{"", false},
	}

	for _, tt := range tests {
		got := ValidStatus(tt.status)
		if got != tt.expected {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}
