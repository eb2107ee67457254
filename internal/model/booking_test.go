package model

import "testing"

func TestValidBookingStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{BookingPending, true},
		{BookingAccepted, true},
		{BookingRejected, true},
		{BookingCancelled, true},
		{BookingCompleted, true},
		{"open", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidBookingStatus(tt.status); got != tt.expected {
			t.Errorf("ValidBookingStatus(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}

func TestBookingTerminal(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{BookingPending, false},
		{BookingAccepted, false},
		{BookingRejected, true},
		{BookingCancelled, true},
		{BookingCompleted, true},
		// Unknown statuses are not terminal, they are invalid.
		{"", false},
	}

	for _, tt := range tests {
		if got := BookingTerminal(tt.status); got != tt.expected {
			t.Errorf("BookingTerminal(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}
