package model

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusIdle, "idle"},
		{StatusStarting, "starting"},
		{StatusDownloading, "downloading"},
		{StatusCompleted, "completed"},
		{StatusCancelled, "cancelled"},
		{StatusError, "error"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Status.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestStatusIsActive(t *testing.T) {
	active := []Status{StatusStarting, StatusDownloading}
	inactive := []Status{StatusIdle, StatusCompleted, StatusCancelled, StatusError}

	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("Expected %s to be active", s)
		}
	}

	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("Expected %s to not be active", s)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusCancelled, StatusError}
	nonTerminal := []Status{StatusIdle, StatusStarting, StatusDownloading}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("Expected %s to be terminal", s)
		}
	}

	for _, s := range nonTerminal {
		if s.IsTerminal() {
			t.Errorf("Expected %s to not be terminal", s)
		}
	}
}

func TestTrackDisplayName(t *testing.T) {
	track := Track{Artist: "Daft Punk", Title: "Harder Better Faster Stronger", Playable: true}

	want := "Daft Punk - Harder Better Faster Stronger"
	if got := track.DisplayName(); got != want {
		t.Errorf("DisplayName() = %q, want %q", got, want)
	}
}
