package schedparse_test

import (
	"testing"

	"ai-scheduler/pkg/schedparse"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"standup for 15m", 15},
		{"retro for 90 minutes", 90},
		{"workshop for 2 hours", 120},
		{"pairing for 1 hr", 60},
		{"deep work for 3h", 180},
		{"for 45 min", 45},
		{"", 0},
		{"lunch for an hour", 0},
		{"no duration here", 0},
	}

	for _, tt := range tests {
		if got := schedparse.ParseDurationMinutes(tt.text); got != tt.want {
			t.Errorf("ParseDurationMinutes(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
