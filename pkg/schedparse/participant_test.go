package schedparse_test

import (
	"testing"

	"ai-scheduler/pkg/schedparse"
)

func TestParseParticipant(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"call with John", "John"},
		{"sync w/ Sara", "Sara"},
		{"planning with Ana, Bob", "Ana, Bob"},
		{"review with team_x", "team_x"},
		{"1:1 WITH Kim", "Kim"},
		{"standup tomorrow", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := schedparse.ParseParticipant(tt.text); got != tt.want {
			t.Errorf("ParseParticipant(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
