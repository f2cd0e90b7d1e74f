package schedparse

import "regexp"

var reParticipant = regexp.MustCompile(`(?i)(?:with|w/)\s+([a-z0-9 ,._-]+)`)

// ParseParticipant extracts the participant from a "with X" or "w/ X" clause.
// The capture is returned exactly as matched (no additional trimming); text
// without a participant clause yields the empty string.
func ParseParticipant(text string) string {
	if m := reParticipant.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
