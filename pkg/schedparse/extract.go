package schedparse

import (
	"regexp"
	"strings"
	"time"
)

// Extractor turns a free-form scheduling utterance into a ParsedSchedule.
// It orchestrates the date/time resolver, the duration and participant
// parsers, and derives a clean title by stripping every recognized token.
// Pure and stateless; safe for concurrent use.
type Extractor struct {
	when *Resolver
}

// NewExtractor creates a new schedule extractor.
func NewExtractor() *Extractor {
	return &Extractor{when: NewResolver()}
}

var (
	// Scheduling verbs and the trailing participant clause ("with" to end of
	// text) are removed in a single combined pass.
	reVerbAndWith = regexp.MustCompile(`(?i)\b(?:schedule|add|create)\b|\bwith\b\s.*$`)

	// Token shapes recognized by the detectors in when.go and duration.go,
	// stripped anywhere in the remaining text. Bare meridiem times ("3pm")
	// count as time tokens even without a leading "at".
	stripPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:tomorrow|today)\b`),
		regexp.MustCompile(`(?i)\bnext\s+[a-z]+\b`),
		regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`(?i)\b(?:on\s+)?\d{1,2}\s+(?:sept|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`),
		regexp.MustCompile(`(?i)\b(?:on\s+)?\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}(?::\d{2})?\s?(?:am|pm)\b`),
		regexp.MustCompile(`(?i)\bat\s+\d{1,2}(?::\d{2})?\b`),
		regexp.MustCompile(`\b\d{1,2}:\d{2}\b`),
		regexp.MustCompile(`(?i)\bfor\s+\d+\s?(?:m(?:in(?:utes?)?)?|h(?:r|ours?)?)?\b`),
		regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening)\b`),
	}

	reSpaceRun = regexp.MustCompile(`\s+`)
)

// Extract resolves text into a structured schedule relative to now.
// Participant and duration are computed independently of date resolution; a
// text with no resolvable date/time fails with ErrUnresolvedTime.
func (e *Extractor) Extract(text string, now time.Time) (ParsedSchedule, error) {
	who := ParseParticipant(text)
	durationMin := ParseDurationMinutes(text)

	// The resolver defaults a token-free text to the next 09:00 slot; the
	// extractor is stricter and refuses utterances that carry no date or
	// time token at all.
	if !hasDateTimeToken(text) {
		return ParsedSchedule{}, ErrUnresolvedTime
	}

	start, err := e.when.Resolve(text, now)
	if err != nil {
		return ParsedSchedule{}, err
	}

	title := StripTokens(text)
	if title == "" {
		title = FallbackTitle
	}

	var end *time.Time
	if durationMin > 0 {
		t := start.Add(time.Duration(durationMin) * time.Minute)
		end = &t
	}

	return ParsedSchedule{
		Title:  title,
		Who:    who,
		Start:  start,
		End:    end,
		Repeat: RepeatNone,
		Remind: DefaultRemindMinutes,
		Notes:  "",
	}, nil
}

// hasDateTimeToken reports whether the text contains at least one recognized
// date token, clock time or day-part word.
func hasDateTimeToken(text string) bool {
	for _, det := range dateDetectors {
		if det.re.MatchString(text) {
			return true
		}
	}
	return reTime12.MatchString(text) || reTime24.MatchString(text) ||
		reMorning.MatchString(text) || reNoon.MatchString(text) || reEvening.MatchString(text)
}

// StripTokens removes the scheduling verb, the trailing "with …" clause and
// every recognized date/time/duration token from text, collapsing whitespace
// runs to single spaces. Applying it to already-stripped text is a no-op.
func StripTokens(text string) string {
	s := reVerbAndWith.ReplaceAllString(text, " ")
	for _, re := range stripPatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))
}
