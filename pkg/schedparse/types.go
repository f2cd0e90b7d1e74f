package schedparse

import "time"

// Repeat describes how a scheduled task recurs.
type Repeat string

// RepeatNone is the only repeat value this parser ever produces; recurring
// schedules are created by editing the task afterwards.
const RepeatNone Repeat = "none"

// DefaultRemindMinutes is the reminder lead time attached to every parsed
// schedule, expressed in minutes. "none" disables the reminder.
const DefaultRemindMinutes = "15"

// FallbackTitle is used when nothing remains of the utterance after token
// stripping.
const FallbackTitle = "Untitled"

// ParsedSchedule is the structured task payload assembled from a single user
// utterance. It is produced once per utterance and never mutated by the
// parser; ownership passes to the caller, which is free to edit fields.
type ParsedSchedule struct {
	Title  string
	Who    string // participant from a "with X" clause, may be empty
	Start  time.Time
	End    *time.Time // nil unless a duration was given
	Repeat Repeat
	Remind string // minutes as string, see DefaultRemindMinutes
	Notes  string
}
