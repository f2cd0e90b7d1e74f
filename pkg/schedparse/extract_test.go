package schedparse_test

import (
	"errors"
	"testing"
	"time"

	"ai-scheduler/pkg/schedparse"
)

func TestExtract(t *testing.T) {
	e := schedparse.NewExtractor()
	// Wednesday, May 1, 2024, 15:30 UTC
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	t.Run("title, duration and end instant", func(t *testing.T) {
		got, err := e.Extract("schedule standup tomorrow at 9am for 15m", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "standup" {
			t.Errorf("title = %q, want %q", got.Title, "standup")
		}
		if got.Who != "" {
			t.Errorf("who = %q, want empty", got.Who)
		}
		wantStart := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", got.Start, wantStart)
		}
		if got.End == nil {
			t.Fatal("expected an end instant")
		}
		wantEnd := wantStart.Add(15 * time.Minute)
		if !got.End.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", got.End, wantEnd)
		}
	})

	t.Run("participant clause, no duration", func(t *testing.T) {
		got, err := e.Extract("schedule call next monday 3pm with John", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "call" {
			t.Errorf("title = %q, want %q", got.Title, "call")
		}
		if got.Who != "John" {
			t.Errorf("who = %q, want %q", got.Who, "John")
		}
		// Next Monday after Wednesday May 1 is May 6.
		wantStart := time.Date(2024, 5, 6, 15, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", got.Start, wantStart)
		}
		if got.End != nil {
			t.Errorf("end = %v, want absent", got.End)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		got, err := e.Extract("schedule review tomorrow", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Repeat != schedparse.RepeatNone {
			t.Errorf("repeat = %q, want %q", got.Repeat, schedparse.RepeatNone)
		}
		if got.Remind != schedparse.DefaultRemindMinutes {
			t.Errorf("remind = %q, want %q", got.Remind, schedparse.DefaultRemindMinutes)
		}
		if got.Notes != "" {
			t.Errorf("notes = %q, want empty", got.Notes)
		}
	})

	t.Run("untitled fallback", func(t *testing.T) {
		got, err := e.Extract("schedule tomorrow at 9am", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != schedparse.FallbackTitle {
			t.Errorf("title = %q, want %q", got.Title, schedparse.FallbackTitle)
		}
	})

	t.Run("token-free text is refused", func(t *testing.T) {
		_, err := e.Extract("blah blah", now)
		if !errors.Is(err, schedparse.ErrUnresolvedTime) {
			t.Fatalf("error = %v, want ErrUnresolvedTime", err)
		}
	})

	t.Run("invalid date fails with unresolved time", func(t *testing.T) {
		_, err := e.Extract("schedule party 31 feb", now)
		if !errors.Is(err, schedparse.ErrUnresolvedTime) {
			t.Fatalf("error = %v, want ErrUnresolvedTime", err)
		}
	})
}

func TestStripTokensIdempotent(t *testing.T) {
	inputs := []string{
		"schedule standup tomorrow at 9am for 15m",
		"schedule call next monday 3pm with John",
		"schedule review on 25 aug 3:30pm for 30m with Sara",
		"create dinner 15 sept evening",
		"add sync 2024-06-01 at 10:00",
		"plain text with no tokens at all",
	}

	for _, in := range inputs {
		once := schedparse.StripTokens(in)
		twice := schedparse.StripTokens(once)
		if once != twice {
			t.Errorf("StripTokens not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
