package router

import (
	"context"
	"regexp"
	"strings"
)

var (
	reHelp     = regexp.MustCompile(`(?i)^/(start|help)\b|^help\b`)
	reDelete   = regexp.MustCompile(`(?i)\b(delete|remove|cancel)\b`)
	reComplete = regexp.MustCompile(`(?i)\b(done|complete|completed|finish|finished)\b`)
	reList     = regexp.MustCompile(`(?i)\b(list|show|agenda|upcoming)\b`)
	reSchedule = regexp.MustCompile(`(?i)\b(schedule|add|create|remind)\b`)

	// Filler words dropped from delete/complete keywords so "delete the
	// standup meeting" matches a task titled "standup".
	reFiller = regexp.MustCompile(`(?i)\b(the|my|a|an|task|meeting|mark|as)\b`)

	reSpaces = regexp.MustCompile(`\s+`)
)

// Classify determines the user intent from a message. More destructive verbs
// win over scheduling verbs, so "cancel the standup I created" deletes
// instead of creating.
func (r *KeywordRouter) Classify(ctx context.Context, message string) (RouterOutput, error) {
	text := strings.TrimSpace(message)

	var out RouterOutput
	switch {
	case text == "":
		out = RouterOutput{Intent: RouterFallbackIntent}
	case reHelp.MatchString(text):
		out = RouterOutput{Intent: IntentHelp}
	case reDelete.MatchString(text):
		out = RouterOutput{Intent: IntentDelete, Keyword: extractKeyword(text, reDelete)}
	case reComplete.MatchString(text):
		out = RouterOutput{Intent: IntentComplete, Keyword: extractKeyword(text, reComplete)}
	case reList.MatchString(text):
		out = RouterOutput{Intent: IntentList}
	case reSchedule.MatchString(text):
		out = RouterOutput{Intent: IntentSchedule}
	default:
		out = RouterOutput{Intent: RouterFallbackIntent}
	}

	r.l.Debugf(ctx, "%s: %q -> %s", LogPrefixClassify, text, out.Intent)
	return out, nil
}

// extractKeyword strips the matched verb and filler words, leaving the part
// of the message that names the task.
func extractKeyword(text string, verb *regexp.Regexp) string {
	s := verb.ReplaceAllString(text, " ")
	s = reFiller.ReplaceAllString(s, " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
