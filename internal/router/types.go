package router

// Intent represents the user's intention
type Intent string

const (
	IntentSchedule     Intent = "SCHEDULE"
	IntentList         Intent = "LIST"
	IntentDelete       Intent = "DELETE"
	IntentComplete     Intent = "COMPLETE"
	IntentHelp         Intent = "HELP"
	IntentConversation Intent = "CONVERSATION"
)

// RouterOutput is the structured classification result
type RouterOutput struct {
	Intent  Intent
	Keyword string // remainder after the verb, used by delete/complete lookups
}
