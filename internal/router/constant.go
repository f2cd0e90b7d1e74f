package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// RouterFallbackIntent is used when no verb matches the message.
const RouterFallbackIntent = IntentConversation
