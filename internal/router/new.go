package router

import (
	"context"

	"ai-scheduler/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) (RouterOutput, error)
}

// KeywordRouter classifies user intent by matching verbs in the message.
// Deterministic on purpose: the same text always routes the same way.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
	}
}
