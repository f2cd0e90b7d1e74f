package middleware

import (
	"ai-scheduler/config"
	"ai-scheduler/pkg/log"
)

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l       log.Logger
	limiter *ipRateLimiter
}

// New creates the middleware bundle.
func New(l log.Logger, webhookCfg config.WebhookConfig) Middleware {
	perMin := webhookCfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}
	return Middleware{
		l:       l,
		limiter: newIPRateLimiter(perMin),
	}
}
