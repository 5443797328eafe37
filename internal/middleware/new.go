package middleware

import (
	"todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/scope"
)

// RateLimitConfig bounds requests per client.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, rl RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(rl.PerMinute, rl.Burst),
	}
}
