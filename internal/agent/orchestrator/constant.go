package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.agent.orchestrator.ProcessMessage"
	LogPrefixSession        = "internal.agent.orchestrator.session"
)

// Log messages
const (
	LogMsgClassified      = "intent=%s confidence=%.2f entities=%v"
	LogMsgRoutingFailed   = "routing failed: %s"
	LogMsgCallingTool     = "calling tool: %s with args: %+v"
	LogMsgToolFailed      = "tool %s failed: %v"
	LogMsgPendingResolved = "resolved pending %s with target %q"
)

// User-facing messages
const (
	MsgToolError = "An error occurred while executing the requested action"
)

// Configuration
const (
	DefaultHistoryLimit = 20
	DefaultPendingTTL   = 5 * time.Minute
)
