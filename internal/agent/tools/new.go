package tools

import (
	"time"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/task"
	"todo-ai-chatbot/pkg/datemath"
	pkgLog "todo-ai-chatbot/pkg/log"
)

// Deps are shared by every task tool.
type Deps struct {
	Logger  pkgLog.Logger
	UseCase task.UseCase
	Dates   *datemath.Parser
	Now     func() time.Time // defaults to time.Now
}

// base carries what the task tools share.
type base struct {
	l     pkgLog.Logger
	uc    task.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

func newBase(d Deps) base {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return base{l: d.Logger, uc: d.UseCase, dates: d.Dates, now: now}
}

// Register adds every chat tool to r in dispatch order.
func Register(r *agent.ToolRegistry, d Deps) {
	b := newBase(d)
	r.Register(&AddTaskTool{base: b})
	r.Register(&ListTasksTool{base: b})
	r.Register(&CompleteTaskTool{base: b})
	r.Register(&DeleteTaskTool{base: b})
	r.Register(&UpdateTaskTool{base: b})
	r.Register(&HelpTool{})
}
