package orchestrator

import (
	"context"
	"strings"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/session"
)

// Reply is the assistant's answer to one user message.
type Reply struct {
	Content     string
	Intent      intent.ClassifiedIntent
	Routing     toolmap.Result
	ToolCalls   []model.ToolCall
	ToolResults []model.ToolOutcome
}

// ProcessMessage runs one utterance through classification, refinement,
// routing and tool execution. Tool failures become the reply content; the
// returned error is reserved for a cancelled context.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sc model.Scope, text string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	key := sessionKey(sc)
	unlock := o.locks.lock(key)
	defer unlock()

	sess, err := o.sessions.Load(ctx, key)
	if err != nil {
		o.l.Warnf(ctx, "%s: Load: %v", LogPrefixSession, err)
		sess = session.Session{Key: key}
	}

	ci := o.classifier.ClassifyAndRefine(text)
	ci = o.applyPending(ctx, &sess, ci)
	o.l.Infof(ctx, LogMsgClassified, ci.Intent, ci.Confidence, ci.Entities)

	reply := Reply{Intent: ci}
	reply.Routing = toolmap.Map(ci, sc.UserID)

	if !reply.Routing.Success {
		o.l.Warnf(ctx, "%s: "+LogMsgRoutingFailed, LogPrefixProcessMessage, reply.Routing.Error)
		reply.Content = reply.Routing.Message
		if needsTarget(ci.Intent) {
			sess.Pending = &session.Pending{
				Intent:   string(ci.Intent),
				Entities: ci.Entities.Clone(),
				AskedAt:  o.now(),
			}
		}
	} else {
		reply.Content = o.execute(ctx, sc, &reply)
	}

	o.remember(ctx, sess, text, reply.Content)
	return reply, nil
}

func (o *Orchestrator) execute(ctx context.Context, sc model.Scope, reply *Reply) string {
	name := reply.Routing.ToolName
	params := reply.Routing.ToolParameters
	reply.ToolCalls = append(reply.ToolCalls, model.ToolCall{Name: name, Parameters: params})

	o.l.Debugf(ctx, LogMsgCallingTool, name, params)
	res, err := o.registry.Execute(ctx, sc, name, params)
	if err != nil {
		o.l.Errorf(ctx, "%s: "+LogMsgToolFailed, LogPrefixProcessMessage, name, err)
		reply.ToolResults = append(reply.ToolResults, model.ToolOutcome{
			Name:    name,
			Success: false,
			Message: MsgToolError,
		})
		return MsgToolError
	}

	outcome := model.ToolOutcome{Name: name, Success: res.Success, Message: res.Message}
	if data := outcomeData(res); data != nil {
		outcome.Data = data
	}
	reply.ToolResults = append(reply.ToolResults, outcome)
	return res.Message
}

// applyPending treats an unrecognized reply to a clarifying question as the
// task the pending operation was waiting for.
func (o *Orchestrator) applyPending(ctx context.Context, sess *session.Session, ci intent.ClassifiedIntent) intent.ClassifiedIntent {
	pending := sess.Pending
	if pending == nil {
		return ci
	}
	sess.Pending = nil

	if o.now().Sub(pending.AskedAt) > o.pendingTTL || ci.Intent != intent.IntentUnknown {
		return ci
	}
	target := targetFromReply(ci.OriginalText)
	if target == "" {
		return ci
	}

	entities := intent.Entities(pending.Entities).Clone()
	entities[intent.SlotTitle] = []string{target}
	o.l.Infof(ctx, LogMsgPendingResolved, pending.Intent, target)

	return intent.ClassifiedIntent{
		Intent:       intent.Intent(pending.Intent),
		Confidence:   ci.Confidence,
		Entities:     entities,
		OriginalText: ci.OriginalText,
	}
}

func (o *Orchestrator) remember(ctx context.Context, sess session.Session, userText, assistantText string) {
	now := o.now()
	sess.Append(session.Turn{Role: string(model.RoleUser), Content: userText, At: now}, o.historyLimit)
	sess.Append(session.Turn{Role: string(model.RoleAssistant), Content: assistantText, At: now}, o.historyLimit)
	sess.UpdatedAt = now
	if err := o.sessions.Save(ctx, sess); err != nil {
		o.l.Warnf(ctx, "%s: Save: %v", LogPrefixSession, err)
	}
}

// ForgetSession drops the short-term memory of sc.
func (o *Orchestrator) ForgetSession(ctx context.Context, sc model.Scope) error {
	key := sessionKey(sc)
	unlock := o.locks.lock(key)
	defer unlock()
	return o.sessions.Delete(ctx, key)
}

func sessionKey(sc model.Scope) string {
	if sc.SessionID == "" {
		return sc.UserID
	}
	return sc.UserID + ":" + sc.SessionID
}

func needsTarget(in intent.Intent) bool {
	switch in {
	case intent.IntentCompleteTask, intent.IntentDeleteTask, intent.IntentUpdateTask:
		return true
	}
	return false
}

// targetFromReply turns "the grocery shopping task." into "grocery shopping".
func targetFromReply(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Trim(s, " .!?'\"")
	s = strings.TrimPrefix(s, "the ")
	s = strings.TrimPrefix(s, "my ")
	for _, suffix := range []string{" task", " todo", " one"} {
		s = strings.TrimSuffix(s, suffix)
	}
	return strings.TrimSpace(s)
}

func outcomeData(res agent.ToolResult) map[string]interface{} {
	data := map[string]interface{}{}
	if res.TaskID != "" {
		data["task_id"] = res.TaskID
	}
	if res.Task != nil {
		data["task"] = res.Task
	}
	if res.Tasks != nil {
		data["tasks"] = res.Tasks
	}
	for k, v := range res.Data {
		data[k] = v
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
