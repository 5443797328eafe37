package tools

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"todo-ai-chatbot/internal/model"
)

var prioritySynonyms = map[string]model.Priority{
	"urgent":    model.PriorityUrgent,
	"critical":  model.PriorityUrgent,
	"high":      model.PriorityHigh,
	"top":       model.PriorityHigh,
	"important": model.PriorityHigh,
	"medium":    model.PriorityMedium,
	"normal":    model.PriorityMedium,
	"low":       model.PriorityLow,
	"lowest":    model.PriorityLow,
}

var categoryPrefixes = []string{"category is ", "category ", "in ", "for "}

var completedWords = map[string]bool{
	"true": true, "yes": true, "done": true, "completed": true, "complete": true, "finished": true,
	"false": false, "no": false, "pending": false, "not done": false, "incomplete": false, "open": false,
}

func stringParam(params map[string]interface{}, key string) string {
	switch v := params[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// intParam accepts ints and the float64 values produced by JSON decoding.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// normalizePriority maps a spoken priority, e.g. "priority is high" or
// "critical", to a stored one.
func normalizePriority(raw string) (model.Priority, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "priority")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "is ")
	p, ok := prioritySynonyms[strings.TrimSpace(s)]
	return p, ok
}

// normalizeCategory strips the lead-in words the extractor keeps,
// e.g. "for work" or "category is home".
func normalizeCategory(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range categoryPrefixes {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(s, prefix))
		}
	}
	return s
}

func normalizeStatus(raw string) (model.TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "any":
		return model.TaskStatusAll, true
	case "pending", "open", "incomplete", "todo":
		return model.TaskStatusPending, true
	case "completed", "complete", "done", "finished":
		return model.TaskStatusCompleted, true
	}
	return "", false
}

func parseCompleted(raw string) (bool, bool) {
	v, ok := completedWords[strings.ToLower(strings.TrimSpace(raw))]
	return v, ok
}

// resolveDate turns a date entity into an absolute day.
func (b base) resolveDate(expr string) (*time.Time, error) {
	d, err := b.dates.Parse(expr, b.now())
	if err != nil {
		return nil, err
	}
	return &d, nil
}
