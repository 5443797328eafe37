package intent

import "slices"

// Intent represents user's intention
type Intent string

const (
	IntentAddTask      Intent = "add_task"
	IntentListTasks    Intent = "list_tasks"
	IntentCompleteTask Intent = "complete_task"
	IntentDeleteTask   Intent = "delete_task"
	IntentUpdateTask   Intent = "update_task"
	IntentHelp         Intent = "help"
	IntentUnknown      Intent = "unknown"
)

// Slot names understood by the extractor and the tool router.
const (
	SlotTitle       = "title"
	SlotDate        = "date"
	SlotPriority    = "priority"
	SlotCategory    = "category"
	SlotTaskID      = "task_id"
	SlotDescription = "description"
	SlotNotes       = "notes"
	SlotCompleted   = "completed"
	SlotStatus      = "status"
)

// Entities maps a slot name to every value captured for it, in match order.
// A slot that is present always holds at least one value.
type Entities map[string][]string

// First returns the first value captured for slot.
func (e Entities) First(slot string) (string, bool) {
	vs, ok := e[slot]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Has reports whether slot was captured.
func (e Entities) Has(slot string) bool {
	_, ok := e[slot]
	return ok
}

// Clone returns a deep copy of e. A nil map clones to an empty one.
func (e Entities) Clone() Entities {
	out := make(Entities, len(e))
	for k, v := range e {
		out[k] = slices.Clone(v)
	}
	return out
}

// ClassifiedIntent is the outcome of classifying one utterance.
// Values are never mutated after construction; refinement returns a new one.
type ClassifiedIntent struct {
	Intent       Intent   `json:"intent"`
	Confidence   float64  `json:"confidence"`
	Entities     Entities `json:"entities"`
	OriginalText string   `json:"original_text"`
}

// Score is the raw, unclipped score of one intent.
type Score struct {
	Intent Intent  `json:"intent"`
	Score  float64 `json:"score"`
}

// IntentPattern is one row of the intent pattern table.
type IntentPattern struct {
	Intent Intent  `json:"intent"`
	Source string  `json:"pattern"`
	Weight float64 `json:"weight"`
}

// EntityPattern is one row of the entity pattern table.
// Rows for a slot are tried in order and the first row with a match wins.
type EntityPattern struct {
	Slot   string `json:"slot"`
	Source string `json:"pattern"`
}
