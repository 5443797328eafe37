package intent

import "slices"

// Pattern sources are matched against lower-cased text. Their literal words also
// feed the word-overlap term of the score, so they must not carry inline flags.

// intentPatterns is the intent table. Intent evaluation order, and so
// tie-breaking, follows the first appearance of each intent in this list.
var intentPatterns = []IntentPattern{
	{IntentAddTask, `\b(add|create|make|new|establish|setup)\b.*\b(task|todo|item|thing|note|reminder)\b`, DefaultMatchWeight},
	{IntentAddTask, `\b(task|todo|item|thing|note|reminder)\b.*\b(add|create|make|new|establish|setup)\b`, DefaultMatchWeight},
	{IntentAddTask, `\b(remind me to|need to|want to|should|must|have to)\b`, DefaultMatchWeight},
	{IntentAddTask, `\b(make a note|write down|put in my list)\b`, DefaultMatchWeight},

	{IntentListTasks, `\b(show|list|view|see|display|fetch|get)\b.*\b(task|todo|item|things|notes|reminders)\b`, DefaultMatchWeight},
	{IntentListTasks, `\b(what are|do i have|show me|display|list)\b.*\b(task|todo|item|things|notes|reminders)\b`, DefaultMatchWeight},
	{IntentListTasks, `\b(my tasks|my todos|my list|current tasks)\b`, DefaultMatchWeight},

	{IntentCompleteTask, `\b(mark|complete|finish|done|check off|tick off)\b.*\b(task|todo|item|thing)\b`, DefaultMatchWeight},
	{IntentCompleteTask, `\b(task|todo|item|thing)\b.*\b(mark|complete|finish|done|as done)\b`, DefaultMatchWeight},
	{IntentCompleteTask, `\b(is done|finished|completed|checked|ticked)\b`, DefaultMatchWeight},
	{IntentCompleteTask, `\b(i'm done with|i finished|completed|done with)\b`, DefaultMatchWeight},

	{IntentDeleteTask, `\b(delete|remove|erase|cancel|eliminate|get rid of)\b.*\b(task|todo|item|thing)\b`, DefaultMatchWeight},
	{IntentDeleteTask, `\b(task|todo|item|thing)\b.*\b(delete|remove|erase|cancel|eliminate|get rid of)\b`, DefaultMatchWeight},

	{IntentUpdateTask, `\b(update|change|modify|edit|adjust|alter|redo|revise)\b.*\b(task|todo|item|thing)\b`, DefaultMatchWeight},
	{IntentUpdateTask, `\b(task|todo|item|thing)\b.*\b(update|change|modify|edit|adjust|alter|redo|revise)\b`, DefaultMatchWeight},
	{IntentUpdateTask, `\b(rename|change to|modify to|update to)\b`, DefaultMatchWeight},

	{IntentHelp, `\b(help|support|assistance|instruction|how to|what can you do|can you|could you)\b`, DefaultMatchWeight},
	{IntentHelp, `\b(tutorial|guide|assist|aid|manual)\b`, DefaultMatchWeight},
}

// entityPatterns is the slot table. Group 1 of every match is the value.
var entityPatterns = []EntityPattern{
	{SlotTitle, `(?:add|create|make|new)\s+(?:a\s+)?(?:task|todo|note|item|reminder)\s+to\s+(.*?)(?:\s+and|\s+for|\s+by|\s+on|\s+at|\.|$)`},
	{SlotTitle, `(?:remind me to|need to|want to)\s+(.*?)(?:\s+and|\s+for|\s+by|\s+on|\s+at|\.|$)`},
	{SlotTitle, `(?:update|change|modify|edit|rename)\s+(?:task|todo|item)\s+(?:named\s+|called\s+|titled\s+)?(.*)`},

	{SlotDate, `\b(\d{4}-\d{2}-\d{2})\b`},
	{SlotDate, `\b(\d{1,2}[/-]\d{1,2}[/-]\d{4})\b`},
	{SlotDate, `\b(today|tomorrow|yesterday|tonight|now)\b`},
	{SlotDate, `\b(next\s+(?:week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`},
	{SlotDate, `\b(this\s+(?:week|month|weekend))\b`},

	{SlotPriority, `\b(urgent|high|top|critical|important|medium|normal|low|lowest)\b`},
	{SlotPriority, `\b(priority\s+(?:is\s+)?(high|medium|low|urgent))\b`},

	{SlotCategory, `\b(in\s+(?:work|personal|shopping|health|finance|home|school|other))\b`},
	{SlotCategory, `\b(for\s+(?:work|personal|shopping|health|finance|home|school|other))\b`},
	{SlotCategory, `\b(category\s+(?:is\s+)?(work|personal|shopping|health|finance|home|school|other))\b`},
}

// DefaultIntentPatterns returns a copy of the built-in intent table.
func DefaultIntentPatterns() []IntentPattern {
	return slices.Clone(intentPatterns)
}

// DefaultEntityPatterns returns a copy of the built-in slot table.
func DefaultEntityPatterns() []EntityPattern {
	return slices.Clone(entityPatterns)
}

// FallbackTitlePattern describes the title recovered after a leading verb when
// no title row matched. It needs negative lookahead, which RE2 lacks, so the
// classifier applies it with a linear scan (see fallbackTitle).
const FallbackTitlePattern = `(?:add|create|make|new)\s+(?:a\s+)?(?!task|todo|item|note|reminder)(\w+(?:\s+\w+)*?)(?:\s+and|\s+for|\s+by|\s+on|\s+at|\.|$)`
