package toolmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/intent"
)

func TestMapUtterances(t *testing.T) {
	clf := intent.MustNew(intent.Config{})

	tcs := map[string]struct {
		text    string
		tool    string
		success bool
		params  map[string]interface{}
		message string
	}{
		"add with extracted title": {
			text:    "Add a task to buy groceries",
			tool:    agent.ToolAddTask,
			success: true,
			params: map[string]interface{}{
				"title": "buy groceries", "description": "", "priority": "medium", "category": "general",
			},
			message: "Adding task: buy groceries",
		},
		"add with date and priority": {
			text:    "Add a task to call mom tomorrow with high priority",
			tool:    agent.ToolAddTask,
			success: true,
			params: map[string]interface{}{
				"title": "call mom tomorrow with high priority", "description": "", "priority": "high",
				"category": "general", "due_date": "tomorrow",
			},
			message: "Adding task: call mom tomorrow with high priority",
		},
		"list defaults": {
			text:    "Show me my tasks",
			tool:    agent.ToolListTasks,
			success: true,
			params:  map[string]interface{}{"status": "all", "limit": 50, "offset": 0},
			message: "Listing tasks",
		},
		"list with category": {
			text:    "show my tasks for work",
			tool:    agent.ToolListTasks,
			success: true,
			params:  map[string]interface{}{"status": "all", "limit": 50, "offset": 0, "category": "for work"},
			message: "Listing tasks",
		},
		"complete without target": {
			text:    "Complete task 1",
			success: false,
			params:  map[string]interface{}{},
			message: "Which task would you like to complete?",
		},
		"delete without target": {
			text:    "delete the gym task",
			success: false,
			params:  map[string]interface{}{},
			message: "Which task would you like to delete?",
		},
		"update by title": {
			text:    "update task called buy milk",
			tool:    agent.ToolUpdateTask,
			success: true,
			params: map[string]interface{}{
				"task_id": "placeholder-id-for-buy-milk", "task_title": "buy milk", "title": "buy milk",
			},
			message: "Updating task: placeholder-id-for-buy-milk",
		},
		"help": {
			text:    "What can you do?",
			tool:    agent.ToolHelp,
			success: true,
			params:  map[string]interface{}{"message": "help", "user_id": "u1"},
			message: "Showing help information",
		},
		"gibberish": {
			text:    "asdkjhasdkjh random gibberish",
			success: false,
			params:  map[string]interface{}{},
			message: "I didn't understand your request. Could you rephrase it?",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			res := toolmap.Map(clf.ClassifyAndRefine(tc.text), "u1")
			assert.Equal(t, tc.success, res.Success)
			assert.Equal(t, tc.tool, res.ToolName)
			assert.Equal(t, tc.params, res.ToolParameters)
			assert.Equal(t, tc.message, res.Message)
			if tc.success {
				assert.Empty(t, res.Error)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestMapAddTitleFallback(t *testing.T) {
	t.Run("regex over original text", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent:       intent.IntentAddTask,
			Entities:     intent.Entities{},
			OriginalText: "Please Create a todo to Water The Plants. Thanks",
		}, "u1")
		require.True(t, res.Success)
		assert.Equal(t, "Water The Plants", res.ToolParameters["title"])
	})

	t.Run("normalized text as last resort", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent:       intent.IntentAddTask,
			Entities:     intent.Entities{},
			OriginalText: "  I Should Stretch  ",
		}, "u1")
		require.True(t, res.Success)
		assert.Equal(t, "i should stretch", res.ToolParameters["title"])
		assert.NotContains(t, res.ToolParameters, "due_date")
	})

	t.Run("empty extracted title falls through", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent:       intent.IntentAddTask,
			Entities:     intent.Entities{intent.SlotTitle: {""}},
			OriginalText: "add a task to stretch",
		}, "u1")
		assert.Equal(t, "stretch", res.ToolParameters["title"])
	})
}

func TestMapTargeted(t *testing.T) {
	t.Run("explicit id wins over title", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent: intent.IntentCompleteTask,
			Entities: intent.Entities{
				intent.SlotTaskID: {"abc-123"},
				intent.SlotTitle:  {"ignored"},
				intent.SlotNotes:  {"went well"},
			},
		}, "u1")
		require.True(t, res.Success)
		assert.Equal(t, map[string]interface{}{"task_id": "abc-123", "completion_notes": "went well"}, res.ToolParameters)
		assert.Equal(t, "Completing task: abc-123", res.Message)
	})

	t.Run("delete by title", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent:   intent.IntentDeleteTask,
			Entities: intent.Entities{intent.SlotTitle: {"gym session"}},
		}, "u1")
		require.True(t, res.Success)
		assert.Equal(t, "placeholder-id-for-gym-session", res.ToolParameters["task_id"])
		assert.Equal(t, "gym session", res.ToolParameters["task_title"])
		assert.Equal(t, "Deleting task: placeholder-id-for-gym-session", res.Message)
	})

	t.Run("update copies every slot", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{
			Intent: intent.IntentUpdateTask,
			Entities: intent.Entities{
				intent.SlotTaskID:      {"t1"},
				intent.SlotDate:        {"next friday", "today"},
				intent.SlotPriority:    {"urgent"},
				intent.SlotCategory:    {"in work"},
				intent.SlotDescription: {"more words"},
				intent.SlotCompleted:   {"true"},
			},
		}, "u1")
		require.True(t, res.Success)
		assert.Equal(t, map[string]interface{}{
			"task_id": "t1", "due_date": "next friday", "priority": "urgent",
			"category": "in work", "description": "more words", "completed": "true",
		}, res.ToolParameters)
	})

	t.Run("update without target", func(t *testing.T) {
		res := toolmap.Map(intent.ClassifiedIntent{Intent: intent.IntentUpdateTask, Entities: intent.Entities{}}, "u1")
		assert.False(t, res.Success)
		assert.Equal(t, "Please specify which task to update. You can say something like 'update the grocery shopping task'", res.Error)
		assert.Equal(t, "Which task would you like to update?", res.Message)
	})
}

func TestMapNeverPanics(t *testing.T) {
	for _, in := range []intent.Intent{
		intent.IntentAddTask, intent.IntentListTasks, intent.IntentCompleteTask, intent.IntentDeleteTask,
		intent.IntentUpdateTask, intent.IntentHelp, intent.IntentUnknown, intent.Intent("bogus"),
	} {
		assert.NotPanics(t, func() {
			res := toolmap.Map(intent.ClassifiedIntent{Intent: in}, "")
			assert.NotNil(t, res.ToolParameters)
		}, string(in))
	}
}

func TestPlaceholderID(t *testing.T) {
	id := toolmap.PlaceholderID("buy oat milk")
	assert.Equal(t, "placeholder-id-for-buy-oat-milk", id)
	assert.True(t, toolmap.IsPlaceholderID(id))
	assert.False(t, toolmap.IsPlaceholderID("3f1c2a"))
}
