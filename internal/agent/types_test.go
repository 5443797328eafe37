package agent_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/model"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	gotScope    model.Scope
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) (agent.ToolResult, error) {
	m.gotScope = sc
	return agent.ToolResult{Success: true, Message: m.name}, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "tool1", description: "desc1"}
	tool2 := &mockTool{name: "tool2", description: "desc2"}
	tool3 := &mockTool{name: "tool3", description: "desc3"}

	registry.Register(tool2)
	registry.Register(tool1)
	registry.Register(tool3)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		require.True(t, ok)
		assert.Equal(t, "tool1", got.Name())
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		assert.False(t, ok)
	})

	t.Run("List keeps registration order", func(t *testing.T) {
		var names []string
		for _, tool := range registry.List() {
			names = append(names, tool.Name())
		}
		assert.Equal(t, []string{"tool2", "tool1", "tool3"}, names)
	})

	t.Run("Re-register replaces in place", func(t *testing.T) {
		registry.Register(&mockTool{name: "tool1", description: "newer"})
		defs := registry.ToFunctionDefinitions()
		require.Len(t, defs, 3)
		assert.Equal(t, "tool1", defs[1].Name)
		assert.Equal(t, "newer", defs[1].Description)
	})

	t.Run("Execute dispatches by name", func(t *testing.T) {
		sc := model.Scope{UserID: "u1"}
		res, err := registry.Execute(context.Background(), sc, "tool3", nil)
		require.NoError(t, err)
		assert.Equal(t, "tool3", res.Message)
		assert.Equal(t, sc, tool3.gotScope)

		_, err = registry.Execute(context.Background(), sc, "missing", nil)
		assert.ErrorIs(t, err, agent.ErrToolNotFound)
	})
}

func TestNewTaskView(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	v := agent.NewTaskView(model.Task{ID: "t1", Title: "Pay rent", DueDate: &due, Priority: model.PriorityHigh})
	assert.Equal(t, "2025-03-01", v.DueDate)
	assert.Equal(t, "high", v.Priority)

	v = agent.NewTaskView(model.Task{ID: "t2", Title: "No date"})
	assert.Empty(t, v.DueDate)
}
