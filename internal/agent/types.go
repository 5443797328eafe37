package agent

import (
	"context"
	"errors"
	"time"

	"todo-ai-chatbot/internal/model"
)

// Tool names the router may dispatch to.
const (
	ToolAddTask      = "add_task"
	ToolListTasks    = "list_tasks"
	ToolCompleteTask = "complete_task"
	ToolDeleteTask   = "delete_task"
	ToolUpdateTask   = "update_task"
	ToolHelp         = "help"
)

var ErrToolNotFound = errors.New("tool not found")

// Tool is an executor the orchestrator can reach by name.
type Tool interface {
	// Name returns the tool name used for dispatch.
	Name() string

	// Description returns what the tool does.
	Description() string

	// Parameters returns the JSON schema of the tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for sc. Conditions the user can fix are reported
	// through ToolResult.Success; the error is for failures they cannot.
	Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (ToolResult, error)
}

// ToolResult is what every tool returns.
type ToolResult struct {
	Success bool                   `json:"success"`
	TaskID  string                 `json:"task_id,omitempty"`
	Message string                 `json:"message"`
	Task    *TaskView              `json:"task,omitempty"`
	Tasks   []TaskView             `json:"tasks,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// TaskView is the task shape exposed to chat clients.
type TaskView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
	Completed   bool   `json:"completed"`
}

// NewTaskView converts a stored task.
func NewTaskView(t model.Task) TaskView {
	v := TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
	}
	if t.DueDate != nil {
		v.DueDate = t.DueDate.Format(time.DateOnly)
	}
	return v
}

// FunctionDefinition describes a tool to API clients.
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry manages available tools in registration order.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry, replacing one with the same name.
func (r *ToolRegistry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Execute dispatches to the named tool.
func (r *ToolRegistry) Execute(ctx context.Context, sc model.Scope, name string, params map[string]interface{}) (ToolResult, error) {
	tool, ok := r.Get(name)
	if !ok {
		return ToolResult{}, ErrToolNotFound
	}
	return tool.Execute(ctx, sc, params)
}

// ToFunctionDefinitions lists the registered tools as function definitions.
func (r *ToolRegistry) ToFunctionDefinitions() []FunctionDefinition {
	defs := make([]FunctionDefinition, 0, len(r.order))
	for _, tool := range r.List() {
		defs = append(defs, FunctionDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return defs
}
