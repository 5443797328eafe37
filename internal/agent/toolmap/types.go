package toolmap

// Result names the tool to run for an utterance, or explains why none can run.
// Error is diagnostic and meant for logs; Message is shown to the user.
type Result struct {
	Success        bool                   `json:"success"`
	ToolName       string                 `json:"tool_name,omitempty"`
	ToolParameters map[string]interface{} `json:"tool_parameters"`
	Message        string                 `json:"message,omitempty"`
	Error          string                 `json:"error,omitempty"`
}
