package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := execute(t, "classify", "--scores", "Add", "a", "task", "to", "buy", "milk")
	require.NoError(t, err)

	var got struct {
		Refined struct {
			Intent   string              `json:"intent"`
			Entities map[string][]string `json:"entities"`
		} `json:"refined"`
		Scores []json.RawMessage `json:"scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "add_task", got.Refined.Intent)
	assert.Len(t, got.Scores, 6)
}

func TestClassifyCmd_ZeroThreshold(t *testing.T) {
	classified := func(args ...string) string {
		out, err := execute(t, args...)
		require.NoError(t, err)
		var got struct {
			Classified struct {
				Intent string `json:"intent"`
			} `json:"classified"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		return got.Classified.Intent
	}

	assert.Equal(t, "unknown", classified("classify", "zzz"))
	// Every score clears a zero cutoff, so the first intent wins the tie.
	assert.Equal(t, "add_task", classified("--threshold", "0", "classify", "zzz"))
}

func TestRouteCmd(t *testing.T) {
	out, err := execute(t, "route", "show my tasks")
	require.NoError(t, err)

	var got struct {
		Success        bool           `json:"success"`
		ToolName       string         `json:"tool_name"`
		ToolParameters map[string]any `json:"tool_parameters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "list_tasks", got.ToolName)
	assert.Equal(t, "all", got.ToolParameters["status"])
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "add_task")
	assert.Contains(t, out, "title (fallback)")
}

func TestCmdErrors(t *testing.T) {
	_, err := execute(t, "classify")
	assert.Error(t, err)

	_, err = execute(t, "--threshold", "-1", "route", "hi")
	assert.Error(t, err)
}
