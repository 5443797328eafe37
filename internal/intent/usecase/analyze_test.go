package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/log"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	uc := New(log.NewNop(), intent.MustNew(intent.Config{}))
	sc := model.Scope{UserID: "u1"}

	tcs := map[string]struct {
		text        string
		wantRefined intent.Intent
		wantTool    string
		wantRouteOK bool
	}{
		"add task": {
			text:        "Add a task to buy groceries",
			wantRefined: intent.IntentAddTask,
			wantTool:    agent.ToolAddTask,
			wantRouteOK: true,
		},
		"complete without target": {
			text:        "Complete task 1",
			wantRefined: intent.IntentCompleteTask,
			wantRouteOK: false,
		},
		"gibberish": {
			text:        "asdkjhasdkjh",
			wantRefined: intent.IntentUnknown,
			wantRouteOK: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			a, err := uc.Analyze(ctx, sc, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRefined, a.Refined.Intent)
			assert.Equal(t, tc.wantRouteOK, a.Routing.Success)
			assert.Equal(t, tc.wantTool, a.Routing.ToolName)
			assert.Len(t, a.Scores, 6)
			assert.Equal(t, tc.text, a.Classified.OriginalText)
		})
	}

	_, err := uc.Analyze(ctx, sc, strings.Repeat("a", MaxTextLength+1))
	assert.ErrorIs(t, err, ErrTextTooLong)
}
