package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/pkg/log"
)

func TestClassify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), usecase.New(log.NewNop(), intent.MustNew(intent.Config{})))
	r := gin.New()
	r.POST("/intent/classify", h.Classify)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/intent/classify", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"text":"Add a task to buy groceries"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data struct {
			Classified intent.ClassifiedIntent `json:"classified"`
			Refined    intent.ClassifiedIntent `json:"refined"`
			Routing    struct {
				Success        bool           `json:"success"`
				ToolName       string         `json:"tool_name"`
				ToolParameters map[string]any `json:"tool_parameters"`
			} `json:"routing"`
			Scores []intent.Score `json:"scores"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, intent.IntentAddTask, env.Data.Classified.Intent)
	assert.Equal(t, intent.IntentAddTask, env.Data.Refined.Intent)
	assert.True(t, env.Data.Routing.Success)
	assert.Equal(t, "add_task", env.Data.Routing.ToolName)
	assert.Equal(t, "buy groceries", env.Data.Routing.ToolParameters["title"])
	assert.Len(t, env.Data.Scores, 6)

	w = post(`{"text":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = post(`{"text":"` + strings.Repeat("a", usecase.MaxTextLength+1) + `"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
