package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/pkg/log"
)

func TestProcess(t *testing.T) {
	ctx := context.Background()
	s := New(log.NewNop(), usecase.New(log.NewNop(), intent.MustNew(intent.Config{})), nil, Config{})
	assert.Equal(t, DefaultSubject, s.subject)

	reply := s.process(ctx, []byte(`{"text":"Show me my tasks","user_id":"u1"}`))
	assert.Empty(t, reply.Error)
	require.NotNil(t, reply.Classified)
	assert.Equal(t, intent.IntentListTasks, reply.Classified.Intent)
	require.NotNil(t, reply.Routing)
	assert.True(t, reply.Routing.Success)
	assert.Equal(t, "list_tasks", reply.Routing.ToolName)

	reply = s.process(ctx, []byte(`{"text":"what"`))
	assert.Equal(t, errMsgInvalid, reply.Error)
	assert.Nil(t, reply.Classified)

	reply = s.process(ctx, []byte(`{"text":"delete it"}`))
	assert.Empty(t, reply.Error)
	require.NotNil(t, reply.Routing)
	assert.False(t, reply.Routing.Success)
	assert.NotEmpty(t, reply.Routing.Message)
}
