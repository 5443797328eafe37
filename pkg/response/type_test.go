package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))

	late := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC-8", -8*3600))
	b, err = json.Marshal(response.Date(late))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	require.NoError(t, err)

	want, _ := json.Marshal(tm.Local().Format(response.DateTimeFormat))
	assert.Equal(t, string(want), string(b))
}
