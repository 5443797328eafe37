package datemath_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	require.NoError(t, err)

	_, err = datemath.NewParser("Invalid/Timezone")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", expr: "today", want: startOfBase},
		{name: "Tonight", expr: "tonight", want: startOfBase},
		{name: "Now", expr: "now", want: startOfBase},
		{name: "Tomorrow", expr: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", expr: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "ISO", expr: "2024-05-20", want: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{name: "Slash month first", expr: "12/01/2024", want: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Dash month first", expr: "7-4-2024", want: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
		{name: "Invalid ISO", expr: "2024-02-30", wantErr: true},
		{name: "Invalid slash", expr: "13/01/2024", wantErr: true},
		{name: "In 3 days", expr: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", expr: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", expr: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", expr: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", expr: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", expr: "next  wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next week", expr: "next week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next month", expr: "next month", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Next year", expr: "next year", want: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "This week", expr: "this week", want: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)},
		{name: "This month", expr: "this month", want: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)},
		{name: "This weekend", expr: "this weekend", want: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)},
		{name: "Invalid Next Weekday", expr: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	_, err = parser.Parse("some random day", time.Now())
	assert.True(t, errors.Is(err, datemath.ErrUnknownExpression))
}

func TestParse_WeekendOnSunday(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	sunday := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)

	got, err := parser.Parse("this weekend", sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = parser.Parse("this week", sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestEndOfDay(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC), parser.EndOfDay(base))
}
