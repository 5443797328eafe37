package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	taskSqlite "todo-ai-chatbot/internal/task/repository/sqlite"
	"todo-ai-chatbot/pkg/gcalendar"
	"todo-ai-chatbot/pkg/log"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

type fakeCalendar struct {
	created   []gcalendar.CreateEventRequest
	deleted   []string
	createErr error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{ID: "evt-" + req.Summary}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

func newTestUseCase(t *testing.T, cal gcalendar.Calendar) *implUseCase {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.Config{Path: pkgSqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(log.NewNop(), taskSqlite.New(db, log.NewNop()), CalendarConfig{Client: cal, Timezone: "UTC"})
}

var sc = model.Scope{UserID: "u1"}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "  Buy milk  "})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, model.PriorityMedium, created.Priority)
	assert.Equal(t, "u1", created.UserID)

	tcs := map[string]struct {
		input task.CreateInput
		err   error
	}{
		"empty title":      {task.CreateInput{Title: "   "}, task.ErrInvalidTitle},
		"long title":       {task.CreateInput{Title: strings.Repeat("x", 256)}, task.ErrInvalidTitle},
		"long description": {task.CreateInput{Title: "a", Description: strings.Repeat("x", 1001)}, task.ErrDescriptionTooLong},
		"bad priority":     {task.CreateInput{Title: "a", Priority: "whenever"}, task.ErrInvalidPriority},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, sc, tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCreate_CalendarSync(t *testing.T) {
	ctx := context.Background()
	cal := &fakeCalendar{}
	uc := newTestUseCase(t, cal)

	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "Pay rent", DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, "evt-Pay rent", created.CalendarEventID)
	require.Len(t, cal.created, 1)
	assert.True(t, cal.created[0].AllDay)

	_, err = uc.Create(ctx, sc, task.CreateInput{Title: "No date"})
	require.NoError(t, err)
	assert.Len(t, cal.created, 1)

	_, err = uc.Delete(ctx, sc, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"evt-Pay rent"}, cal.deleted)
}

func TestCreate_CalendarFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &fakeCalendar{createErr: errors.New("quota")})

	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "Pay rent", DueDate: &due})
	require.NoError(t, err)
	assert.Empty(t, created.CalendarEventID)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	a, err := uc.Create(ctx, sc, task.CreateInput{Title: "a", Priority: model.PriorityHigh})
	require.NoError(t, err)
	_, err = uc.Create(ctx, sc, task.CreateInput{Title: "b"})
	require.NoError(t, err)
	_, err = uc.Complete(ctx, sc, task.CompleteInput{ID: a.ID})
	require.NoError(t, err)

	out, err := uc.List(ctx, sc, task.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, task.DefaultListLimit, out.Limit)

	out, err = uc.List(ctx, sc, task.ListInput{Status: model.TaskStatusCompleted})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "a", out.Tasks[0].Title)

	out, err = uc.List(ctx, sc, task.ListInput{Status: model.TaskStatusPending})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "b", out.Tasks[0].Title)

	_, err = uc.List(ctx, sc, task.ListInput{Status: "later"})
	assert.ErrorIs(t, err, task.ErrInvalidStatus)
	_, err = uc.List(ctx, sc, task.ListInput{Limit: 101})
	assert.ErrorIs(t, err, task.ErrInvalidPagination)
	_, err = uc.List(ctx, sc, task.ListInput{Offset: -1})
	assert.ErrorIs(t, err, task.ErrInvalidPagination)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	cal := &fakeCalendar{}
	uc := newTestUseCase(t, cal)

	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "report"})
	require.NoError(t, err)

	title := "quarterly report"
	high := model.PriorityHigh
	done := true
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := uc.Update(ctx, sc, task.UpdateInput{
		ID:        created.ID,
		Title:     &title,
		Priority:  &high,
		Completed: &done,
		DueDate:   &due,
	})
	require.NoError(t, err)
	assert.Equal(t, "quarterly report", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "evt-quarterly report", updated.CalendarEventID)

	undone := false
	updated, err = uc.Update(ctx, sc, task.UpdateInput{ID: created.ID, Completed: &undone, ClearDueDate: true})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
	assert.Nil(t, updated.DueDate)
	assert.Empty(t, updated.CalendarEventID)
	assert.Equal(t, []string{"evt-quarterly report"}, cal.deleted)

	_, err = uc.Update(ctx, model.Scope{UserID: "u2"}, task.UpdateInput{ID: created.ID, Title: &title})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	bad := model.Priority("soon")
	_, err = uc.Update(ctx, sc, task.UpdateInput{ID: created.ID, Priority: &bad})
	assert.ErrorIs(t, err, task.ErrInvalidPriority)
}

func TestCompleteAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	created, err := uc.Create(ctx, sc, task.CreateInput{Title: "laundry"})
	require.NoError(t, err)

	done, err := uc.Complete(ctx, sc, task.CompleteInput{ID: created.ID, Notes: "folded too"})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Equal(t, "folded too", done.CompletionNotes)

	_, err = uc.Complete(ctx, sc, task.CompleteInput{ID: "missing"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	deleted, err := uc.Delete(ctx, sc, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "laundry", deleted.Title)

	_, err = uc.Detail(ctx, sc, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = uc.Delete(ctx, sc, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestFindByTitle(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	for _, title := range []string{"Buy groceries", "Buy groceries for party", "Call mom", "Water plants", "Water the garden"} {
		_, err := uc.Create(ctx, sc, task.CreateInput{Title: title})
		require.NoError(t, err)
	}

	got, err := uc.FindByTitle(ctx, sc, "buy groceries")
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", got.Title)

	got, err = uc.FindByTitle(ctx, sc, "mom")
	require.NoError(t, err)
	assert.Equal(t, "Call mom", got.Title)

	_, err = uc.FindByTitle(ctx, sc, "water")
	assert.ErrorIs(t, err, task.ErrAmbiguousTitle)

	_, err = uc.FindByTitle(ctx, sc, "taxes")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = uc.FindByTitle(ctx, sc, "  ")
	assert.ErrorIs(t, err, task.ErrEmptyTitleQuery)

	_, err = uc.FindByTitle(ctx, model.Scope{UserID: "u2"}, "call mom")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestFindByTitle_PrefersPending(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	old, err := uc.Create(ctx, sc, task.CreateInput{Title: "laundry"})
	require.NoError(t, err)
	_, err = uc.Complete(ctx, sc, task.CompleteInput{ID: old.ID})
	require.NoError(t, err)
	fresh, err := uc.Create(ctx, sc, task.CreateInput{Title: "Laundry"})
	require.NoError(t, err)

	got, err := uc.FindByTitle(ctx, sc, "laundry")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, got.ID)
}
