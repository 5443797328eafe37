package usecase

import (
	"context"
	"time"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/gcalendar"
)

// syncCalendar creates an all-day event for a task with a due date. Calendar
// failures are logged and never fail the task operation.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) model.Task {
	if uc.calendar.Client == nil || t.DueDate == nil || t.CalendarEventID != "" {
		return t
	}

	event, err := uc.calendar.Client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueDate,
		AllDay:      true,
		Timezone:    uc.calendar.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar event creation failed for %q (non-fatal): %v", LogPrefixCalendar, t.Title, err)
		return t
	}

	t.CalendarEventID = event.ID
	updated, err := uc.save(ctx, t, LogPrefixCalendar)
	if err != nil {
		uc.l.Warnf(ctx, "%s: storing calendar event id failed (non-fatal): %v", LogPrefixCalendar, err)
		return t
	}
	return updated
}

func (uc *implUseCase) removeCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar.Client == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.Client.DeleteEvent(ctx, uc.calendar.CalendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "%s: calendar event deletion failed for %q (non-fatal): %v", LogPrefixCalendar, t.Title, err)
	}
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
