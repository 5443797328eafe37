package http

import (
	"time"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	"todo-ai-chatbot/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Category    string `json:"category"    binding:"max=100"`
}

func (r createReq) validate() error {
	_, err := parseDueDate(r.DueDate)
	return err
}

func (r createReq) toInput() task.CreateInput {
	due, _ := parseDueDate(r.DueDate)
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Priority:    model.Priority(r.Priority),
		Category:    r.Category,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=all pending completed"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > task.MaxListLimit {
		limit = task.DefaultListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status:   model.TaskStatus(r.Status),
		Priority: model.Priority(r.Priority),
		Category: r.Category,
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Category    *string `json:"category"    binding:"omitempty,max=100"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) validate() error {
	if r.DueDate == nil {
		return nil
	}
	_, err := parseDueDate(*r.DueDate)
	return err
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.DueDate != nil {
		// An explicit empty string clears the due date.
		if *r.DueDate == "" {
			in.ClearDueDate = true
		} else {
			in.DueDate, _ = parseDueDate(*r.DueDate)
		}
	}
	return in
}

// ---

type completeReq struct {
	ID    string `json:"-"`
	Notes string `json:"notes" binding:"max=1000"`
}

func (r completeReq) toInput() task.CompleteInput {
	return task.CompleteInput{ID: r.ID, Notes: r.Notes}
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	DueDate         *response.Date     `json:"due_date"`
	Priority        string             `json:"priority"`
	Category        string             `json:"category"`
	Completed       bool               `json:"completed"`
	CompletedAt     *response.DateTime `json:"completed_at"`
	CompletionNotes string             `json:"completion_notes,omitempty"`
	CalendarEventID string             `json:"calendar_event_id,omitempty"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		Category:        t.Category,
		Completed:       t.Completed,
		CompletionNotes: t.CompletionNotes,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &d
	}
	return resp
}

type itemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newItemResp(t model.Task) itemResp {
	return itemResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
