package sqlite

import (
	"strings"

	repo "todo-ai-chatbot/internal/task/repository"
)

// buildListFilter builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(opt.Priority))
	}
	if opt.Category != "" {
		conditions = append(conditions, "lower(category) = lower(?)")
		args = append(args, opt.Category)
	}
	if opt.TitleContains != "" {
		conditions = append(conditions, `lower(title) LIKE '%' || lower(?) || '%' ESCAPE '\'`)
		args = append(args, escapeLike(opt.TitleContains))
	}

	return strings.Join(conditions, " AND "), args
}

// buildPagination builds the LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildPagination(opt repo.ListTasksOptions) (string, []any) {
	if opt.Limit <= 0 {
		return "", nil
	}
	return "LIMIT ? OFFSET ?", []any{opt.Limit, max(opt.Offset, 0)}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
