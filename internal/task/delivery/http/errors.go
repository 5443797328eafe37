package http

import (
	"errors"
	"net/http"

	"todo-ai-chatbot/internal/task"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

var (
	errMissingID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrDescriptionTooLong),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPagination):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
