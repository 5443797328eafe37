package http

import (
	"errors"
	"net/http"

	"todo-ai-chatbot/internal/chat"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrConversationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong),
		errors.Is(err, chat.ErrInvalidPagination):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
