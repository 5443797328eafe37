package http

import (
	"errors"
	"net/http"

	"todo-ai-chatbot/internal/intent/usecase"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, usecase.ErrTextTooLong) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
