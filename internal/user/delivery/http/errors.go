package http

import (
	"errors"
	"net/http"

	"todo-ai-chatbot/internal/user"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrNameTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidToken):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrInactiveUser):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
