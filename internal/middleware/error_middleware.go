package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/pkg/apperrors"
	"github.com/arda/campusconnect/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses with the standard
// envelope. Unrecognized errors become an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validationErr.Fields))
		return
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		c.JSON(statusForError(customErr.Err), dto.NewErrorResponse(customErr.Message))
		return
	}

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(status, dto.NewErrorResponse("Internal server error"))
		return
	}
	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrAccountDisabled),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrNoticeNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrMaterialNotFound),
		errors.Is(err, apperrors.ErrResumeNotFound),
		errors.Is(err, apperrors.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrRegistrationNotNeeded),
		errors.Is(err, apperrors.ErrEventAlreadyStarted),
		errors.Is(err, apperrors.ErrAlreadyRegistered),
		errors.Is(err, apperrors.ErrEventFull),
		errors.Is(err, apperrors.ErrNotRegistered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
