package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"notice not found", apperrors.ErrNoticeNotFound, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusBadRequest},
		{"event full", apperrors.ErrEventFull, http.StatusBadRequest},
		{"not registered", apperrors.ErrNotRegistered, http.StatusBadRequest},
		{"registration not needed", apperrors.ErrRegistrationNotNeeded, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(tc.err))
		})
	}
}
