package dto

import (
	"github.com/arda/campusconnect/internal/pkg/apperrors"
)

// Response statuses used by every endpoint.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the uniform envelope: {status, message, data?, errors?}.
type APIResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Data    interface{}           `json:"data,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// NewSuccessResponse creates a success envelope with optional payload.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope with a human-readable message.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error envelope carrying per-field
// validation messages.
func NewValidationErrorResponse(fields []apperrors.FieldError) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: "Validation failed",
		Errors:  fields,
	}
}

// PaginationInfo reports list paging; Total always counts the filtered,
// not paginated, set.
type PaginationInfo struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}
