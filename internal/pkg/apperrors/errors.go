package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is deactivated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Conflict errors
	ErrConflict           = errors.New("conflict")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Storage errors
	ErrStorage      = errors.New("storage failure")
	ErrFileNotFound = errors.New("file not found on server")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Notice errors
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// Event errors
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrRegistrationNotNeeded = errors.New("this event does not require registration")
	ErrEventAlreadyStarted   = errors.New("cannot register for past events")
	ErrAlreadyRegistered     = errors.New("already registered for this event")
	ErrEventFull             = errors.New("event is full")
	ErrNotRegistered         = errors.New("not registered for this event")
)

// Material errors
var (
	ErrMaterialNotFound = errors.New("material not found")
)

// Resume errors
var (
	ErrResumeNotFound = errors.New("resume not found")
)

// CustomError carries a sentinel plus a human-readable message and optional
// context details.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping the given sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// FieldError reports a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field validation failures. It matches
// ErrValidationFailed under errors.Is so the HTTP layer can map it without
// knowing the concrete type.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed"
}

// Is reports a match against the ErrValidationFailed sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends a field failure and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewValidationError creates an empty validation error collector.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}
