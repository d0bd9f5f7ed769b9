package dto

import (
	"github.com/arda/campusconnect/internal/app/models"
)

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Semester   *int   `json:"semester"`   // Required for students
	EmployeeID string `json:"employeeId"` // Required for faculty
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData is the payload returned by register and login.
type AuthData struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserData wraps a single sanitized user record.
type UserData struct {
	User models.User `json:"user"`
}
