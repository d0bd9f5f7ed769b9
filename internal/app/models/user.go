package models

import (
	"time"
)

// User defines a registered member of the campus community.
type User struct {
	ID         string     `json:"id" example:"4f1c8b2e-0b5a-4c87-9f1d-6f8a2d3e4b5c"` // Unique identifier, generated at creation
	Name       string     `json:"name" example:"Jane Doe"`
	Email      string     `json:"email" example:"jane@campus.edu"` // Unique, compared case-insensitively
	Password   string     `json:"password,omitempty"`              // bcrypt hash, stripped before any response
	Role       Role       `json:"role" example:"student"`
	Department string     `json:"department,omitempty" example:"Computer Science"`
	Semester   *int       `json:"semester,omitempty" example:"3"`        // Students only
	EmployeeID *string    `json:"employeeId,omitempty" example:"F-1042"` // Faculty only
	CreatedAt  time.Time  `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	LastLogin  *time.Time `json:"lastLogin,omitempty" example:"2024-04-20T18:00:00Z"`
	IsActive   bool       `json:"isActive" example:"true"`
}

// Sanitized returns a copy of the user with the password hash removed.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// AuthorRef is the identity snapshot embedded into a resource at creation
// time. It is deliberately not a live reference: a later profile change does
// not rewrite existing resources.
type AuthorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// UploaderRef is the richer snapshot embedded into resumes; the extra fields
// let readers see the student's standing at upload time.
type UploaderRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Semester   *int   `json:"semester,omitempty"`
}

// AuthorRefFrom captures the author snapshot for a user.
func AuthorRefFrom(u *User) AuthorRef {
	return AuthorRef{ID: u.ID, Name: u.Name, Role: u.Role}
}

// UploaderRefFrom captures the uploader snapshot for a user.
func UploaderRefFrom(u *User) UploaderRef {
	return UploaderRef{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Semester:   u.Semester,
	}
}
