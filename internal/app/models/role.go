package models

// Role defines the user role within the campus community
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// roleLevels maps each role to its position in the strict hierarchy
// student < faculty < admin.
var roleLevels = map[Role]int{
	RoleStudent: 1,
	RoleFaculty: 2,
	RoleAdmin:   3,
}

// Level returns the ordinal rank of the role; 0 for unknown roles.
func (r Role) Level() int {
	return roleLevels[r]
}

// IsValid reports whether the role is one of the known variants.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}
