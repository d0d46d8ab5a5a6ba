package domain

import "time"

// UserRole identifies which part of the marketplace a user belongs to.
type UserRole string

const (
	RoleFarmer   UserRole = "farmer"
	RoleLabour   UserRole = "labour"
	RolePartner  UserRole = "partner"
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleFarmer, RoleLabour, RolePartner, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered user of the application.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Area         string    `json:"area"`
	State        string    `json:"state"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Location is the subset of profile data used to stamp new postings and to
// scope which labourers can discover them.
type Location struct {
	Area  string `json:"area"`
	State string `json:"state"`
}
