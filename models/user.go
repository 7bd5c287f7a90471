package models

// Role gates access to the user management routes.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// User is a login credential record. Passwords are held in plaintext, matching
// the original application's storage format.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// Public returns a copy safe for API responses.
func (u User) Public() User {
	u.Password = ""
	return u
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=ADMIN CUSTOMER"`
}

type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=ADMIN CUSTOMER"`
}
