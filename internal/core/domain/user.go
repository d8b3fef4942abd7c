package domain

import "time"

// Role is the closed set of account types in the portal. Every branch that
// depends on a role (route scoping, registration rules) switches over these
// constants; an unknown value is rejected at the boundary.
type Role string

const (
	RoleConsumer    Role = "consumer"
	RoleBusiness    Role = "business"
	RoleAdjudicator Role = "adjudicator"
	RoleAdmin       Role = "admin"
)

// Roles lists every valid role, in documentation order.
var Roles = []Role{RoleConsumer, RoleBusiness, RoleAdjudicator, RoleAdmin}

// ParseRole maps a raw string onto the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleConsumer, RoleBusiness, RoleAdjudicator, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Status is the account lifecycle state. Only "suspended" gates
// authentication; "pending" accounts may still sign in.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// ParseStatus maps a raw string onto the status enumeration.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusSuspended:
		return Status(s), true
	}
	return "", false
}

// User is the authentication principal record. The password hash is excluded
// from JSON so it can never leak through a response payload.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Status         Status    `json:"status"`
	Verified       bool      `json:"verified"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	BusinessName   string    `json:"business_name,omitempty"`
	BusinessNumber string    `json:"business_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Principal is the claim set attached to an authenticated session. It is a
// projection of User that omits the password hash field altogether, so a
// Principal can be serialized anywhere.
type Principal struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Status    Status `json:"status"`
	Verified  bool   `json:"verified"`
}

// NewPrincipal projects a stored user onto its session claims.
func NewPrincipal(u *User) Principal {
	return Principal{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Status:    u.Status,
		Verified:  u.Verified,
	}
}
