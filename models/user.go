package models

import "strings"

// adminMark flags internal accounts for a dashboard badge. This is a display
// affordance only; authorization stays on the backend.
const adminMark = ".devconnect"

// User is the account record returned by the login and register endpoints.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName returns the best available name for greetings.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Name != "" {
		return u.Name
	}
	return "User"
}

// IsAdmin reports whether the account should carry the ADMIN badge.
func (u *User) IsAdmin() bool {
	return strings.Contains(u.Email, adminMark)
}
