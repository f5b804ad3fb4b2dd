package domain

import "time"

// Role constants define the allowed user roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsValidRole checks whether the given role string is a valid user role.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a registered storefront account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the server-side state behind a session cookie.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
