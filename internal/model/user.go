package model

import "time"

const (
	RoleUser  = "user"
	RoleCoach = "coach"
)

// User represents a registered user in the system
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest carries the raw signup payload. Fields are deliberately
// untyped so the validation layer can tell a missing field from a
// wrong-typed one before anything dereferences the values.
type SignupRequest struct {
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}

// PublicUser is the signup response shape: id and name only, everything
// else stays server-side.
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary is the name/role pair returned by the coach promotion flow.
type UserSummary struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
