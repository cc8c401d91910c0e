package model

import "time"

// Skill represents a coaching discipline courses can be filed under
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSkillRequest is the raw create payload, untyped for the
// validation layer.
type CreateSkillRequest struct {
	Name any `json:"name"`
}
