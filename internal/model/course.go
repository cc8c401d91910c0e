package model

import "time"

// Course represents a coach-led course. StartAt/EndAt are opaque strings:
// the API passes them through without interpreting the timestamp format.
type Course struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	SkillID         string    `json:"skill_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartAt         string    `json:"start_at"`
	EndAt           string    `json:"end_at"`
	MaxParticipants int       `json:"max_participants"`
	MeetingURL      string    `json:"meeting_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCourseRequest is the raw course creation payload, untyped for the
// validation layer.
type CreateCourseRequest struct {
	UserID          any `json:"user_id"`
	SkillID         any `json:"skill_id"`
	Name            any `json:"name"`
	Description     any `json:"description"`
	StartAt         any `json:"start_at"`
	EndAt           any `json:"end_at"`
	MaxParticipants any `json:"max_participants"`
	MeetingURL      any `json:"meeting_url"`
}

// UpdateCourseRequest is the raw course edit payload. The owning user is
// not editable and is not re-validated on update.
type UpdateCourseRequest struct {
	SkillID         any `json:"skill_id"`
	Name            any `json:"name"`
	Description     any `json:"description"`
	StartAt         any `json:"start_at"`
	EndAt           any `json:"end_at"`
	MaxParticipants any `json:"max_participants"`
	MeetingURL      any `json:"meeting_url"`
}
