package model

import "time"

// Coach holds the coach profile for a user whose role is "coach".
// Exactly one row exists per promoted user.
type Coach struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ExperienceYears int       `json:"experience_years"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PromoteCoachRequest is the raw promotion payload, untyped for the
// validation layer.
type PromoteCoachRequest struct {
	ExperienceYears any `json:"experience_years"`
	Description     any `json:"description"`
	ProfileImageURL any `json:"profile_image_url"`
}

// PromotionResult is the promotion response body: the updated user
// summary plus the freshly created coach row.
type PromotionResult struct {
	User  UserSummary `json:"user"`
	Coach *Coach      `json:"coach"`
}
