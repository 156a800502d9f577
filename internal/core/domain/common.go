package domain

import "time"

// Timestamps holds the audit timestamps shared by all persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
