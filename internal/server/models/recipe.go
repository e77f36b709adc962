package models

import "time"

// Recipe is a user-created recipe. CreatorID is set once at creation and
// never reassigned; CreatedAt is immutable, UpdatedAt moves on every edit.
type Recipe struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatorID   string
}
