package models

import "time"

// Tag is a free-form label attached to tasks by id.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
