package models

import "time"

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the projection returned by user listings and embedded as a
// task owner; it deliberately carries no email or credentials.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
