package models

import "time"

// Task lifecycle statuses. Everything except StatusCompleted counts as
// outstanding for reporting purposes.
const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusBlocked    = "Blocked"
	StatusCompleted  = "Completed"
)

// Task represents a unit of work. Project, Team and Owners are expanded
// relations; Tags stay plain identifiers.
type Task struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Project        Project       `json:"project"`
	Team           Team          `json:"team"`
	Owners         []UserSummary `json:"owners"`
	TimeToComplete int           `json:"timeToComplete"` // estimated duration in days
	Status         string        `json:"status"`
	Tags           []string      `json:"tags"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// TaskInput carries the client payload for creating a task. References are
// raw identifiers; the store rejects any that do not exist.
type TaskInput struct {
	Name           string   `json:"name"`
	Project        string   `json:"project"`
	Team           string   `json:"team"`
	Owners         []string `json:"owners"`
	TimeToComplete int      `json:"timeToComplete"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
}

// TaskFilter narrows task listings. Zero-value fields are ignored.
type TaskFilter struct {
	Project string
	Team    string
	Tag     string
	Status  string
}
