package models

import "time"

// Priority of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a task attached to a project.
type Todo struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TodoCreate is the payload for creating a todo.
type TodoCreate struct {
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
}

// TodoUpdate is a partial update of a todo. DueDate accepts an explicit null
// to clear the date.
type TodoUpdate struct {
	ProjectID *string      `json:"projectId,omitempty"`
	Title     *string      `json:"title,omitempty"`
	Completed *bool        `json:"completed,omitempty"`
	Priority  *Priority    `json:"priority,omitempty"`
	DueDate   NullableTime `json:"dueDate,omitzero"`
	Tags      *[]string    `json:"tags,omitempty"`
}
