package models

import "time"

// Note is freeform markdown content attached to a project.
type Note struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteCreate is the payload for creating a note.
type NoteCreate struct {
	ProjectID string `json:"projectId"`
	Content   string `json:"content"`
}

// NoteUpdate is a partial update of a note.
type NoteUpdate struct {
	ProjectID *string `json:"projectId,omitempty"`
	Content   *string `json:"content,omitempty"`
}
