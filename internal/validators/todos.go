package validators

import (
	"github.com/MKhiriev/go-project-hub/models"
)

// validateTodoCreate accepts an empty priority, which defaults to medium.
func (v *PayloadValidator) validateTodoCreate(t models.TodoCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldTitle, FieldPriority, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if blank(t.ProjectID) {
				return ErrEmptyProjectID
			}
		case FieldTitle:
			if blank(t.Title) {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if t.Priority != "" && !t.Priority.Valid() {
				return ErrInvalidPriority
			}
		case FieldTags:
			if !validIDs(t.Tags) {
				return ErrInvalidTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validateTodoUpdate(t models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldTitle, FieldPriority, FieldTags, FieldAny}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if t.ProjectID != nil && blank(*t.ProjectID) {
				return ErrEmptyProjectID
			}
		case FieldTitle:
			if t.Title != nil && blank(*t.Title) {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if t.Priority != nil && !t.Priority.Valid() {
				return ErrInvalidPriority
			}
		case FieldTags:
			if t.Tags != nil && !validIDs(*t.Tags) {
				return ErrInvalidTag
			}
		case FieldAny:
			if t.ProjectID == nil && t.Title == nil && t.Completed == nil && t.Priority == nil && !t.DueDate.Set && t.Tags == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteCreate allows empty content; a new note starts blank.
func (v *PayloadValidator) validateNoteCreate(n models.NoteCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if blank(n.ProjectID) {
				return ErrEmptyProjectID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PayloadValidator) validateNoteUpdate(n models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldAny}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if n.ProjectID != nil && blank(*n.ProjectID) {
				return ErrEmptyProjectID
			}
		case FieldAny:
			if n.ProjectID == nil && n.Content == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
