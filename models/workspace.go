package models

// Workspace is the client's mirror of the data visible to the signed-in user.
type Workspace struct {
	Projects []Project
	Todos    []Todo
	Notes    []Note
}

// TodosOf returns the todos of projectID in document order.
func (w Workspace) TodosOf(projectID string) []Todo {
	todos := make([]Todo, 0)
	for _, t := range w.Todos {
		if t.ProjectID == projectID {
			todos = append(todos, t)
		}
	}
	return todos
}

// NotesOf returns the notes of projectID in document order.
func (w Workspace) NotesOf(projectID string) []Note {
	notes := make([]Note, 0)
	for _, n := range w.Notes {
		if n.ProjectID == projectID {
			notes = append(notes, n)
		}
	}
	return notes
}
