package models

// Document is the single unit of durability: every collection of the
// application is read and written as one JSON value.
type Document struct {
	Users    []User    `json:"users"`
	Projects []Project `json:"projects"`
	Todos    []Todo    `json:"todos"`
	Notes    []Note    `json:"notes"`

	// CurrentUser is the session pointer kept by single-user deployments.
	// The HTTP server authenticates with tokens and only round-trips it.
	CurrentUser *string `json:"currentUser"`
}

// NewDocument returns an empty document with all collections allocated, so it
// serializes with empty arrays instead of nulls.
func NewDocument() Document {
	return Document{
		Users:    []User{},
		Projects: []Project{},
		Todos:    []Todo{},
		Notes:    []Note{},
	}
}

// Normalize replaces nil collections with empty ones.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Todos == nil {
		d.Todos = []Todo{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	for i := range d.Projects {
		if d.Projects[i].UserIDs == nil {
			d.Projects[i].UserIDs = []string{}
		}
	}
	for i := range d.Todos {
		if d.Todos[i].Tags == nil {
			d.Todos[i].Tags = []string{}
		}
	}
}
