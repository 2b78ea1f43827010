package tree

import "github.com/MKhiriev/go-project-hub/models"

// Expansion holds the expanded flag of every project, keyed by id.
// Projects are collapsed unless expanded explicitly.
type Expansion struct {
	expanded map[string]bool
}

func NewExpansion() *Expansion {
	return &Expansion{expanded: make(map[string]bool)}
}

// Toggle flips the flag and returns the new value.
func (e *Expansion) Toggle(id string) bool {
	e.expanded[id] = !e.expanded[id]
	return e.expanded[id]
}

func (e *Expansion) Expand(id string) {
	e.expanded[id] = true
}

func (e *Expansion) Collapse(id string) {
	delete(e.expanded, id)
}

func (e *Expansion) IsExpanded(id string) bool {
	return e.expanded[id]
}

// Row is one visible line of the rendered tree.
type Row struct {
	Project     models.Project
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Visible flattens the forest into rows. Children of a project are listed
// right after it when it is expanded, and the same rule applies to them.
func (e *Expansion) Visible(f *Forest) []Row {
	rows := make([]Row, 0, f.Len())
	var walk func(projects []models.Project, depth int)
	walk = func(projects []models.Project, depth int) {
		for _, p := range projects {
			expanded := e.expanded[p.ID]
			rows = append(rows, Row{
				Project:     p,
				Depth:       depth,
				HasChildren: f.HasChildren(p.ID),
				Expanded:    expanded,
			})
			if expanded {
				walk(f.Children(p.ID), depth+1)
			}
		}
	}
	walk(f.Roots(), 0)
	return rows
}
