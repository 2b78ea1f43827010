package tree

import "github.com/MKhiriev/go-project-hub/models"

// rootKey is the parent key of root projects.
const rootKey = ""

// Forest is a read-only view of a project slice as a forest.
type Forest struct {
	projects []models.Project
	index    map[string]int
	parent   map[string]string
	children map[string][]string
}

func NewForest(projects []models.Project) *Forest {
	f := &Forest{
		projects: projects,
		index:    make(map[string]int, len(projects)),
		parent:   make(map[string]string, len(projects)),
		children: make(map[string][]string),
	}
	for i, p := range projects {
		if _, dup := f.index[p.ID]; !dup {
			f.index[p.ID] = i
		}
	}
	for i, p := range projects {
		if f.index[p.ID] != i {
			continue
		}
		f.parent[p.ID] = f.effectiveParent(p)
	}
	for i, p := range projects {
		if f.index[p.ID] != i {
			continue
		}
		key := f.parent[p.ID]
		f.children[key] = append(f.children[key], p.ID)
	}
	return f
}

// effectiveParent resolves the parent id of p, falling back to the root key
// for dangling references and loops.
func (f *Forest) effectiveParent(p models.Project) string {
	parentID := p.ParentIDValue()
	if parentID == "" || parentID == p.ID {
		return rootKey
	}
	if _, ok := f.index[parentID]; !ok {
		return rootKey
	}

	seen := map[string]bool{p.ID: true}
	for cur := parentID; cur != ""; {
		if seen[cur] {
			return rootKey
		}
		seen[cur] = true

		i, ok := f.index[cur]
		if !ok {
			break
		}
		cur = f.projects[i].ParentIDValue()
	}
	return parentID
}

func (f *Forest) Len() int {
	return len(f.projects)
}

func (f *Forest) Project(id string) (models.Project, bool) {
	i, ok := f.index[id]
	if !ok {
		return models.Project{}, false
	}
	return f.projects[i], true
}

func (f *Forest) Roots() []models.Project {
	return f.collect(f.children[rootKey])
}

func (f *Forest) Children(id string) []models.Project {
	if id == rootKey {
		return nil
	}
	return f.collect(f.children[id])
}

func (f *Forest) HasChildren(id string) bool {
	return id != rootKey && len(f.children[id]) > 0
}

// Siblings returns the sibling group of id, id included, in stored order.
func (f *Forest) Siblings(id string) []models.Project {
	key, ok := f.parent[id]
	if !ok {
		return nil
	}
	return f.collect(f.children[key])
}

// AreSiblings reports whether a and b share the same effective parent.
func (f *Forest) AreSiblings(a, b string) bool {
	pa, okA := f.parent[a]
	pb, okB := f.parent[b]
	return okA && okB && pa == pb
}

// Parent returns the effective parent of id. Roots have none.
func (f *Forest) Parent(id string) (models.Project, bool) {
	key, ok := f.parent[id]
	if !ok || key == rootKey {
		return models.Project{}, false
	}
	return f.Project(key)
}

// ParentID returns the effective parent id of id, empty for roots.
func (f *Forest) ParentID(id string) string {
	return f.parent[id]
}

// Depth is 0 for roots.
func (f *Forest) Depth(id string) int {
	depth := 0
	for cur := f.parent[id]; cur != rootKey; cur = f.parent[cur] {
		depth++
	}
	return depth
}

// IsDescendant reports whether id lies strictly below ancestorID.
func (f *Forest) IsDescendant(ancestorID, id string) bool {
	for cur := f.parent[id]; cur != rootKey; cur = f.parent[cur] {
		if cur == ancestorID {
			return true
		}
	}
	return false
}

// Path lists the names from the root down to id.
func (f *Forest) Path(id string) []string {
	p, ok := f.Project(id)
	if !ok {
		return nil
	}
	path := []string{p.Name}
	for cur := f.parent[id]; cur != rootKey; cur = f.parent[cur] {
		parent, _ := f.Project(cur)
		path = append([]string{parent.Name}, path...)
	}
	return path
}

func (f *Forest) collect(ids []string) []models.Project {
	out := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.projects[f.index[id]])
	}
	return out
}
