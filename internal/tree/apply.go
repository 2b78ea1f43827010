package tree

import (
	"errors"

	"github.com/MKhiriev/go-project-hub/models"
)

var (
	// ErrCycle is returned when nesting would put a project below itself.
	ErrCycle = errors.New("move would create a cycle")

	ErrSourceNotFound = errors.New("moved project not found")
	ErrInvalidMode    = errors.New("invalid move mode")
)

// Move is a completed drop: SourceID is placed relative to TargetID.
type Move struct {
	SourceID string
	TargetID string
	Mode     models.MoveMode
	Position models.MovePosition
}

// Apply returns a copy of projects with m applied and whether anything
// changed. Nesting only rewrites the source's parent id. Reordering only
// permutes the slots held by the source's sibling group, so projects outside
// the group keep their positions.
//
// A move without a known target, onto the source itself, nesting under the
// current parent or reordering into the same slot is a no-op. Reordering onto
// a project of another sibling group nests instead.
func Apply(projects []models.Project, m Move) ([]models.Project, bool, error) {
	f := NewForest(projects)
	if _, ok := f.Project(m.SourceID); !ok {
		return projects, false, ErrSourceNotFound
	}
	if m.Mode != models.MoveNest && m.Mode != models.MoveReorder {
		return projects, false, ErrInvalidMode
	}
	if m.TargetID == "" || m.TargetID == m.SourceID {
		return projects, false, nil
	}
	if _, ok := f.Project(m.TargetID); !ok {
		return projects, false, nil
	}

	if m.Mode == models.MoveReorder && f.AreSiblings(m.SourceID, m.TargetID) {
		return reorder(projects, f, m)
	}
	return nest(projects, f, m)
}

func nest(projects []models.Project, f *Forest, m Move) ([]models.Project, bool, error) {
	if f.ParentID(m.SourceID) == m.TargetID {
		return projects, false, nil
	}
	if f.IsDescendant(m.SourceID, m.TargetID) {
		return projects, false, ErrCycle
	}

	out := clone(projects)
	target := m.TargetID
	out[f.index[m.SourceID]].ParentID = &target
	return out, true, nil
}

func reorder(projects []models.Project, f *Forest, m Move) ([]models.Project, bool, error) {
	group := f.Siblings(m.SourceID)

	// slots are the positions of the group in the full slice
	slots := make([]int, len(group))
	from, to := -1, -1
	for i, p := range group {
		slots[i] = f.index[p.ID]
		switch p.ID {
		case m.SourceID:
			from = i
		case m.TargetID:
			to = i
		}
	}

	ordered := moveWithin(group, from, to, m.Position)
	changed := false
	for i := range ordered {
		if ordered[i].ID != group[i].ID {
			changed = true
			break
		}
	}
	if !changed {
		return projects, false, nil
	}

	out := clone(projects)
	for i, slot := range slots {
		out[slot] = ordered[i]
	}
	return out, true, nil
}

// moveWithin moves items[from] next to items[to]. The slot position makes the
// source take the target's index.
func moveWithin(items []models.Project, from, to int, pos models.MovePosition) []models.Project {
	rest := make([]models.Project, 0, len(items)-1)
	rest = append(rest, items[:from]...)
	rest = append(rest, items[from+1:]...)

	var at int
	switch pos {
	case models.PositionBefore, models.PositionAfter:
		at = to
		if to > from {
			at--
		}
		if pos == models.PositionAfter {
			at++
		}
	default:
		at = to
	}

	out := make([]models.Project, 0, len(items))
	out = append(out, rest[:at]...)
	out = append(out, items[from])
	out = append(out, rest[at:]...)
	return out
}

func clone(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}
