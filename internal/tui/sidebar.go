package tui

import (
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/tree"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 32

	// sidebarTop is the screen line of the first tree row: header, divider
	// and the sidebar title come before it.
	sidebarTop = headerLines + 1

	// nestOffset is how far right of a row's label start the pointer must be
	// for a drop to nest instead of reorder.
	nestOffset = 6
)

type dragMode int

const (
	dragNone dragMode = iota
	dragMouse
	dragKeyboard
)

// sidebarModel renders the project forest and tracks drag gestures over it.
type sidebarModel struct {
	forest    *tree.Forest
	expansion *tree.Expansion
	drag      *tree.Drag
	rows      []tree.Row

	cursor int
	offset int
	height int

	mode dragMode
	// deferred holds a workspace that arrived mid-drag.
	deferred *models.Workspace
}

func newSidebarModel() sidebarModel {
	forest := tree.NewForest(nil)
	return sidebarModel{
		forest:    forest,
		expansion: tree.NewExpansion(),
		drag:      tree.NewDrag(forest, tree.EdgeThreshold{Offset: nestOffset}),
	}
}

// setProjects rebuilds the forest. The cursor stays on the same project.
func (s *sidebarModel) setProjects(projects []models.Project) {
	current := s.currentID()
	s.forest = tree.NewForest(projects)
	s.drag = tree.NewDrag(s.forest, tree.EdgeThreshold{Offset: nestOffset})
	s.refreshRows()
	s.selectID(current)
}

func (s *sidebarModel) refreshRows() {
	current := s.currentID()
	s.rows = s.expansion.Visible(s.forest)
	s.selectID(current)
}

func (s *sidebarModel) setHeight(bodyHeight int) {
	s.height = max(bodyHeight-1, 1)
	s.scrollToCursor()
}

func (s sidebarModel) dragging() bool {
	return s.mode != dragNone
}

func (s sidebarModel) keyboardMove() bool {
	return s.mode == dragKeyboard
}

func (s sidebarModel) currentID() string {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return ""
	}
	return s.rows[s.cursor].Project.ID
}

func (s sidebarModel) indexOf(id string) int {
	for i, row := range s.rows {
		if row.Project.ID == id {
			return i
		}
	}
	return -1
}

func (s *sidebarModel) selectID(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.cursor = i
	}
	s.cursor = clamp(s.cursor, 0, len(s.rows)-1)
	s.scrollToCursor()
}

func (s *sidebarModel) moveCursor(delta int) {
	s.cursor = clamp(s.cursor+delta, 0, len(s.rows)-1)
	s.scrollToCursor()
}

func (s *sidebarModel) scrollToCursor() {
	if s.height <= 0 {
		return
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	s.offset = clamp(s.offset, 0, max(len(s.rows)-s.height, 0))
}

// expand reveals the children of the current project, collapse hides them or
// jumps to the parent when already collapsed.
func (s *sidebarModel) expand() {
	if s.cursor >= len(s.rows) {
		return
	}
	row := s.rows[s.cursor]
	if row.HasChildren && !row.Expanded {
		s.expansion.Expand(row.Project.ID)
		s.refreshRows()
	}
}

func (s *sidebarModel) collapse() {
	if s.cursor >= len(s.rows) {
		return
	}
	row := s.rows[s.cursor]
	if row.Expanded {
		s.expansion.Collapse(row.Project.ID)
		s.refreshRows()
		return
	}
	if parentID := s.forest.ParentID(row.Project.ID); parentID != "" {
		s.selectID(parentID)
	}
}

// rowAt maps a screen line to a row index, or -1.
func (s sidebarModel) rowAt(y int) int {
	i := y - sidebarTop
	if i < 0 || (s.height > 0 && i >= s.height) {
		return -1
	}
	idx := s.offset + i
	if idx >= len(s.rows) {
		return -1
	}
	return idx
}

// rowRect is the bounding box of a row's label in screen cells.
func (s sidebarModel) rowRect(idx int) tree.Rect {
	indent := float64(s.rows[idx].Depth * 2)
	return tree.Rect{
		X:      indent,
		Y:      float64(sidebarTop + idx - s.offset),
		Width:  sidebarWidth - indent,
		Height: 1,
	}
}

// pointer places the pointer inside the target row. Terminal rows are one
// cell high, so moving up means the upper half and moving down the lower one.
func (s sidebarModel) pointer(x, idx int) tree.Point {
	y := float64(sidebarTop+idx-s.offset) + 0.75
	if idx < s.indexOf(s.drag.SourceID()) {
		y -= 0.5
	}
	return tree.Point{X: float64(x), Y: y}
}

// hover reports the pointer over row idx to the drag gesture.
func (s *sidebarModel) hover(idx, x int) {
	if idx < 0 {
		s.drag.Leave()
		return
	}
	s.drag.Over(s.rows[idx].Project.ID, s.rowRect(idx), s.pointer(x, idx))
}

// drop ends the gesture and returns the move, if any, plus a workspace that
// arrived while dragging.
func (s *sidebarModel) drop() (tree.Move, bool, *models.Workspace) {
	move, ok := s.drag.Drop()
	s.mode = dragNone
	deferred := s.deferred
	s.deferred = nil
	return move, ok, deferred
}

func (s *sidebarModel) cancel() *models.Workspace {
	s.drag.Cancel()
	s.mode = dragNone
	deferred := s.deferred
	s.deferred = nil
	return deferred
}

func (s sidebarModel) View(focused bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))

	if len(s.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("no projects, press n"))
	}

	end := len(s.rows)
	if s.height > 0 {
		end = min(end, s.offset+s.height)
	}
	line := lipgloss.NewStyle().Width(sidebarWidth).MaxWidth(sidebarWidth)

	for i := s.offset; i < end; i++ {
		row := s.rows[i]
		indent := strings.Repeat("  ", row.Depth)

		marker := "  "
		if row.HasChildren {
			marker = "▸ "
			if row.Expanded {
				marker = "▾ "
			}
		}

		hint := ""
		switch {
		case s.drag.SourceID() == row.Project.ID:
			hint = " ⇅"
		case s.drag.TargetID() == row.Project.ID && s.drag.State() == tree.Reparenting:
			hint = " ⤷"
		case s.drag.TargetID() == row.Project.ID && s.drag.Position() == models.PositionBefore:
			hint = " ↑"
		case s.drag.TargetID() == row.Project.ID:
			hint = " ↓"
		}

		name := fitText(row.Project.Name, sidebarWidth-len([]rune(indent))-2-len([]rune(hint)))
		text := line.Render(indent + marker + name + hint)

		switch {
		case s.drag.TargetID() == row.Project.ID:
			text = dropTargetStyle.Render(text)
		case i == s.cursor && focused:
			text = selectedStyle.Render(text)
		case i == s.cursor:
			text = titleStyle.Render(text)
		}

		b.WriteString("\n")
		b.WriteString(text)
	}

	return sidebarStyle.Render(line.Render(b.String()))
}
