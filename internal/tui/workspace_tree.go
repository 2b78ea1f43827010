package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/tree"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m workspaceModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.sidebar
	current, hasCurrent := s.forest.Project(s.currentID())

	switch {
	case key.Matches(msg, keys.up):
		s.moveCursor(-1)
	case key.Matches(msg, keys.down):
		s.moveCursor(1)
	case key.Matches(msg, keys.right):
		s.expand()
	case key.Matches(msg, keys.left):
		s.collapse()
	case key.Matches(msg, keys.enter):
		if hasCurrent {
			m.open(current.ID)
		}
	case key.Matches(msg, keys.newItem):
		m.openProjectForm(nil)
	case key.Matches(msg, keys.newChild):
		if hasCurrent {
			m.openProjectForm(&current)
		}
	case key.Matches(msg, keys.rename):
		if hasCurrent {
			m.openRenameForm(current)
		}
	case key.Matches(msg, keys.delete):
		if hasCurrent {
			m.askDelete(current.Name, m.cmds.deleteProject(current.ID))
		}
	case key.Matches(msg, keys.move):
		if hasCurrent && s.drag.Start(current.ID) {
			s.mode = dragKeyboard
		}
	case key.Matches(msg, keys.share):
		if hasCurrent {
			m.share = newShareModel(current.ID)
			m.overlay = overlayShare
			return m, m.cmds.users(true)
		}
	case key.Matches(msg, keys.copyID):
		if hasCurrent {
			return m, cmdCopy(current.ID, "project id")
		}
	}
	return m, nil
}

func (m *workspaceModel) open(projectID string) {
	m.openID = projectID
	m.itemIdx = 0
	m.focus = paneContent
}

// updateKeyboardMove drives the drag gesture from the keyboard: the cursor
// picks the target, enter drops in the reorder zone and > in the nest zone.
func (m workspaceModel) updateKeyboardMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.sidebar

	switch {
	case key.Matches(msg, keys.esc):
		if deferred := s.cancel(); deferred != nil {
			m.setWorkspace(*deferred)
		}
		return m, nil
	case key.Matches(msg, keys.up):
		s.moveCursor(-1)
	case key.Matches(msg, keys.down):
		s.moveCursor(1)
	case key.Matches(msg, keys.right):
		s.expand()
	case key.Matches(msg, keys.left):
		s.collapse()
	case key.Matches(msg, keys.enter):
		if s.cursor < len(s.rows) {
			s.hover(s.cursor, int(s.rowRect(s.cursor).X))
		}
		return m.drop()
	case key.Matches(msg, keys.nest):
		if s.cursor < len(s.rows) {
			s.hover(s.cursor, int(s.rowRect(s.cursor).X)+nestOffset)
		}
		return m.drop()
	default:
		return m, nil
	}

	if s.cursor < len(s.rows) {
		s.hover(s.cursor, int(s.rowRect(s.cursor).X))
	}
	return m, nil
}

func (m workspaceModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := &m.sidebar

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			s.moveCursor(1)
		}
		return m, nil
	}

	idx := -1
	if msg.X < sidebarWidth {
		idx = s.rowAt(msg.Y)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || idx < 0 || s.keyboardMove() {
			return m, nil
		}
		s.cursor = idx
		m.focus = paneSidebar
		if s.drag.Start(s.rows[idx].Project.ID) {
			s.mode = dragMouse
		}
	case tea.MouseActionMotion:
		if s.mode == dragMouse {
			s.hover(idx, msg.X)
		}
	case tea.MouseActionRelease:
		if s.mode != dragMouse {
			return m, nil
		}
		source := s.drag.SourceID()
		if s.drag.State() == tree.Dragging {
			// A click without a target opens the project.
			m.open(source)
		}
		return m.drop()
	}
	return m, nil
}

// drop finishes the gesture. The move is applied locally first and then sent
// to the server, whose answer replaces the local result.
func (m workspaceModel) drop() (tea.Model, tea.Cmd) {
	move, ok, deferred := m.sidebar.drop()
	if deferred != nil {
		m.setWorkspace(*deferred)
	}
	if !ok {
		return m, nil
	}

	projects, changed, err := tree.Apply(m.data.Projects, move)
	if err != nil {
		if errors.Is(err, tree.ErrCycle) {
			m.showError("A project cannot be moved below itself")
		} else {
			m.showError(err.Error())
		}
		return m, nil
	}
	if !changed {
		m.status = "Nothing to move"
		return m, cmdClearStatus()
	}

	if moved, found := findProject(projects, move.SourceID); found && moved.ParentIDValue() == move.TargetID {
		m.sidebar.expansion.Expand(move.TargetID)
	}
	ws := m.data
	ws.Projects = projects
	m.setWorkspace(ws)
	m.sidebar.selectID(move.SourceID)

	return m, m.cmds.moveProject(move)
}

func findProject(projects []models.Project, id string) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func (m *workspaceModel) openProjectForm(parent *models.Project) {
	cmds := m.cmds
	title := "New project"
	var parentID *string
	if parent != nil {
		title = "New subproject of " + parent.Name
		id := parent.ID
		parentID = &id
		m.sidebar.expansion.Expand(id)
		m.sidebar.refreshRows()
	}

	m.openForm(newFormModel(title, []formField{
		{label: "Name", placeholder: "project name"},
		{label: "Data path", placeholder: "optional directory"},
	}, func(values []string) (tea.Cmd, error) {
		name := strings.TrimSpace(values[0])
		if name == "" {
			return nil, errors.New("name is required")
		}
		return cmds.createProject(models.ProjectCreate{
			Name:     name,
			ParentID: parentID,
			DataPath: strings.TrimSpace(values[1]),
		}), nil
	}))
}

func (m *workspaceModel) openRenameForm(project models.Project) {
	cmds := m.cmds
	m.openForm(newFormModel("Edit project", []formField{
		{label: "Name", value: project.Name},
		{label: "Data path", value: project.DataPath},
	}, func(values []string) (tea.Cmd, error) {
		name := strings.TrimSpace(values[0])
		if name == "" {
			return nil, errors.New("name is required")
		}
		dataPath := strings.TrimSpace(values[1])
		return cmds.updateProject(project.ID, models.ProjectUpdate{
			Name:     &name,
			DataPath: &dataPath,
		}), nil
	}))
}
