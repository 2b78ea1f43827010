package tui

import (
	"strings"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shareModel toggles access of users to one project. Listing users needs
// admin rights, so everybody else shares by user id.
type shareModel struct {
	projectID string
	users     []models.User
	idx       int
	loading   bool
	err       string
}

func newShareModel(projectID string) shareModel {
	return shareModel{projectID: projectID, loading: true}
}

func (s *shareModel) setUsers(users []models.User) {
	s.users = users
	s.idx = clamp(s.idx, 0, len(users)-1)
}

// candidates are all users but the owner, who keeps access anyway.
func (s shareModel) candidates(project models.Project) []models.User {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != project.OwnerID {
			out = append(out, u)
		}
	}
	return out
}

func (m workspaceModel) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.share
	project, ok := m.sidebar.forest.Project(s.projectID)
	if !ok {
		m.overlay = overlayNone
		return m, nil
	}
	users := s.candidates(project)
	cmds := m.cmds

	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
	case key.Matches(msg, keys.up):
		s.idx = clamp(s.idx-1, 0, len(users)-1)
	case key.Matches(msg, keys.down):
		s.idx = clamp(s.idx+1, 0, len(users)-1)
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
		if s.idx < len(users) {
			return m, cmds.shareProject(project.ID, users[s.idx].ID)
		}
	case msg.String() == "i":
		m.openForm(newFormModel("Share "+project.Name, []formField{
			{label: "User ID", placeholder: "id of the user to add or remove"},
		}, func(values []string) (tea.Cmd, error) {
			userID := strings.TrimSpace(values[0])
			if userID == "" {
				return nil, errRequiredFields
			}
			return cmds.shareProject(project.ID, userID), nil
		}))
	}
	return m, nil
}

func (m workspaceModel) shareView() string {
	s := m.share
	project, _ := m.sidebar.forest.Project(s.projectID)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Share " + project.Name))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString("Loading users...\n")
	case s.err != "":
		b.WriteString(errorStyle.Render(s.err))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press i to share by user id"))
		b.WriteString("\n")
	default:
		users := s.candidates(project)
		if len(users) == 0 {
			b.WriteString(helpStyle.Render("No other users"))
			b.WriteString("\n")
		}
		for i, u := range users {
			line := checkbox(project.HasUser(u.ID)) + " " + u.Username
			cursor := "  "
			if i == s.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: toggle │ i: by id │ esc: close"))
	return overlayBoxStyle.Render(b.String())
}
