package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// adminModel is the user management panel.
type adminModel struct {
	users   []models.User
	idx     int
	loading bool
}

func (a *adminModel) setUsers(users []models.User) {
	a.users = users
	a.idx = clamp(a.idx, 0, len(users)-1)
}

func (a adminModel) selected() (models.User, bool) {
	if a.idx < 0 || a.idx >= len(a.users) {
		return models.User{}, false
	}
	return a.users[a.idx], true
}

func (m workspaceModel) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := &m.admin
	user, ok := a.selected()
	cmds := m.cmds

	switch {
	case key.Matches(msg, keys.up):
		a.idx = clamp(a.idx-1, 0, len(a.users)-1)
	case key.Matches(msg, keys.down):
		a.idx = clamp(a.idx+1, 0, len(a.users)-1)
	case key.Matches(msg, keys.newItem):
		m.openForm(newFormModel("New user", []formField{
			{label: "Username"},
			{label: "Password", secret: true},
			{label: "Admin", value: "no", placeholder: "yes or no"},
		}, func(values []string) (tea.Cmd, error) {
			username := strings.TrimSpace(values[0])
			if username == "" || values[1] == "" {
				return nil, errRequiredFields
			}
			return cmds.createUser(models.UserCreate{
				Username: username,
				Password: values[1],
				IsAdmin:  isYes(values[2]),
			}), nil
		}))
	case !ok:
		return m, nil
	case key.Matches(msg, keys.rename):
		m.openForm(newFormModel("Rename "+user.Username, []formField{
			{label: "Username", value: user.Username},
		}, func(values []string) (tea.Cmd, error) {
			username := strings.TrimSpace(values[0])
			if username == "" {
				return nil, errors.New("username is required")
			}
			return cmds.updateUser(user.ID, models.UserUpdate{Username: &username}), nil
		}))
	case key.Matches(msg, keys.priority):
		m.openForm(newFormModel("New password for "+user.Username, []formField{
			{label: "Password", secret: true},
		}, func(values []string) (tea.Cmd, error) {
			if values[0] == "" {
				return nil, errors.New("password is required")
			}
			password := values[0]
			return cmds.updateUser(user.ID, models.UserUpdate{Password: &password}), nil
		}))
	case key.Matches(msg, keys.adminFlag):
		isAdmin := !user.IsAdmin
		return m, cmds.updateUser(user.ID, models.UserUpdate{IsAdmin: &isAdmin})
	case key.Matches(msg, keys.delete):
		m.askDelete(user.Username, cmds.deleteUser(user.ID))
	}
	return m, nil
}

func isYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}

func (a adminModel) View(currentUserID string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Users"))
	b.WriteString("\n\n")

	if a.loading && len(a.users) == 0 {
		b.WriteString("Loading...")
		return b.String()
	}

	for i, u := range a.users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		line := u.Username + "  " + helpStyle.Render(role+"  joined "+u.CreatedAt.Local().Format(dueDateLayout))
		if u.ID == currentUserID {
			line += helpStyle.Render("  (you)")
		}
		cursor := "  "
		if i == a.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
