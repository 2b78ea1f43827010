package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var sortKeys = []models.SortKey{models.SortByUpdated, models.SortByCreated, models.SortByDue}

// dashboardModel lists the todos of every visible project. Completed todos
// always come last, as returned by the server.
type dashboardModel struct {
	todos   []models.DashboardTodo
	query   models.DashboardQuery
	idx     int
	loading bool
}

func newDashboardModel() dashboardModel {
	return dashboardModel{
		query: models.DashboardQuery{Sort: models.SortByUpdated, Order: models.SortDesc},
	}
}

func (d *dashboardModel) setTodos(todos []models.DashboardTodo) {
	d.todos = todos
	d.idx = clamp(d.idx, 0, len(todos)-1)
}

// cycleSort switches to the next sort key.
func (d *dashboardModel) cycleSort() {
	for i, k := range sortKeys {
		if k == d.query.Sort {
			d.query.Sort = sortKeys[(i+1)%len(sortKeys)]
			return
		}
	}
	d.query.Sort = sortKeys[0]
}

func (d *dashboardModel) toggleOrder() {
	if d.query.Order == models.SortAsc {
		d.query.Order = models.SortDesc
	} else {
		d.query.Order = models.SortAsc
	}
}

func (d dashboardModel) selected() (models.DashboardTodo, bool) {
	if d.idx < 0 || d.idx >= len(d.todos) {
		return models.DashboardTodo{}, false
	}
	return d.todos[d.idx], true
}

func (m workspaceModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.dashboard
	todo, ok := d.selected()

	switch {
	case key.Matches(msg, keys.up):
		d.idx = clamp(d.idx-1, 0, len(d.todos)-1)
	case key.Matches(msg, keys.down):
		d.idx = clamp(d.idx+1, 0, len(d.todos)-1)
	case key.Matches(msg, keys.sortKey):
		d.cycleSort()
		d.loading = true
		return m, m.cmds.dashboard(d.query)
	case key.Matches(msg, keys.sortOrder):
		d.toggleOrder()
		d.loading = true
		return m, m.cmds.dashboard(d.query)
	case key.Matches(msg, keys.toggle):
		if ok {
			done := !todo.Completed
			return m, m.cmds.updateTodo(todo.ID, models.TodoUpdate{Completed: &done})
		}
	case key.Matches(msg, keys.copy):
		if ok {
			return m, cmdCopy(todo.Title, "todo")
		}
	case key.Matches(msg, keys.enter):
		if ok {
			m.view = viewProjects
			m.sidebar.selectID(todo.ProjectID)
			m.open(todo.ProjectID)
		}
	}
	return m, nil
}

func (d dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  sorted by %s, %s", d.query.Sort, d.query.Order)))
	b.WriteString("\n\n")

	if d.loading && len(d.todos) == 0 {
		b.WriteString("Loading...")
		return b.String()
	}
	if len(d.todos) == 0 {
		b.WriteString(helpStyle.Render("No todos yet"))
		return b.String()
	}

	for i, t := range d.todos {
		line := fmt.Sprintf("%s %s %-40s %-20s %s",
			checkbox(t.Completed),
			priorityMark(t.Priority),
			fitText(t.Title, 40),
			fitText(t.ProjectName, 20),
			valueOrDash(formatDue(t.DueDate)),
		)
		if t.Completed {
			line = completedStyle.Render(line)
		}
		cursor := "  "
		if i == d.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
