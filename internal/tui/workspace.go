package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewKind int

const (
	viewProjects viewKind = iota
	viewDashboard
	viewAdmin
)

type pane int

const (
	paneSidebar pane = iota
	paneContent
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayForm
	overlayEditor
	overlayConfirm
	overlayError
	overlayShare
)

// Screen layout: header and divider, then the body, then status and help.
const (
	headerLines = 2
	footerLines = 3
)

// workspaceModel is the main screen shown to a signed-in user.
type workspaceModel struct {
	cmds commands
	user models.User

	width  int
	height int
	view   viewKind
	focus  pane

	data    models.Workspace
	loading bool
	sidebar sidebarModel

	openID  string
	itemIdx int

	dashboard dashboardModel
	admin     adminModel
	share     shareModel

	overlay       overlayKind
	form          formModel
	editor        editorModel
	confirm       confirmModel
	pendingDelete tea.Cmd
	errOverlay    errorOverlayModel

	status string
	logout bool
}

func newWorkspaceModel(ctx context.Context, services *service.ClientServices, user models.User) workspaceModel {
	return workspaceModel{
		cmds: commands{
			ctx:       ctx,
			session:   services.SessionService,
			workspace: services.WorkspaceService,
		},
		user:      user,
		loading:   true,
		sidebar:   newSidebarModel(),
		dashboard: newDashboardModel(),
	}
}

func (m workspaceModel) Init() tea.Cmd {
	return m.cmds.load()
}

func (m workspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sidebar.setHeight(m.bodyHeight())
		return m, nil
	case workspaceLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		if m.sidebar.dragging() {
			m.sidebar.deferred = &msg.workspace
			return m, nil
		}
		m.setWorkspace(msg.workspace)
		return m, nil
	case projectsMovedMsg:
		if msg.err != nil {
			model, cmd := m.failed(msg.err)
			return model, tea.Batch(cmd, m.cmds.load())
		}
		ws := m.data
		ws.Projects = msg.projects
		m.setWorkspace(ws)
		m.status = "Project moved"
		return m, cmdClearStatus()
	case opDoneMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.status = msg.status
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.dashboard.setTodos(msg.todos)
		return m, nil
	case usersLoadedMsg:
		if msg.forShare {
			m.share.loading = false
			m.share.err = ""
			if msg.err != nil {
				m.share.err = humanizeServerUnavailableError(msg.err)
				return m, nil
			}
			m.share.setUsers(msg.users)
			return m, nil
		}
		m.admin.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.admin.setUsers(msg.users)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.status = "Copied " + msg.what
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	case tea.MouseMsg:
		if m.overlay != overlayNone || m.view != viewProjects {
			return m, nil
		}
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateOverlay(msg)
}

func (m workspaceModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = overlayNone
			m.errOverlay.message = ""
		}
		return m, nil
	case overlayConfirm:
		if key.Matches(msg, keys.yes) {
			m.overlay = overlayNone
			cmd := m.pendingDelete
			m.pendingDelete = nil
			return m, cmd
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.overlay = overlayNone
			m.pendingDelete = nil
		}
		return m, nil
	case overlayShare:
		return m.updateShare(msg)
	case overlayForm, overlayEditor:
		return m.updateOverlay(msg)
	}

	if m.sidebar.keyboardMove() {
		return m.updateKeyboardMove(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, m.cmds.logout()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.reload()
	case key.Matches(msg, keys.password):
		m.openPasswordForm()
		return m, nil
	case key.Matches(msg, keys.projects):
		m.view = viewProjects
		return m, nil
	case key.Matches(msg, keys.dashboard):
		m.view = viewDashboard
		m.dashboard.loading = true
		return m, m.cmds.dashboard(m.dashboard.query)
	case key.Matches(msg, keys.admin):
		if !m.user.IsAdmin {
			m.status = "Admin rights required"
			return m, cmdClearStatus()
		}
		m.view = viewAdmin
		m.admin.loading = true
		return m, m.cmds.users(false)
	}

	switch m.view {
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewAdmin:
		return m.updateAdmin(msg)
	}

	if key.Matches(msg, keys.tab) || key.Matches(msg, keys.backtab) {
		if m.focus == paneSidebar && m.openID != "" {
			m.focus = paneContent
		} else {
			m.focus = paneSidebar
		}
		return m, nil
	}

	if m.focus == paneContent {
		return m.updateProject(msg)
	}
	return m.updateSidebar(msg)
}

// updateOverlay forwards any message to an open form or editor, so text
// inputs keep receiving blink ticks.
func (m workspaceModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		closed bool
	)
	switch m.overlay {
	case overlayForm:
		m.form, cmd, closed = m.form.update(msg)
	case overlayEditor:
		m.editor, cmd, closed = m.editor.update(msg)
	default:
		return m, nil
	}
	if closed {
		m.overlay = overlayNone
	}
	return m, cmd
}

// reload refreshes the workspace and the data of the active view.
func (m workspaceModel) reload() tea.Cmd {
	cmds := []tea.Cmd{m.cmds.load()}
	switch m.view {
	case viewDashboard:
		cmds = append(cmds, m.cmds.dashboard(m.dashboard.query))
	case viewAdmin:
		cmds = append(cmds, m.cmds.users(false))
	}
	return tea.Batch(cmds...)
}

func (m *workspaceModel) setWorkspace(ws models.Workspace) {
	m.data = ws
	m.sidebar.setProjects(ws.Projects)

	if _, ok := m.sidebar.forest.Project(m.openID); !ok {
		m.openID = ""
		m.focus = paneSidebar
	}
	m.itemIdx = clamp(m.itemIdx, 0, m.itemCount()-1)
}

func (m workspaceModel) failed(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrNotInitialized) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		m.logout = true
		return m, tea.Quit
	}
	m.showError(humanizeServerUnavailableError(err))
	return m, nil
}

func (m *workspaceModel) showError(message string) {
	m.overlay = overlayError
	m.errOverlay.message = message
}

func (m *workspaceModel) openForm(form formModel) {
	m.form = form
	m.overlay = overlayForm
}

func (m *workspaceModel) openEditor(editor editorModel) {
	m.editor = editor
	m.overlay = overlayEditor
}

func (m *workspaceModel) askDelete(name string, cmd tea.Cmd) {
	m.confirm = confirmModel{message: name}
	m.pendingDelete = cmd
	m.overlay = overlayConfirm
}

func (m *workspaceModel) openPasswordForm() {
	cmds := m.cmds
	m.openForm(newFormModel("Change password", []formField{
		{label: "Current", secret: true},
		{label: "New", secret: true},
		{label: "Repeat", secret: true},
	}, func(values []string) (tea.Cmd, error) {
		if values[0] == "" || values[1] == "" {
			return nil, errRequiredFields
		}
		if values[1] != values[2] {
			return nil, errPasswordsDoNotMatch
		}
		return cmds.changePassword(models.PasswordChange{
			CurrentPassword: values[0],
			NewPassword:     values[1],
		}), nil
	}))
}

func (m workspaceModel) bodyHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

func (m workspaceModel) View() string {
	if m.overlay != overlayNone && m.overlay != overlayShare {
		var box string
		switch m.overlay {
		case overlayForm:
			box = m.form.View()
		case overlayEditor:
			box = m.editor.View()
		case overlayConfirm:
			box = m.confirm.View()
		case overlayError:
			box = m.errOverlay.View()
		}
		return m.center(box)
	}
	if m.overlay == overlayShare {
		return m.center(m.shareView())
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	var body string
	switch m.view {
	case viewDashboard:
		body = m.dashboard.View()
	case viewAdmin:
		body = m.admin.View(m.user.ID)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.sidebar.View(m.focus == paneSidebar),
			" ",
			m.projectView(),
		)
	}
	if m.height > 0 {
		body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(uiDivider)
	b.WriteString("\n")
	status := m.status
	if m.loading {
		status = "Loading..."
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpView()))

	return b.String()
}

func (m workspaceModel) center(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m workspaceModel) headerView() string {
	tabs := []string{"[1] Projects", "[2] Dashboard"}
	if m.user.IsAdmin {
		tabs = append(tabs, "[3] Admin")
	}
	for i := range tabs {
		if viewKind(i) == m.view {
			tabs[i] = selectedStyle.Render(tabs[i])
		}
	}

	who := m.user.Username
	if m.user.IsAdmin {
		who += " (admin)"
	}
	return titleStyle.Render("PROJECT HUB") + " │ " + who + " │ " + strings.Join(tabs, "  ")
}

func (m workspaceModel) helpView() string {
	if m.sidebar.keyboardMove() {
		return "↑/↓: pick target │ enter: drop here │ >: nest inside │ esc: cancel"
	}
	switch m.view {
	case viewDashboard:
		return "↑/↓: navigate │ s: sort key │ o: order │ space: done │ enter: open project │ c: copy │ q: quit"
	case viewAdmin:
		return "↑/↓: navigate │ n: new │ r: rename │ p: password │ a: admin │ d: delete │ q: quit"
	}
	if m.focus == paneContent {
		return "t: todo │ o: note │ e: edit │ space: done │ p: priority │ d: delete │ c: copy │ tab: tree │ q: quit"
	}
	return "n: project │ a: subproject │ r: rename │ m: move │ s: share │ d: delete │ y: copy id │ P: password │ L: logout │ q: quit"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
