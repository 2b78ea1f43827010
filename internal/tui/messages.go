package tui

import "github.com/MKhiriev/go-project-hub/models"

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	User models.User
	Err  error
}

// StatusNotice is shown once on the page it is delivered to.
type StatusNotice struct {
	Text string
}

type storageStatusMsg struct {
	status models.StorageStatus
	err    error
}

type storageInitMsg struct {
	resp models.InitResponse
	err  error
}

type workspaceLoadedMsg struct {
	workspace models.Workspace
	err       error
}

type dashboardLoadedMsg struct {
	todos []models.DashboardTodo
	err   error
}

// usersLoadedMsg feeds the admin panel, or the share dialog when forShare is set.
type usersLoadedMsg struct {
	users    []models.User
	forShare bool
	err      error
}

// opDoneMsg ends a mutation. A successful one triggers a reload.
type opDoneMsg struct {
	status string
	err    error
}

type projectsMovedMsg struct {
	projects []models.Project
	err      error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
