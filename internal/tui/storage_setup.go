package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// StorageModel asks for the server data directory when the server has none.
// Once the storage is ready it hands over to the menu.
type StorageModel struct {
	ctx     context.Context
	storage service.ClientStorageService

	input      textinput.Model
	checking   bool
	submitting bool
	version    string
	errMsg     string
}

func NewStorageModel(ctx context.Context, storage service.ClientStorageService) *StorageModel {
	input := textinput.New()
	input.Placeholder = "/var/lib/project-hub"
	input.CharLimit = 1024
	input.Width = 50
	input.Focus()

	return &StorageModel{
		ctx:      ctx,
		storage:  storage,
		input:    input,
		checking: true,
	}
}

func (m *StorageModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdStatus())
}

func (m *StorageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storageStatusMsg:
		m.checking = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.version = msg.status.Version
		if msg.status.Initialized {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	case storageInitMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		notice := StatusNotice{Text: msg.resp.Message + ": " + msg.resp.DataPath}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.submitting || m.checking {
				return m, nil
			}
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.errMsg = "Data directory is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdInit(path)
		case "ctrl+r":
			m.checking = true
			m.errMsg = ""
			return m, m.cmdStatus()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *StorageModel) View() string {
	var b strings.Builder

	if m.checking {
		b.WriteString("Checking server storage...\n")
		return renderPage("STORAGE SETUP", b.String(), "")
	}

	b.WriteString("The server has no data directory yet.\n")
	b.WriteString("Choose where project data is kept.\n\n")
	b.WriteString("Directory │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Initialize...]\n")
	} else {
		b.WriteString("\n[Initialize]\n")
	}
	if m.version != "" {
		b.WriteString("\nServer version: ")
		b.WriteString(m.version)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("STORAGE SETUP", strings.TrimRight(b.String(), "\n"), "enter: initialize │ ctrl+r: check again")
}

func (m *StorageModel) cmdStatus() tea.Cmd {
	ctx, storage := m.ctx, m.storage
	return func() tea.Msg {
		status, err := storage.Status(ctx)
		return storageStatusMsg{status: status, err: err}
	}
}

func (m *StorageModel) cmdInit(path string) tea.Cmd {
	ctx, storage := m.ctx, m.storage
	return func() tea.Msg {
		resp, err := storage.Initialize(ctx, path)
		return storageInitMsg{resp: resp, err: err}
	}
}
