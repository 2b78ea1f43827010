// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AuthModel is the Bubble Tea model of the login and register pages. It
// renders username and password inputs (plus a confirmation on register) and
// dispatches an async command on submit. A successful [AuthResult] is handled
// by [RootModel] to finish the authentication flow.
type AuthModel struct {
	ctx      context.Context
	session  service.ClientSessionService
	register bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates the login page.
func NewLoginModel(ctx context.Context, session service.ClientSessionService) *AuthModel {
	return newAuthModel(ctx, session, false)
}

// NewRegisterModel creates the register page. It asks for the password twice.
func NewRegisterModel(ctx context.Context, session service.ClientSessionService) *AuthModel {
	return newAuthModel(ctx, session, true)
}

func newAuthModel(ctx context.Context, session service.ClientSessionService, register bool) *AuthModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	inputs := []textinput.Model{usernameInput, passwordInput("password")}
	if register {
		inputs = append(inputs, passwordInput("repeat password"))
	}

	return &AuthModel{
		ctx:      ctx,
		session:  session,
		register: register,
		inputs:   inputs,
	}
}

func passwordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult] clears submitting state; on error, populates errMsg.
//   - esc cancels and navigates back to the menu.
//   - tab and shift+tab move the focus between inputs.
//   - enter validates inputs and dispatches the async command.
//
// All other key events are forwarded to the focused input widget.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			credentials, err := m.credentials()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(credentials)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthModel) credentials() (models.Credentials, error) {
	credentials := models.Credentials{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if credentials.Username == "" || credentials.Password == "" {
		return credentials, errRequiredFields
	}
	if m.register && m.inputs[2].Value() != credentials.Password {
		return credentials, errPasswordsDoNotMatch
	}
	return credentials, nil
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	title, action := "LOG IN", "Log in"
	if m.register {
		title, action = "REGISTER", "Register"
	}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	labels := []string{"Username", "Password", "Repeat"}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(strings.Repeat(" ", 9-len(labels[i])))
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *AuthModel) cmdSubmit(credentials models.Credentials) tea.Cmd {
	ctx, session, register := m.ctx, m.session, m.register

	return func() tea.Msg {
		var (
			user models.User
			err  error
		)
		if register {
			user, err = session.Register(ctx, credentials)
		} else {
			user, err = session.Login(ctx, credentials)
		}
		return AuthResult{User: user, Err: err}
	}
}

func (m *AuthModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
