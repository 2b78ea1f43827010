package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// editorModel edits note content in a multi-line textarea.
type editorModel struct {
	title  string
	area   textarea.Model
	submit func(content string) tea.Cmd
	errMsg string
}

func newEditorModel(title, content string, submit func(content string) tea.Cmd) editorModel {
	area := textarea.New()
	area.Placeholder = "Markdown..."
	area.SetWidth(60)
	area.SetHeight(12)
	area.CharLimit = 0
	area.SetValue(content)
	area.Focus()

	return editorModel{title: title, area: area, submit: submit}
}

func (e editorModel) update(msg tea.Msg) (editor editorModel, cmd tea.Cmd, closed bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return e, nil, true
		case key.Matches(keyMsg, keys.saveEditor):
			content := e.area.Value()
			if strings.TrimSpace(content) == "" {
				e.errMsg = "Note content is required"
				return e, nil, false
			}
			return e, e.submit(content), true
		}
	}

	e.area, cmd = e.area.Update(msg)
	return e, cmd, false
}

func (e editorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.title))
	b.WriteString("\n\n")
	b.WriteString(e.area.View())
	b.WriteString("\n")
	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + e.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+s: save │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
