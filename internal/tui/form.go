package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label       string
	value       string
	placeholder string
	secret      bool
}

// formSubmit validates the values and returns the command to run. A returned
// error keeps the form open.
type formSubmit func(values []string) (tea.Cmd, error)

// formModel is a modal form of single-line inputs.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	submit formSubmit
}

func newFormModel(title string, fields []formField, submit formSubmit) formModel {
	f := formModel{title: title, submit: submit}
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.CharLimit = 512
		input.Width = 40
		input.SetValue(field.value)
		if field.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		if i == 0 {
			input.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

func (f formModel) values() []string {
	values := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		values[i] = input.Value()
	}
	return values
}

// update returns closed once the form was submitted or cancelled.
func (f formModel) update(msg tea.Msg) (form formModel, cmd tea.Cmd, closed bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return f, nil, true
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.setFocus(f.focus + 1)
			return f, nil, false
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.setFocus(f.focus - 1)
			return f, nil, false
		case key.Matches(keyMsg, keys.enter):
			cmd, err := f.submit(f.values())
			if err != nil {
				f.errMsg = err.Error()
				return f, nil, false
			}
			return f, cmd, true
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *formModel) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f formModel) View() string {
	width := 0
	for _, label := range f.labels {
		width = max(width, len(label))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for i, input := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(strings.Repeat(" ", width-len(f.labels[i])))
		b.WriteString(" │ ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: save │ tab: next field │ esc: cancel"))
	return overlayBoxStyle.Render(b.String())
}
