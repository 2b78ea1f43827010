package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-hub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m workspaceModel) openTodos() []models.Todo {
	return m.data.TodosOf(m.openID)
}

func (m workspaceModel) openNotes() []models.Note {
	return m.data.NotesOf(m.openID)
}

func (m workspaceModel) itemCount() int {
	if m.openID == "" {
		return 0
	}
	return len(m.openTodos()) + len(m.openNotes())
}

// selected returns the todo or the note under the item cursor. Todos are
// listed before notes.
func (m workspaceModel) selected() (*models.Todo, *models.Note) {
	todos := m.openTodos()
	if m.itemIdx < len(todos) {
		return &todos[m.itemIdx], nil
	}
	notes := m.openNotes()
	if i := m.itemIdx - len(todos); i >= 0 && i < len(notes) {
		return nil, &notes[i]
	}
	return nil, nil
}

func (m workspaceModel) updateProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.openID == "" {
		return m, nil
	}
	todo, note := m.selected()

	switch {
	case key.Matches(msg, keys.esc):
		m.focus = paneSidebar
	case key.Matches(msg, keys.up):
		m.itemIdx = clamp(m.itemIdx-1, 0, m.itemCount()-1)
	case key.Matches(msg, keys.down):
		m.itemIdx = clamp(m.itemIdx+1, 0, m.itemCount()-1)
	case key.Matches(msg, keys.newTodo):
		m.openTodoForm(nil)
	case key.Matches(msg, keys.newNote):
		projectID := m.openID
		cmds := m.cmds
		m.openEditor(newEditorModel("New note", "", func(content string) tea.Cmd {
			return cmds.createNote(models.NoteCreate{ProjectID: projectID, Content: content})
		}))
	case key.Matches(msg, keys.edit):
		switch {
		case todo != nil:
			m.openTodoForm(todo)
		case note != nil:
			id := note.ID
			cmds := m.cmds
			m.openEditor(newEditorModel("Edit note", note.Content, func(content string) tea.Cmd {
				return cmds.updateNote(id, models.NoteUpdate{Content: &content})
			}))
		}
	case key.Matches(msg, keys.toggle):
		if todo != nil {
			done := !todo.Completed
			return m, m.cmds.updateTodo(todo.ID, models.TodoUpdate{Completed: &done})
		}
	case key.Matches(msg, keys.priority):
		if todo != nil {
			p := nextPriority(todo.Priority)
			return m, m.cmds.updateTodo(todo.ID, models.TodoUpdate{Priority: &p})
		}
	case key.Matches(msg, keys.delete):
		switch {
		case todo != nil:
			m.askDelete(todo.Title, m.cmds.deleteTodo(todo.ID))
		case note != nil:
			m.askDelete(fitText(firstLine(note.Content), 30), m.cmds.deleteNote(note.ID))
		}
	case key.Matches(msg, keys.copy):
		switch {
		case todo != nil:
			return m, cmdCopy(todo.Title, "todo")
		case note != nil:
			return m, cmdCopy(note.Content, "note")
		}
	}
	return m, nil
}

// openTodoForm creates a todo in the open project, or edits todo when set.
func (m *workspaceModel) openTodoForm(todo *models.Todo) {
	cmds := m.cmds
	projectID := m.openID

	fields := []formField{
		{label: "Title", placeholder: "what needs doing"},
		{label: "Priority", value: string(models.PriorityMedium), placeholder: "low, medium or high"},
		{label: "Due", placeholder: dueDateLayout},
		{label: "Tags", placeholder: "comma separated"},
	}
	title := "New todo"
	if todo != nil {
		title = "Edit todo"
		fields[0].value = todo.Title
		fields[1].value = string(todo.Priority)
		fields[2].value = formatDue(todo.DueDate)
		fields[3].value = strings.Join(todo.Tags, ", ")
	}

	m.openForm(newFormModel(title, fields, func(values []string) (tea.Cmd, error) {
		name := strings.TrimSpace(values[0])
		if name == "" {
			return nil, errors.New("title is required")
		}
		priority := models.Priority(strings.ToLower(strings.TrimSpace(values[1])))
		if !priority.Valid() {
			return nil, errors.New("priority must be low, medium or high")
		}
		due, err := parseDue(values[2])
		if err != nil {
			return nil, err
		}
		tags := parseTags(values[3])

		if todo == nil {
			return cmds.createTodo(models.TodoCreate{
				ProjectID: projectID,
				Title:     name,
				Priority:  priority,
				DueDate:   due,
				Tags:      tags,
			}), nil
		}
		return cmds.updateTodo(todo.ID, models.TodoUpdate{
			Title:    &name,
			Priority: &priority,
			DueDate:  models.NewNullableTime(due),
			Tags:     &tags,
		}), nil
	}))
}

func (m workspaceModel) projectView() string {
	project, ok := m.sidebar.forest.Project(m.openID)
	if !ok {
		return helpStyle.Render("Select a project and press enter.\nDrag a project onto another to nest it,\nor next to a sibling to reorder.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(project.Name))
	b.WriteString("\n")
	if path := m.sidebar.forest.Path(project.ID); len(path) > 1 {
		b.WriteString(helpStyle.Render(strings.Join(path, " / ")))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Shared with %d user(s)", len(project.UserIDs)))
	if project.DataPath != "" {
		b.WriteString(" │ " + project.DataPath)
	}
	b.WriteString("\n\n")

	focused := m.focus == paneContent
	todos := m.openTodos()
	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString("\n")
	if len(todos) == 0 {
		b.WriteString(helpStyle.Render("  none, press t"))
		b.WriteString("\n")
	}
	for i, t := range todos {
		line := fmt.Sprintf("%s %s %s", checkbox(t.Completed), priorityMark(t.Priority), t.Title)
		if due := formatDue(t.DueDate); due != "" {
			line += "  due " + due
		}
		if len(t.Tags) > 0 {
			line += "  #" + strings.Join(t.Tags, " #")
		}
		if t.Completed {
			line = completedStyle.Render(line)
		}
		b.WriteString(m.itemLine(line, i, focused))
	}

	notes := m.openNotes()
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n")
	if len(notes) == 0 {
		b.WriteString(helpStyle.Render("  none, press o"))
		b.WriteString("\n")
	}
	for i, n := range notes {
		line := fitText(firstLine(n.Content), 60) + "  " + helpStyle.Render(n.UpdatedAt.Local().Format("2006-01-02 15:04"))
		b.WriteString(m.itemLine(line, len(todos)+i, focused))
	}

	if _, note := m.selected(); focused && note != nil {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(note.Content))
	}

	return b.String()
}

func (m workspaceModel) itemLine(text string, idx int, focused bool) string {
	cursor := "  "
	if idx == m.itemIdx && focused {
		cursor = "> "
		text = selectedStyle.Render(text)
	}
	return cursor + text + "\n"
}
