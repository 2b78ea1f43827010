package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	projects  key.Binding
	dashboard key.Binding
	admin     key.Binding
	password  key.Binding

	newItem    key.Binding
	newChild   key.Binding
	newTodo    key.Binding
	newNote    key.Binding
	rename     key.Binding
	edit       key.Binding
	delete     key.Binding
	toggle     key.Binding
	priority   key.Binding
	move       key.Binding
	nest       key.Binding
	share      key.Binding
	copy       key.Binding
	copyID     key.Binding
	sortKey    key.Binding
	sortOrder  key.Binding
	adminFlag  key.Binding
	yes        key.Binding
	no         key.Binding
	saveEditor key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	refresh:   key.NewBinding(key.WithKeys("R")),
	projects:  key.NewBinding(key.WithKeys("1")),
	dashboard: key.NewBinding(key.WithKeys("2")),
	admin:     key.NewBinding(key.WithKeys("3")),
	password:  key.NewBinding(key.WithKeys("P")),

	newItem:    key.NewBinding(key.WithKeys("n")),
	newChild:   key.NewBinding(key.WithKeys("a")),
	newTodo:    key.NewBinding(key.WithKeys("t")),
	newNote:    key.NewBinding(key.WithKeys("o")),
	rename:     key.NewBinding(key.WithKeys("r")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	toggle:     key.NewBinding(key.WithKeys(" ", "x")),
	priority:   key.NewBinding(key.WithKeys("p")),
	move:       key.NewBinding(key.WithKeys("m")),
	nest:       key.NewBinding(key.WithKeys(">")),
	share:      key.NewBinding(key.WithKeys("s")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyID:     key.NewBinding(key.WithKeys("y")),
	sortKey:    key.NewBinding(key.WithKeys("s")),
	sortOrder:  key.NewBinding(key.WithKeys("o")),
	adminFlag:  key.NewBinding(key.WithKeys("a")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
	saveEditor: key.NewBinding(key.WithKeys("ctrl+s")),
}
