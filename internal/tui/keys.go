package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	newItem  key.Binding
	sync     key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	grant    key.Binding
	revoke   key.Binding
	branches key.Binding
	submit   key.Binding
	merge    key.Binding
	reject   key.Binding
	rebase   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	sync:     key.NewBinding(key.WithKeys("s")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	grant:    key.NewBinding(key.WithKeys("g")),
	revoke:   key.NewBinding(key.WithKeys("v")),
	branches: key.NewBinding(key.WithKeys("b")),
	submit:   key.NewBinding(key.WithKeys("s")),
	merge:    key.NewBinding(key.WithKeys("m")),
	reject:   key.NewBinding(key.WithKeys("x")),
	rebase:   key.NewBinding(key.WithKeys("r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
