// quickmemo/tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New    key.Binding
	List   key.Binding
	Delete key.Binding
	Copy   key.Binding
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^N", "new")),
	List:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", "list")),
	Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^D", "delete")),
	Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^Y", "copy")),
	Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "title/body")),
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+j")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "quit")),
}

func (k keyMap) toolbar() []key.Binding {
	return []key.Binding{k.New, k.List, k.Delete, k.Copy, k.Focus, k.Quit}
}

func (k keyMap) listbar() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Quit}
}
