package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	DeleteItem    key.Binding
	DeleteSection key.Binding
	AddItem       key.Binding
	AddSection    key.Binding
	Jump          key.Binding
	Focus         key.Binding
	Collapse      key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Help          key.Binding
	Quit          key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "check")),
		DeleteItem:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete item")),
		DeleteSection: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete section")),
		AddItem:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		AddSection:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add section")),
		Jump:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		Focus:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Collapse:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "collapse nav")),
		Top:           key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "back to top")),
		Bottom:        key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "go to bottom")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// contentHelp and sidebarHelp implement help.KeyMap for each focus.
type contentHelp struct{ k keyMap }

func (h contentHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Toggle, h.k.AddItem, h.k.AddSection, h.k.DeleteItem, h.k.Focus, h.k.Help, h.k.Quit}
}

func (h contentHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Top, h.k.Bottom},
		{h.k.Toggle, h.k.AddItem, h.k.DeleteItem},
		{h.k.AddSection, h.k.DeleteSection},
		{h.k.Focus, h.k.Collapse, h.k.Help, h.k.Quit},
	}
}

type sidebarHelp struct{ k keyMap }

func (h sidebarHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Jump, h.k.DeleteSection, h.k.Collapse, h.k.Focus, h.k.Help, h.k.Quit}
}

func (h sidebarHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Jump},
		{h.k.Top, h.k.Bottom},
		{h.k.AddSection, h.k.DeleteSection},
		{h.k.Focus, h.k.Collapse, h.k.Help, h.k.Quit},
	}
}

type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding  { return []key.Binding{h.k.Submit, h.k.Cancel} }
func (h inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
