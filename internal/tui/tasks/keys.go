package tasks

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the task view.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Jump key.Binding // Fuzzy jump to a visible task

	// Item actions
	Expand key.Binding // Header click: expand/collapse
	Edit   key.Binding // Edit click: enter/cancel edit
	Toggle key.Binding // Toggle click: done/undo

	// Filters
	Search    key.Binding
	Date      key.Binding
	ClearDate key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding

	// Add form
	Add key.Binding

	// Inside forms and inputs
	NextField  key.Binding
	PrevField  key.Binding
	Save       key.Binding
	Collapse   key.Binding // Header click while editing
	EditToggle key.Binding // Toggle click while editing
	Confirm    key.Binding
	Cancel     key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "jump"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "done/undo"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Date: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "filter date"),
		),
		ClearDate: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear date"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next day"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "collapse"),
		),
		EditToggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "done/undo"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Expand, k.Edit, k.Toggle, k.Search, k.Date, k.Add, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Jump},
		{k.Expand, k.Edit, k.Toggle},
		{k.Search, k.Date, k.ClearDate, k.PrevDay, k.NextDay, k.Add},
		{k.NextField, k.PrevField, k.Save, k.Collapse, k.EditToggle, k.Cancel},
		{k.Help, k.Quit},
	}
}

// formHelp is shown while the add form or an item editor is open.
type formHelp struct {
	keys    KeyMap
	editing bool
}

func (h formHelp) ShortHelp() []key.Binding {
	if h.editing {
		return []key.Binding{h.keys.NextField, h.keys.Save, h.keys.Cancel, h.keys.Collapse, h.keys.EditToggle}
	}
	return []key.Binding{h.keys.NextField, h.keys.Save, h.keys.Cancel}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// inputHelp is shown while a single-line input is open.
type inputHelp struct {
	keys KeyMap
}

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Confirm, h.keys.Cancel}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
