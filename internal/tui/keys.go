package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the browser's bindings. Letter keys are ignored while the
// search field has focus so they can be typed.
type KeyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Open      key.Binding
	Favorite  key.Binding
	Favorites key.Binding
	Special   key.Binding
	Reroll    key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev filter")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view recipe")),
		Favorite:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle favorite")),
		Favorites: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "my favorites")),
		Special:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "chef's special")),
		Reroll:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new special")),
		Close:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Open, k.Favorite, k.Favorites, k.Special, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Prev, k.Next},
		{k.Up, k.Down, k.Open, k.Favorite},
		{k.Favorites, k.Special, k.Reroll},
		{k.Close, k.Help, k.Quit},
	}
}
