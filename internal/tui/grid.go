package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/mealdb/internal/render"
)

// cardItem adapts a render.Card to bubbles/list.Item
type cardItem struct{ render.Card }

func (i cardItem) Title() string       { return i.Name }
func (i cardItem) Description() string { return "#" + i.ID }
func (i cardItem) FilterValue() string { return i.Name }

// cardDelegate renders one card per line: favorite mark, name and ID.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return 1 }
func (d cardDelegate) Spacing() int                              { return 0 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	fav := mutedStyle.Render(favOff)
	if it.Favorited {
		fav = favStyle.Render(favOn)
	}
	name := it.Name
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		name = selectedStyle.Render(name)
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, fav, name, mutedStyle.Render("#"+it.ID))
}

func newGridList() list.Model {
	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("recipe", "recipes")
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle

	// The browser owns quitting and help.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	return l
}

// applyGrid replaces the result area and resets the selection.
func (m *Model) applyGrid(g render.Grid) {
	m.grid = g
	items := make([]list.Item, 0, len(g.Cards))
	for _, c := range g.Cards {
		items = append(items, cardItem{c})
	}
	m.list.Title = g.Title
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// selected is the card under the cursor.
func (m *Model) selected() (render.Card, bool) {
	if m.loading || m.grid.IsError() {
		return render.Card{}, false
	}
	it, ok := m.list.SelectedItem().(cardItem)
	return it.Card, ok
}

// refreshCard re-renders the list rows for id after its favorite mark changed.
func (m *Model) refreshCard(id string) {
	for i, c := range m.grid.Cards {
		if c.ID == id {
			m.list.SetItem(i, cardItem{c})
		}
	}
}

func (m *Model) resizeList() {
	w, h := m.size()
	m.list.SetSize(w, max(h-14, 5))
}
