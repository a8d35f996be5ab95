package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.modal == modalClosing {
		return m, nil
	}
	if m.modal.visible() {
		return m, m.modalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusSearch {
		return m, m.searchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Favorites):
		return m, m.showFavorites()
	case key.Matches(msg, m.keys.Special):
		if m.special == nil {
			return m, nil
		}
		return m, m.openDetail(m.special.ID)
	case key.Matches(msg, m.keys.Reroll):
		return m, m.fetchSpecial()
	}

	switch m.focus {
	case focusCategory:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, m.selectCategory(-1)
		case key.Matches(msg, m.keys.Next):
			return m, m.selectCategory(1)
		}
	case focusArea:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, m.selectArea(-1)
		case key.Matches(msg, m.keys.Next):
			return m, m.selectArea(1)
		}
	case focusGrid:
		switch {
		case key.Matches(msg, m.keys.Open):
			if c, ok := m.selected(); ok {
				return m, m.openDetail(c.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Favorite):
			if c, ok := m.selected(); ok {
				m.toggleFavorite(c.ID)
			}
			return m, nil
		}
		if m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// searchKey feeds the search field. A change in its value clears the
// selectors and re-arms the debounce timer; enter queries immediately.
func (m *Model) searchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.debounceSeq++
		return m.issue(m.Query())
	case tea.KeyEsc:
		m.setFocus(focusGrid)
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return cmd
	}
	m.catIdx, m.areaIdx = 0, 0
	m.debounceSeq++
	seq := m.debounceSeq
	return tea.Batch(cmd, tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	}))
}

func (m *Model) modalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.closeModal()
	case key.Matches(msg, m.keys.Favorite):
		if m.detail != nil {
			m.toggleFavorite(m.detail.ID)
		}
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// handleMouse closes the modal on a click outside its box.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.modal.visible() {
		return nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if !m.modalRect().contains(msg.X, msg.Y) {
			return m.closeModal()
		}
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// modalRect is the modal box, border included, centered on screen.
func (m *Model) modalRect() rect {
	w, h := m.size()
	bw := clamp(w-8, 24, 84)
	bh := clamp(h-4, 8, 40)
	return rect{x: (w - bw) / 2, y: (h - bh) / 2, w: bw, h: bh}
}

// resizeViewport leaves room for the border, padding and the footer line.
func (m *Model) resizeViewport() {
	r := m.modalRect()
	m.viewport.Width = r.w - 4
	m.viewport.Height = r.h - 4
}
