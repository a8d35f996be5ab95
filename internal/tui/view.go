package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/mealdb/internal/render"
	"github.com/idilsaglam/mealdb/internal/ui"
)

const noResultsText = "No recipes found. Try a different search!"

func (m *Model) View() string {
	w, h := m.size()
	if m.modal.visible() || m.modal == modalClosing {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.modalView())
	}

	var b strings.Builder
	b.WriteString(greetingStyle.Render(m.greeting) + "\n\n")
	b.WriteString(m.filtersView() + "\n")
	if m.special != nil {
		b.WriteString(m.specialView(w) + "\n")
	}
	b.WriteString("\n" + m.gridView() + "\n")
	if m.status != "" {
		b.WriteString("\n" + errorStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) label(f focusTarget, s string) string {
	if m.focus == f {
		return focusedLabelStyle.Render(s)
	}
	return labelStyle.Render(s)
}

func (m *Model) filtersView() string {
	search := m.label(focusSearch, "Search") + " " + m.search.View()
	cat := m.label(focusCategory, "Category") + " ‹ " + m.categories[m.catIdx] + " ›"
	area := m.label(focusArea, "Area") + " ‹ " + m.areas[m.areaIdx] + " ›"
	return search + "\n" + cat + "   " + area
}

func (m *Model) specialView(width int) string {
	s := m.special
	inner := max(width-4, 20)
	body := []string{
		accentStyle.Render("Chef's Special ✨") + "  " + mutedStyle.Render("[s] view full recipe"),
		titleStyle.Render(s.Name) + mutedStyle.Render(categoryTag(s.Category)),
		lipgloss.NewStyle().Width(inner).Render(s.Preview),
	}
	return specialStyle.Render(strings.Join(body, "\n"))
}

func categoryTag(c string) string {
	if c == "" {
		return ""
	}
	return "  [" + c + "]"
}

// gridView applies the result grid fragment. While a request is outstanding
// only the spinner is shown.
func (m *Model) gridView() string {
	if m.loading {
		return m.spinner.View() + " Loading recipes..."
	}
	g := m.grid
	if g.IsError() {
		return errorPanelStyle.Render(g.Error)
	}
	if g.NoResults {
		return m.list.Styles.Title.Render(g.Title) + "\n\n" + mutedStyle.Render(noResultsText)
	}
	return m.list.View()
}

func (m *Model) modalView() string {
	r := m.modalRect()
	var body string
	switch m.modal {
	case modalOpening:
		body = m.spinner.View() + " Loading recipe..."
	case modalOpenWithError:
		body = errorStyle.Render(m.modalErr)
	default:
		body = m.viewport.View()
	}
	body = lipgloss.NewStyle().Height(r.h - 4).MaxHeight(r.h - 4).Render(body)

	footer := "esc close"
	if m.detail != nil {
		footer = "esc close · space favorite · ↑/↓ scroll"
		if m.favs.IsFavorite(m.detail.ID) {
			footer = favStyle.Render(favOn) + " " + footer
		}
	}
	inner := body + "\n\n" + mutedStyle.Render(footer)

	style := modalStyle
	if m.modal == modalClosing {
		style = closingModalStyle
	}
	return style.Width(r.w - 2).Height(r.h - 2).Render(inner)
}

func detailContent(d render.DetailView) string {
	return strings.Join(ui.DetailLines(d), "\n")
}
