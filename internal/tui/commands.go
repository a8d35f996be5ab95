package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/render"
)

func (m *Model) fetchList(seq int, q mealdb.Query) tea.Cmd {
	ctx, api, title := m.ctx, m.api, q.Title()
	return func() tea.Msg {
		meals, err := api.List(ctx, q)
		return resultsMsg{seq: seq, title: title, meals: meals, err: err}
	}
}

// fetchFavorites resolves every favorite concurrently. One failed lookup
// fails the whole view.
func (m *Model) fetchFavorites(seq int, ids []string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		meals, err := api.LookupAll(ctx, ids)
		return resultsMsg{seq: seq, title: render.FavoritesTitle, meals: meals, err: err}
	}
}

// fetchFilters loads categories, then areas.
func (m *Model) fetchFilters() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		cats, err := api.Categories(ctx)
		if err != nil {
			return filtersMsg{err: fmt.Errorf("categories: %w", err)}
		}
		areas, err := api.Areas(ctx)
		if err != nil {
			return filtersMsg{err: fmt.Errorf("areas: %w", err)}
		}
		return filtersMsg{categories: cats, areas: areas}
	}
}

func (m *Model) fetchSpecial() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		meal, err := api.Random(ctx)
		return specialMsg{meal: meal, err: err}
	}
}

func (m *Model) fetchDetail(seq int, id string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		meal, err := api.Lookup(ctx, id)
		return detailMsg{seq: seq, meal: meal, err: err}
	}
}
