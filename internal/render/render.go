// Package render turns fetched meals into fragments: plain structs that
// describe what a surface should show. Nothing here touches a terminal;
// internal/ui and internal/tui apply fragments to a live screen.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/mealdb/internal/model"
)

const (
	// FetchFailedMessage is the one message shown for every fetch failure.
	FetchFailedMessage = "Could not fetch recipes. Please check your connection and try again."
	// DetailFailedMessage is shown inside the detail view when its lookup fails.
	DetailFailedMessage = "Could not load recipe details."

	DefaultTitle   = "Search Results"
	FavoritesTitle = "My Favorite Recipes"

	// DefaultPreviewLength is the chef's special instructions preview, in characters.
	DefaultPreviewLength = 200
)

// Favorites is what rendering needs to know about the favorites set.
type Favorites interface {
	IsFavorite(id string) bool
}

// Card is one meal in a result grid. ID doubles as the "view" trigger.
type Card struct {
	ID        string
	Name      string
	Thumbnail string
	Favorited bool
}

// Grid is the result area. Exactly one of Error, NoResults or Cards is shown.
type Grid struct {
	Title     string
	Cards     []Card
	NoResults bool
	Error     string
}

// IsError reports whether the grid is an error panel.
func (g Grid) IsError() bool { return g.Error != "" }

// SetFavorite updates the card for id in place and reports whether one was found.
func (g *Grid) SetFavorite(id string, on bool) bool {
	found := false
	for i := range g.Cards {
		if g.Cards[i].ID == id {
			g.Cards[i].Favorited = on
			found = true
		}
	}
	return found
}

// ResultGrid renders meals in the order received. Empty or nil input yields
// the "no results" state, never an error.
func ResultGrid(meals []model.Meal, title string, favs Favorites) Grid {
	if title == "" {
		title = DefaultTitle
	}
	g := Grid{Title: title}
	if len(meals) == 0 {
		g.NoResults = true
		return g
	}
	g.Cards = make([]Card, 0, len(meals))
	for _, m := range meals {
		g.Cards = append(g.Cards, Card{
			ID:        m.ID,
			Name:      m.Name,
			Thumbnail: m.Thumbnail,
			Favorited: favs != nil && favs.IsFavorite(m.ID),
		})
	}
	return g
}

// Error replaces the result area with an error panel.
func Error(message string) Grid {
	return Grid{Error: message}
}

// DetailView is the full recipe shown in the modal.
type DetailView struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Thumbnail    string
	Instructions string
	Video        string
	Source       string
	Tags         []string
	Ingredients  []model.Ingredient
}

// HasVideo reports whether a video link should be shown.
func (d DetailView) HasVideo() bool { return d.Video != "" }

// Detail renders a full meal. Instructions are kept verbatim.
func Detail(m model.Meal) DetailView {
	return DetailView{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Area:         m.Area,
		Thumbnail:    m.Thumbnail,
		Instructions: m.Instructions,
		Video:        strings.TrimSpace(m.Video),
		Source:       strings.TrimSpace(m.Source),
		Tags:         splitTags(m.Tags),
		Ingredients:  Ingredients(m),
	}
}

// Ingredients scans slots 1..20 in order and keeps those whose ingredient is
// non-blank. The measure is kept as given and may be empty.
func Ingredients(m model.Meal) []model.Ingredient {
	var out []model.Ingredient
	for i := 0; i < model.IngredientSlots; i++ {
		name := strings.TrimSpace(m.Ingredients[i])
		if name == "" {
			continue
		}
		out = append(out, model.Ingredient{Name: m.Ingredients[i], Measure: m.Measures[i]})
	}
	return out
}

// Special is the chef's special panel. ID opens the detail view.
type Special struct {
	ID        string
	Name      string
	Category  string
	Thumbnail string
	Preview   string
}

// ChefSpecial renders the promotional panel. The preview is the first n
// characters of the instructions followed by "..." whatever their length.
// A non-positive n selects DefaultPreviewLength.
func ChefSpecial(m model.Meal, n int) Special {
	if n <= 0 {
		n = DefaultPreviewLength
	}
	return Special{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Thumbnail: m.Thumbnail,
		Preview:   truncate(m.Instructions, n) + "...",
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
