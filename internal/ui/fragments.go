package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/mealdb/internal/render"
)

// Text column width used when printing fragments to a plain terminal.
const textWidth = 72

const noResultsText = "No recipes found. Try a different search!"

// GridLines lays out a result grid fragment. Cards are numbered from 1.
func GridLines(g render.Grid) []string {
	t := Current()
	if g.IsError() {
		return []string{C(t.Error, t.SymFail+" "+g.Error)}
	}
	lines := []string{C(t.Title, g.Title), ""}
	if g.NoResults {
		return append(lines, C(t.Muted, noResultsText))
	}
	for i, c := range g.Cards {
		fav := C(t.Muted, t.FavOff)
		if c.Favorited {
			fav = C(t.Error, t.FavOn)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			C(t.Muted, fmt.Sprintf("%2d.", i+1)), fav, c.Name, C(t.Muted, "#"+c.ID)))
	}
	lines = append(lines, "", C(t.Muted, fmt.Sprintf("%d recipes", len(g.Cards))))
	return lines
}

// DetailLines lays out the full recipe.
func DetailLines(d render.DetailView) []string {
	t := Current()
	lines := []string{C(t.Title, d.Name)}

	var tags []string
	if d.Category != "" {
		tags = append(tags, "Category: "+d.Category)
	}
	if d.Area != "" {
		tags = append(tags, "Area: "+d.Area)
	}
	if len(d.Tags) > 0 {
		tags = append(tags, "Tags: "+strings.Join(d.Tags, ", "))
	}
	if len(tags) > 0 {
		lines = append(lines, C(t.Muted, strings.Join(tags, "  ·  ")))
	}
	if d.Thumbnail != "" {
		lines = append(lines, C(t.Muted, d.Thumbnail))
	}

	lines = append(lines, "", C(t.Accent, "Ingredients"))
	for _, in := range d.Ingredients {
		item := in.Name
		if m := strings.TrimSpace(in.Measure); m != "" {
			item = C(t.Title, m) + " " + in.Name
		}
		lines = append(lines, C(t.Success, t.SymBullet)+" "+item)
	}

	lines = append(lines, "", C(t.Accent, "Instructions"))
	lines = append(lines, Wrap(d.Instructions, textWidth)...)

	if d.HasVideo() {
		lines = append(lines, "", C(t.Accent, "Video Tutorial"))
		lines = append(lines, C(t.Error, t.SymVideo)+" "+d.Video)
	}
	if d.Source != "" {
		lines = append(lines, "", C(t.Muted, "Source: "+d.Source))
	}
	return lines
}

// SpecialLines lays out the chef's special panel.
func SpecialLines(s render.Special) []string {
	t := Current()
	lines := []string{C(t.Title, "Chef's Special ✨"), ""}
	if s.Category != "" {
		lines = append(lines, C(t.Warn, "["+s.Category+"]"))
	}
	lines = append(lines, C(t.Title, s.Name))
	lines = append(lines, Wrap(s.Preview, textWidth)...)
	lines = append(lines, "", C(t.Muted, "View Full Recipe: mealdb show "+s.ID))
	return lines
}

func PrintGrid(w io.Writer, g render.Grid) { Panel(w, GridLines(g)) }
func PrintDetail(w io.Writer, d render.DetailView) { Panel(w, DetailLines(d)) }
func PrintSpecial(w io.Writer, s render.Special) { Panel(w, SpecialLines(s)) }
