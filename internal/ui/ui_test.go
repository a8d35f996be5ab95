package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mealdb/internal/render"
)

func withMono(t *testing.T) {
	t.Helper()
	oldTheme, oldForce, oldDisable := current, forceColor, disableColor
	SetTheme("mono")
	t.Cleanup(func() {
		current, forceColor, disableColor = oldTheme, oldForce, oldDisable
	})
}

func TestPanelFramesLines(t *testing.T) {
	withMono(t)
	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})

	assert.Equal(t, "+------+\n| ab   |\n| abcd |\n+------+\n", buf.String())
}

func TestCRespectsDisable(t *testing.T) {
	withMono(t)
	assert.Equal(t, "x", C(fgRed, "x"))

	SetColorForcing(true, false)
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	assert.Equal(t, "x", C("", "x"))
}

func TestGridLines(t *testing.T) {
	withMono(t)

	t.Run("error", func(t *testing.T) {
		lines := GridLines(render.Error(render.FetchFailedMessage))
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], render.FetchFailedMessage)
	})

	t.Run("no results", func(t *testing.T) {
		lines := GridLines(render.Grid{Title: `Results for "chicken"`, NoResults: true})
		assert.Equal(t, `Results for "chicken"`, lines[0])
		assert.Equal(t, noResultsText, lines[len(lines)-1])
	})

	t.Run("cards", func(t *testing.T) {
		g := render.Grid{Title: "Beef Recipes", Cards: []render.Card{
			{ID: "1", Name: "Beef Wellington", Favorited: true},
			{ID: "2", Name: "Beef Stew"},
		}}
		lines := GridLines(g)
		joined := strings.Join(lines, "\n")
		assert.Contains(t, joined, " 1. [*] Beef Wellington  #1")
		assert.Contains(t, joined, " 2. [ ] Beef Stew  #2")
		assert.Contains(t, joined, "2 recipes")
	})
}

func TestDetailLinesVideoOnlyWhenPresent(t *testing.T) {
	withMono(t)
	d := render.DetailView{Name: "Pad Thai", Instructions: "Soak noodles."}
	assert.NotContains(t, strings.Join(DetailLines(d), "\n"), "Video Tutorial")

	d.Video = "https://youtube.test/v"
	joined := strings.Join(DetailLines(d), "\n")
	assert.Contains(t, joined, "Video Tutorial")
	assert.Contains(t, joined, "https://youtube.test/v")
}

func TestWrapKeepsBreaks(t *testing.T) {
	lines := Wrap("one two three\r\nfour", 8)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)
}
