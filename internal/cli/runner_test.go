package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mealdb/internal/render"
	"github.com/idilsaglam/mealdb/internal/tui"
)

const teriyaki = `{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken",
	"strArea":"Japanese","strInstructions":"Preheat oven to 350 F.",
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup"}`

const arrabiata = `{"idMeal":"52771","strMeal":"Spicy Arrabiata Penne","strCategory":"Vegetarian",
	"strArea":"Italian","strInstructions":"Bring a large pot of water to a boil.",
	"strIngredient1":"penne rigate","strMeasure1":"1 pound"}`

func mealsJSON(meals ...string) string {
	if len(meals) == 0 {
		return `{"meals":null}`
	}
	out := `{"meals":[`
	for i, m := range meals {
		if i > 0 {
			out += ","
		}
		out += m
	}
	return out + `]}`
}

func recipeServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		body := mealsJSON()
		switch filepath.Base(r.URL.Path) {
		case "search.php":
			switch q.Get("s") {
			case "chicken", "":
				body = mealsJSON(teriyaki, arrabiata)
			case "boom":
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
		case "lookup.php":
			switch q.Get("i") {
			case "52772":
				body = mealsJSON(teriyaki)
			case "52771":
				body = mealsJSON(arrabiata)
			case "500":
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
		case "filter.php":
			if q.Get("c") == "Chicken" {
				body = mealsJSON(`{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}`)
			}
		case "random.php":
			body = mealsJSON(teriyaki)
		case "list.php":
			if q.Get("c") == "list" {
				body = mealsJSON(`{"strCategory":"Beef"}`, `{"strCategory":"Chicken"}`)
			} else {
				body = mealsJSON(`{"strArea":"Japanese"}`)
			}
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testEnv points the CLI at a fake API and a private store.
func testEnv(t *testing.T) (dir string, srv *httptest.Server) {
	t.Helper()
	dir = t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	srv = recipeServer(t)
	t.Setenv("MEALDB_API_BASE_URL", srv.URL)
	t.Setenv("MEALDB_STORE_PATH", filepath.Join(dir, "store.json"))
	return dir, srv
}

type result struct {
	code           int
	stdout, stderr string
}

func run(t *testing.T, opt Options, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	opt.Stdout, opt.Stderr = &out, &errb
	if opt.Confirm == nil {
		opt.Confirm = func(string) (bool, error) {
			t.Fatal("unexpected confirmation prompt")
			return false, nil
		}
	}
	code := Run(args, opt)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func TestUsageErrorsExitTwo(t *testing.T) {
	testEnv(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown subcommand", []string{"bogus"}},
		{"missing id", []string{"show"}},
		{"too many args", []string{"category", "a", "b"}},
		{"unknown flag", []string{"search", "--nope"}},
		{"bad export extension", []string{"export", "out.json"}},
		{"two export selectors", []string{"export", "out.csv", "--search", "a", "--area", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, Options{}, tt.args...)
			assert.Equal(t, 2, r.code, r.stderr)
			assert.Contains(t, r.stderr, "mealdb --help")
		})
	}
}

func TestSearch(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "search", "chicken")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `Results for "chicken"`)
	assert.Contains(t, r.stdout, "Teriyaki Chicken Casserole")
	assert.Contains(t, r.stdout, "Spicy Arrabiata Penne")
	assert.Contains(t, r.stdout, "2 recipes")
}

func TestSearchNoResults(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "search", "nothing")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "No recipes found")
	assert.NotContains(t, r.stdout, render.FetchFailedMessage)
}

func TestSearchFailureExitOne(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "search", "boom")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, render.FetchFailedMessage)
	assert.Contains(t, r.stderr, "500")
}

func TestCategoryAndLists(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "category", "Chicken")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Chicken Recipes")

	r = run(t, Options{}, "categories")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Beef")

	r = run(t, Options{}, "areas")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Japanese")
}

func TestShow(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "show", "52772")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "3/4 cup soy sauce")
	assert.Contains(t, r.stdout, "Preheat oven to 350 F.")

	r = run(t, Options{}, "show", "0")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, render.DetailFailedMessage)
}

func TestRandomShowsSpecial(t *testing.T) {
	testEnv(t)
	r := run(t, Options{}, "random")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Chef's Special")
	assert.Contains(t, r.stdout, "Preheat oven to 350 F....")
	assert.Contains(t, r.stdout, "Welcome from Chennai!")
}

func TestFavoritesLifecycle(t *testing.T) {
	dir, _ := testEnv(t)

	r := run(t, Options{}, "favorites")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, render.FavoritesTitle)
	assert.Contains(t, r.stdout, "No recipes found")

	r = run(t, Options{}, "favorites", "toggle", "52772")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "added 52772")

	raw, err := os.ReadFile(filepath.Join(dir, "store.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipeFavorites":["52772"]}`, string(raw))

	r = run(t, Options{}, "favorites", "list")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Teriyaki Chicken Casserole")

	r = run(t, Options{}, "fav", "toggle", "52772")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "removed 52772")
}

func TestFavoritesListFailsWhole(t *testing.T) {
	testEnv(t)
	require.Equal(t, 0, run(t, Options{}, "favorites", "toggle", "52772").code)
	require.Equal(t, 0, run(t, Options{}, "favorites", "toggle", "500").code)

	r := run(t, Options{}, "favorites")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, render.FetchFailedMessage)
	assert.NotContains(t, r.stdout, "Teriyaki")
}

func TestFavoritesClear(t *testing.T) {
	testEnv(t)
	require.Equal(t, 0, run(t, Options{}, "favorites", "toggle", "52772").code)

	var asked string
	decline := Options{Confirm: func(title string) (bool, error) {
		asked = title
		return false, nil
	}}
	r := run(t, decline, "favorites", "clear")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Remove all 1 favorites?", asked)
	assert.Contains(t, r.stdout, "cancelled")

	r = run(t, Options{}, "favorites", "clear", "--yes")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "cleared 1 favorites")

	r = run(t, Options{}, "favorites", "clear")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "no favorites to clear")
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportSearch(t *testing.T) {
	dir, _ := testEnv(t)
	out := filepath.Join(dir, "recipes.csv")

	r := run(t, Options{}, "export", out, "--search", "chicken")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "exported 2 recipes")

	rows := readCSV(t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, "Teriyaki Chicken Casserole", rows[1][1])
	assert.Equal(t, "3/4 cup soy sauce", rows[1][4])
}

func TestExportCategoryLooksUpFullRecipes(t *testing.T) {
	dir, _ := testEnv(t)
	out := filepath.Join(dir, "chicken.xlsx")

	r := run(t, Options{}, "export", out, "--category", "Chicken")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "exported 1 recipes")
	assert.FileExists(t, out)
}

func TestExportFavorites(t *testing.T) {
	dir, _ := testEnv(t)
	require.Equal(t, 0, run(t, Options{}, "favorites", "toggle", "52771").code)
	out := filepath.Join(dir, "favs.csv")

	r := run(t, Options{}, "export", out, "--favorites")
	require.Equal(t, 0, r.code, r.stderr)

	rows := readCSV(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "52771", rows[1][0])
}

func TestBrowseIsDefault(t *testing.T) {
	testEnv(t)
	t.Setenv("MEALDB_SEARCH_DEBOUNCE", "250ms")

	var called int
	var got tui.Options
	opt := Options{Browse: func(_ context.Context, api tui.API, favs tui.Favorites, opts tui.Options, logFile string) error {
		called++
		got = opts
		assert.NotNil(t, api)
		assert.NotNil(t, favs)
		assert.Equal(t, "mealdb-debug.log", logFile)
		return nil
	}}

	require.Equal(t, 0, run(t, opt).code)
	require.Equal(t, 0, run(t, opt, "browse").code)
	assert.Equal(t, 2, called)
	assert.Equal(t, 250*time.Millisecond, got.Debounce)
	assert.Equal(t, 300*time.Millisecond, got.CloseDelay)
	assert.Equal(t, "Chennai", got.Location)
}

func TestBaseURLFlagOverridesEnv(t *testing.T) {
	_, srv := testEnv(t)
	t.Setenv("MEALDB_API_BASE_URL", "http://127.0.0.1:1/")

	r := run(t, Options{}, "--base-url", srv.URL, "search", "chicken")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Teriyaki Chicken Casserole")
}

func TestConfigShow(t *testing.T) {
	dir, _ := testEnv(t)
	r := run(t, Options{}, "config", "show")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "debounce: 500ms")
	assert.Contains(t, r.stdout, "location: Chennai")
	assert.Contains(t, r.stdout, "# store: "+filepath.Join(dir, "store.json"))
}

func TestInvalidConfigExitOne(t *testing.T) {
	testEnv(t)
	t.Setenv("MEALDB_API_BASE_URL", "ftp://example.test")
	r := run(t, Options{}, "search")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "invalid configuration")
}
