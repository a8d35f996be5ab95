package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryDispatchPriority(t *testing.T) {
	tests := []struct {
		name     string
		q        Query
		kind     Kind
		endpoint string
		title    string
	}{
		{"empty", Query{}, KindAll, "search.php?s=", "Search Results"},
		{"blank term falls through", Query{Term: "   "}, KindAll, "search.php?s=", "Search Results"},
		{"term", Query{Term: " chicken "}, KindTerm, "search.php?s=chicken", `Results for "chicken"`},
		{"category", Query{Category: "Seafood"}, KindCategory, "filter.php?c=Seafood", "Seafood Recipes"},
		{"area", Query{Area: "Indian"}, KindArea, "filter.php?a=Indian", "Indian Cuisine"},
		{"term beats category", Query{Term: "pie", Category: "Beef"}, KindTerm, "search.php?s=pie", `Results for "pie"`},
		{"category beats area", Query{Category: "Beef", Area: "Thai"}, KindCategory, "filter.php?c=Beef", "Beef Recipes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.q.Kind())
			assert.Equal(t, tt.endpoint, tt.q.Endpoint())
			assert.Equal(t, tt.title, tt.q.Title())
		})
	}
}

func TestListRunsResolvedEndpoint(t *testing.T) {
	var got string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path + "?" + r.URL.RawQuery
		fmt.Fprint(w, `{"meals":[{"idMeal":"1","strMeal":"Kedgeree"}]}`)
	})

	meals, err := c.List(context.Background(), Query{Area: "British"})
	require.NoError(t, err)
	assert.Equal(t, "/filter.php?a=British", got)
	require.Len(t, meals, 1)
	assert.Equal(t, "Kedgeree", meals[0].Name)
}
