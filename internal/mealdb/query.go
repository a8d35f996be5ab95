package mealdb

import (
	"context"
	"strings"

	"github.com/idilsaglam/mealdb/internal/model"
)

// Query is the filter state of a result listing. Only one field is expected
// to be set; when several are, Term wins over Category, and Category over Area.
type Query struct {
	Term     string
	Category string
	Area     string
}

// Kind names the filter that will be applied.
type Kind int

const (
	KindAll Kind = iota
	KindTerm
	KindCategory
	KindArea
)

func (q Query) Kind() Kind {
	switch {
	case strings.TrimSpace(q.Term) != "":
		return KindTerm
	case q.Category != "":
		return KindCategory
	case q.Area != "":
		return KindArea
	default:
		return KindAll
	}
}

// Endpoint is the request the query resolves to.
func (q Query) Endpoint() string {
	switch q.Kind() {
	case KindTerm:
		return SearchEndpoint(strings.TrimSpace(q.Term))
	case KindCategory:
		return CategoryEndpoint(q.Category)
	case KindArea:
		return AreaEndpoint(q.Area)
	default:
		return SearchEndpoint("")
	}
}

// Title is the heading shown above the results.
func (q Query) Title() string {
	switch q.Kind() {
	case KindTerm:
		return `Results for "` + strings.TrimSpace(q.Term) + `"`
	case KindCategory:
		return q.Category + " Recipes"
	case KindArea:
		return q.Area + " Cuisine"
	default:
		return "Search Results"
	}
}

// List runs the query.
func (c *Client) List(ctx context.Context, q Query) ([]model.Meal, error) {
	return c.meals(ctx, q.Endpoint())
}
