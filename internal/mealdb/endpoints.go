package mealdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/mealdb/internal/model"
)

// SearchEndpoint and the builders after it return paths relative to the base
// URL with the query escaped.
func SearchEndpoint(term string) string       { return "search.php?s=" + url.QueryEscape(term) }
func CategoryEndpoint(category string) string { return "filter.php?c=" + url.QueryEscape(category) }
func AreaEndpoint(area string) string         { return "filter.php?a=" + url.QueryEscape(area) }
func LookupEndpoint(id string) string         { return "lookup.php?i=" + url.QueryEscape(id) }

const (
	categoriesEndpoint = "list.php?c=list"
	areasEndpoint      = "list.php?a=list"
	randomEndpoint     = "random.php"
)

// Search matches meals by name. An empty term lists everything the service returns.
func (c *Client) Search(ctx context.Context, term string) ([]model.Meal, error) {
	return c.meals(ctx, SearchEndpoint(term))
}

// FilterByCategory lists meal summaries in category. Summaries carry only ID, name and thumbnail.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]model.Meal, error) {
	return c.meals(ctx, CategoryEndpoint(category))
}

// FilterByArea lists meal summaries from area.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]model.Meal, error) {
	return c.meals(ctx, AreaEndpoint(area))
}

// Lookup fetches the full record for id. ErrNotFound if the service has none.
func (c *Client) Lookup(ctx context.Context, id string) (model.Meal, error) {
	return c.first(ctx, LookupEndpoint(id), id)
}

// Random fetches one random meal.
func (c *Client) Random(ctx context.Context) (model.Meal, error) {
	return c.first(ctx, randomEndpoint, "random")
}

// Categories lists category names in service order.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return c.names(ctx, categoriesEndpoint, "strCategory")
}

// Areas lists area (cuisine) names in service order.
func (c *Client) Areas(ctx context.Context) ([]string, error) {
	return c.names(ctx, areasEndpoint, "strArea")
}

// LookupAll fetches every id concurrently and returns the meals in ids order.
// The first failure cancels the outstanding lookups and is returned alone;
// there are no partial results.
func (c *Client) LookupAll(ctx context.Context, ids []string) ([]model.Meal, error) {
	out := make([]model.Meal, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			m, err := c.Lookup(gctx, id)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) meals(ctx context.Context, endpoint string) ([]model.Meal, error) {
	resp, err := c.Fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, nil
	}
	out := make([]model.Meal, 0, len(resp.Meals))
	for _, raw := range resp.Meals {
		out = append(out, decodeMeal(raw))
	}
	return out, nil
}

func (c *Client) first(ctx context.Context, endpoint, what string) (model.Meal, error) {
	meals, err := c.meals(ctx, endpoint)
	if err != nil {
		return model.Meal{}, err
	}
	if len(meals) == 0 {
		return model.Meal{}, fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return meals[0], nil
}

func (c *Client) names(ctx context.Context, endpoint, field string) ([]string, error) {
	resp, err := c.Fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Meals))
	for _, raw := range resp.Meals {
		if s := str(raw, field); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func decodeMeal(raw map[string]any) model.Meal {
	m := model.Meal{
		ID:           str(raw, "idMeal"),
		Name:         str(raw, "strMeal"),
		Thumbnail:    str(raw, "strMealThumb"),
		Category:     str(raw, "strCategory"),
		Area:         str(raw, "strArea"),
		Instructions: str(raw, "strInstructions"),
		Video:        str(raw, "strYoutube"),
		Tags:         str(raw, "strTags"),
		Source:       str(raw, "strSource"),
	}
	for i := 0; i < model.IngredientSlots; i++ {
		n := strconv.Itoa(i + 1)
		m.Ingredients[i] = str(raw, "strIngredient"+n)
		m.Measures[i] = str(raw, "strMeasure"+n)
	}
	return m
}

// str reads a string field; null, missing and non-string values read as "".
func str(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
