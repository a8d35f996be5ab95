package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/mealdb/internal/export"
	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/model"
	"github.com/idilsaglam/mealdb/internal/ui"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		favs bool
		q    mealdb.Query
	)
	cmd := &cobra.Command{
		Use:   "export <file.csv|file.xlsx>",
		Short: "Write recipes with their ingredients to CSV or XLSX",
		Long: `export writes one row per recipe. Pick the recipes with one of --favorites,
--search, --category or --area; with none of them every recipe is exported.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]
			switch strings.ToLower(filepath.Ext(out)) {
			case ".csv", ".xlsx":
			default:
				return usagef("export: %s: %v", out, export.ErrUnsupportedFormat)
			}
			set := 0
			for _, name := range []string{"favorites", "search", "category", "area"} {
				if cmd.Flags().Changed(name) {
					set++
				}
			}
			if set > 1 {
				return usagef("export: use only one of --favorites, --search, --category, --area")
			}

			var (
				meals []model.Meal
				err   error
			)
			if favs {
				meals, err = a.client.LookupAll(cmd.Context(), a.favs.All())
			} else {
				meals, err = a.fullMeals(cmd.Context(), q)
			}
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := export.Write(out, meals); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			ui.OK(a.opt.Stdout, fmt.Sprintf("exported %d recipes to %s", len(meals), out))
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&favs, "favorites", false, "export favorite recipes")
	f.StringVar(&q.Term, "search", "", "export recipes matching a name")
	f.StringVar(&q.Category, "category", "", "export recipes in a category")
	f.StringVar(&q.Area, "area", "", "export recipes from a cuisine")
	return cmd
}

// fullMeals lists q. Category and area filters only return summaries, so
// those results are looked up in full.
func (a *app) fullMeals(ctx context.Context, q mealdb.Query) ([]model.Meal, error) {
	meals, err := a.client.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if k := q.Kind(); k != mealdb.KindCategory && k != mealdb.KindArea {
		return meals, nil
	}
	ids := make([]string, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
	}
	return a.client.LookupAll(ctx, ids)
}
