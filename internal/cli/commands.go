package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/mealdb/internal/config"
	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/render"
	"github.com/idilsaglam/mealdb/internal/ui"
)

func (a *app) listCmd(use, short string, args cobra.PositionalArgs, query func([]string) mealdb.Query) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  usageArgs(args),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query(args)
			meals, err := a.client.List(cmd.Context(), q)
			if err != nil {
				ui.PrintGrid(a.opt.Stdout, render.Error(render.FetchFailedMessage))
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			ui.PrintGrid(a.opt.Stdout, render.ResultGrid(meals, q.Title(), a.favs))
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	return a.listCmd("search [term...]", "Search recipes by name (no term lists everything)",
		cobra.ArbitraryArgs,
		func(args []string) mealdb.Query { return mealdb.Query{Term: strings.Join(args, " ")} })
}

func (a *app) categoryCmd() *cobra.Command {
	return a.listCmd("category <name>", "List recipes in a category", cobra.ExactArgs(1),
		func(args []string) mealdb.Query { return mealdb.Query{Category: args[0]} })
}

func (a *app) areaCmd() *cobra.Command {
	return a.listCmd("area <name>", "List recipes from a cuisine", cobra.ExactArgs(1),
		func(args []string) mealdb.Query { return mealdb.Query{Area: args[0]} })
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a full recipe",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			meal, err := a.client.Lookup(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, mealdb.ErrNotFound) {
					return fmt.Errorf("%s: no recipe with id %s", render.DetailFailedMessage, args[0])
				}
				return fmt.Errorf("%s: %w", render.DetailFailedMessage, err)
			}
			ui.PrintDetail(a.opt.Stdout, render.Detail(meal))
			return nil
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show the chef's special",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			meal, err := a.client.Random(cmd.Context())
			if err != nil {
				ui.PrintGrid(a.opt.Stdout, render.Error(render.FetchFailedMessage))
				return fmt.Errorf("random: %w", err)
			}
			s := a.settings
			fmt.Fprintln(a.opt.Stdout, ui.C(ui.Current().Success, render.Greeting(time.Now(), s.UTCOffset, s.Location)))
			ui.PrintSpecial(a.opt.Stdout, render.ChefSpecial(meal, s.PreviewLength))
			return nil
		},
	}
}

func (a *app) namesCmd(use, short, title string, fetch func(*cobra.Command) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := fetch(cmd)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			t := ui.Current()
			lines := []string{ui.C(t.Title, title), ""}
			for _, n := range names {
				lines = append(lines, ui.C(t.Muted, t.SymBullet)+" "+n)
			}
			ui.Panel(a.opt.Stdout, lines)
			return nil
		},
	}
}

func (a *app) categoriesCmd() *cobra.Command {
	return a.namesCmd("categories", "List recipe categories", "Categories",
		func(cmd *cobra.Command) ([]string, error) { return a.client.Categories(cmd.Context()) })
}

func (a *app) areasCmd() *cobra.Command {
	return a.namesCmd("areas", "List cuisines", "Areas",
		func(cmd *cobra.Command) ([]string, error) { return a.client.Areas(cmd.Context()) })
}

func (a *app) configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			out, err := yaml.Marshal(config.AllSettings())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if used := config.ConfigFileUsed(); used != "" {
				fmt.Fprintf(a.opt.Stdout, "# %s\n", used)
			}
			fmt.Fprintf(a.opt.Stdout, "# store: %s\n", a.store.Path())
			_, err = a.opt.Stdout.Write(out)
			return err
		},
	})
	return cfg
}
