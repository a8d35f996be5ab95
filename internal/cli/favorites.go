package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/mealdb/internal/render"
	"github.com/idilsaglam/mealdb/internal/ui"
)

func (a *app) favoritesCmd() *cobra.Command {
	fav := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Show and edit favorite recipes",
		Args:    usageArgs(cobra.NoArgs),
		RunE:    a.runFavoritesList,
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			n := a.favs.Len()
			if n == 0 {
				ui.OK(a.opt.Stdout, "no favorites to clear")
				return nil
			}
			if !yes {
				ok, err := a.opt.Confirm(fmt.Sprintf("Remove all %d favorites?", n))
				if err != nil {
					return fmt.Errorf("confirm: %w", err)
				}
				if !ok {
					ui.OK(a.opt.Stdout, "cancelled")
					return nil
				}
			}
			if err := a.favs.Clear(); err != nil {
				return err
			}
			ui.OK(a.opt.Stdout, fmt.Sprintf("cleared %d favorites", n))
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	fav.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show favorite recipes",
			Args:  usageArgs(cobra.NoArgs),
			RunE:  a.runFavoritesList,
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Add or remove a favorite",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(_ *cobra.Command, args []string) error {
				on, err := a.favs.Toggle(args[0])
				if err != nil {
					return err
				}
				if on {
					ui.OK(a.opt.Stdout, "added "+args[0]+" to favorites")
				} else {
					ui.OK(a.opt.Stdout, "removed "+args[0]+" from favorites")
				}
				return nil
			},
		},
		clearCmd,
	)
	return fav
}

// runFavoritesList resolves every favorite before printing; one failed
// lookup fails the listing.
func (a *app) runFavoritesList(cmd *cobra.Command, _ []string) error {
	ids := a.favs.All()
	if len(ids) == 0 {
		ui.PrintGrid(a.opt.Stdout, render.ResultGrid(nil, render.FavoritesTitle, a.favs))
		return nil
	}
	meals, err := a.client.LookupAll(cmd.Context(), ids)
	if err != nil {
		ui.PrintGrid(a.opt.Stdout, render.Error(render.FetchFailedMessage))
		return fmt.Errorf("favorites: %w", err)
	}
	ui.PrintGrid(a.opt.Stdout, render.ResultGrid(meals, render.FavoritesTitle, a.favs))
	return nil
}

func confirmPrompt(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Clear").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
