package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/mealdb/internal/config"
	"github.com/idilsaglam/mealdb/internal/debug"
	"github.com/idilsaglam/mealdb/internal/favorites"
	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/store/jsonstore"
	"github.com/idilsaglam/mealdb/internal/tui"
	"github.com/idilsaglam/mealdb/internal/ui"
)

// Options wire the CLI to its surroundings. Zero values use the process's
// standard streams, a huh prompt and the interactive browser.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// Confirm asks a yes/no question.
	Confirm func(title string) (bool, error)
	// Browse runs the interactive browser.
	Browse func(ctx context.Context, api tui.API, favs tui.Favorites, opts tui.Options, logFile string) error
}

// app is the state shared by subcommands once the root pre-run has loaded it.
type app struct {
	opt      Options
	settings config.Settings
	client   *mealdb.Client
	store    *jsonstore.Store
	favs     *favorites.Store

	configFile string
	verbose    bool
	noColor    bool
}

// usageError marks mistakes in the command line; they exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Confirm == nil {
		opt.Confirm = confirmPrompt
	}
	if opt.Browse == nil {
		opt.Browse = tui.Run
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{opt: opt}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(opt.Stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(opt.Stderr, ui.C(ui.Current().Muted, "Hint: run `mealdb --help` for usage"))
		return 2
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mealdb",
		Short: "Browse TheMealDB recipes from the terminal",
		Long: `mealdb searches TheMealDB, filters by category or cuisine, shows full
recipes and keeps a list of favorites. Without a subcommand it starts the
interactive browser.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Root())
		},
		RunE: a.runBrowse,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./.mealdb.yaml, then ~/.mealdb/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose/debug output")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.String("base-url", "", "recipe API base URL")
	pf.String("theme", "", "output theme: classic, rounded or mono")

	root.AddCommand(
		&cobra.Command{
			Use:   "browse",
			Short: "Start the interactive browser",
			Args:  usageArgs(cobra.NoArgs),
			RunE:  a.runBrowse,
		},
		a.searchCmd(),
		a.categoryCmd(),
		a.areaCmd(),
		a.showCmd(),
		a.randomCmd(),
		a.categoriesCmd(),
		a.areasCmd(),
		a.favoritesCmd(),
		a.exportCmd(),
		a.configCmd(),
	)
	return root
}

// load resolves configuration and builds the client and favorites store.
func (a *app) load(root *cobra.Command) error {
	if err := config.Initialize(a.configFile); err != nil {
		return err
	}
	for key, name := range map[string]string{config.KeyBaseURL: "base-url", config.KeyTheme: "theme"} {
		if f := root.PersistentFlags().Lookup(name); f != nil && f.Changed {
			if err := config.BindFlag(key, f); err != nil {
				return err
			}
		}
	}
	settings, err := config.Load()
	if err != nil {
		return err
	}
	a.settings = settings

	debug.SetVerbose(a.verbose)
	ui.SetColorForcing(false, a.noColor)
	ui.SetTheme(settings.Theme)
	if used := config.ConfigFileUsed(); used != "" {
		debug.Logf("config: using %s", used)
	}

	a.client = mealdb.New(settings.BaseURL, mealdb.WithTimeout(settings.Timeout))
	a.store = jsonstore.Open(settings.StorePath, settings.StoreLockTimeout)
	a.favs = favorites.New(a.store)
	return nil
}

func (a *app) runBrowse(cmd *cobra.Command, _ []string) error {
	s := a.settings
	return a.opt.Browse(cmd.Context(), a.client, a.favs, tui.Options{
		Debounce:      s.Debounce,
		CloseDelay:    s.CloseDelay,
		PreviewLength: s.PreviewLength,
		UTCOffset:     s.UTCOffset,
		Location:      s.Location,
	}, s.DebugLogFile)
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
