package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/mealdb/internal/debug"
)

// Run starts the browser on the alternate screen and blocks until it quits.
// Diagnostics go to logFile while it runs so they do not corrupt the screen.
func Run(ctx context.Context, api API, favs Favorites, opts Options, logFile string) error {
	if debug.Enabled() && logFile != "" {
		f, err := tea.LogToFile(logFile, "mealdb")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		debug.SetOutput(f)
		defer debug.SetOutput(nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, api, favs, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
