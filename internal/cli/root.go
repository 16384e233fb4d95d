package cli

import (
	"errors"
	"io"

	"github.com/alexanderramin/gestemps/internal/chart"
	"github.com/alexanderramin/gestemps/internal/service"
	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("history is disabled (history_enabled=false)")

// App holds the services and settings used by CLI commands.
type App struct {
	Compute service.ComputeService
	// History is nil when persistence is disabled.
	History service.HistoryService

	ChartPath string
	Chart     chart.Renderer

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the form only when it returns true.
	IsInteractive func() bool
}

func (a *App) chartRenderer() chart.Renderer {
	if a.Chart == nil {
		return chart.SVGRenderer{}
	}
	return a.Chart
}

// NewRootCmd creates the top-level "gestemps" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gestemps",
		Short: "Timesheet hour totals by category and by day",
		Long: `gestemps reads two tab-separated timesheet exports (off-client
activities and on-client work orders), totals the hours per category
and per day, and can draw a pie chart of the three categories.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runForm(app, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newComputeCmd(app),
		newFormCmd(app),
		newHistoryCmd(app),
	)

	return root
}

func newFormCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Paste both exports into an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runForm(app *App, in io.Reader, out io.Writer) error {
	_, err := newFormProgram(app, in, out).Run()
	return err
}
