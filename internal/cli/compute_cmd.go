package cli

import (
	"fmt"

	"github.com/alexanderramin/gestemps/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newComputeCmd(app *App) *cobra.Command {
	var (
		in        inputFlags
		chartPath string
		daily     bool
		details   bool
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute category and daily totals from exported timesheets",
		Example: `  gestemps compute --off hors_clientele.tsv --client clientele.tsv --daily
  pbpaste | gestemps compute --off - --client clientele.tsv --chart=semaine.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.validate(); err != nil {
				return err
			}
			req, err := in.request(cmd.InOrStdin())
			if err != nil {
				return err
			}

			resp, err := app.Compute.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatResult(resp, formatter.ResultOptions{Daily: daily, Details: details}))

			if chartPath != "" {
				written, err := writeChart(app, chartPath, resp.Result)
				notice := chartNotice(chartPath, written, err)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render(notice))
				} else {
					fmt.Fprintln(out, formatter.Dim(notice))
				}
			}

			if save {
				run, err := saveRun(cmd.Context(), app, resp)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Enregistré :"), run.ID)
			}
			return nil
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().StringVar(&chartPath, "chart", "", "write the pie chart as SVG (default path from config when given without a value)")
	cmd.Flags().Lookup("chart").NoOptDefVal = app.ChartPath
	cmd.Flags().BoolVarP(&daily, "daily", "d", false, "show the per-day breakdown")
	cmd.Flags().BoolVar(&details, "details", false, "list the retained off-client activities")
	cmd.Flags().BoolVar(&save, "save", false, "store the result in the history database")

	return cmd
}
