package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gestemps/internal/chart"
	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/domain"
)

// writeChart draws the category chart of r to path. It reports whether a
// file was written; an all-zero result writes nothing.
func writeChart(app *App, path string, r domain.Result) (bool, error) {
	slices := chart.CategorySlices(r)
	if chart.Total(slices) <= 0 {
		return false, nil
	}
	if err := chart.WriteFile(path, app.chartRenderer(), slices); err != nil {
		return false, err
	}
	return true, nil
}

func chartNotice(path string, written bool, err error) string {
	switch {
	case err != nil:
		return fmt.Sprintf("Graphique non généré : %v", err)
	case !written:
		return "Aucune heure à représenter, graphique non généré."
	default:
		return fmt.Sprintf("Graphique enregistré : %s", path)
	}
}

func saveRun(ctx context.Context, app *App, resp *contract.ComputeResponse) (*domain.Run, error) {
	if app.History == nil {
		return nil, errHistoryDisabled
	}
	run, err := app.History.Save(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}
	return run, nil
}
