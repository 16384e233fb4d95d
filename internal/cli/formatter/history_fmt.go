package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gestemps/internal/domain"
)

// FormatRunList renders saved runs, newest first as given.
func FormatRunList(runs []*domain.Run) string {
	return FormatRunListFrom(runs, time.Now())
}

// FormatRunListFrom is FormatRunList with timestamps relative to now.
func FormatRunListFrom(runs []*domain.Run, now time.Time) string {
	if len(runs) == 0 {
		return Dim("Aucun calcul enregistré.") + "\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.ComputedAt, now),
			fmt.Sprintf("%.2f", r.Result.OffClient),
			fmt.Sprintf("%.2f", r.Result.ClientWork),
			fmt.Sprintf("%.2f", r.Result.Travel),
			Bold(fmt.Sprintf("%.2f", r.Result.Total())),
			strconv.Itoa(r.DiagnosticsCount),
		})
	}
	return RenderTable(
		[]string{"ID", "Date", "Hors cl.", "Travail", "Dépl.", "Total", "Signalées"}, rows,
		AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight,
	)
}

// FormatRun renders one saved run with its daily breakdown and details.
func FormatRun(run *domain.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", Bold("Calcul "+run.ID), Dim(run.ComputedAt.Local().Format("02/01/2006 15:04:05")))
	b.WriteString(RenderBox("Résultats", FormatTotals(run.Result)))
	b.WriteString("\n\n")
	b.WriteString(FormatDaily(run.Days, run.Result.Total()))
	b.WriteString("\n")
	b.WriteString(FormatDetails(run.Result.OffClientDetails))
	if run.DiagnosticsCount > 0 {
		fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d ligne(s) signalée(s) lors du calcul.", run.DiagnosticsCount)))
	}
	return b.String()
}
