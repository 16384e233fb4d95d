package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/alexanderramin/gestemps/internal/timesheet"
	"github.com/charmbracelet/lipgloss"
)

const shareBarWidth = 24

// ResultOptions selects the optional sections of FormatResult.
type ResultOptions struct {
	Daily   bool
	Details bool
}

// FormatResult renders one computation: the totals box, optionally the
// daily and detail tables, the flagged lines and the status line.
func FormatResult(resp *contract.ComputeResponse, opts ResultOptions) string {
	var b strings.Builder
	b.WriteString(RenderBox("Résultats", FormatTotals(resp.Result)))
	b.WriteString("\n")

	if opts.Daily {
		b.WriteString("\n")
		b.WriteString(FormatDaily(resp.Days, resp.Result.Total()))
	}
	if opts.Details {
		b.WriteString("\n")
		b.WriteString(FormatDetails(resp.Result.OffClientDetails))
	}
	if len(resp.Diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatDiagnostics(resp.Diagnostics))
	}
	if resp.Status != "" {
		b.WriteString("\n")
		b.WriteString(Dim(resp.Status))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTotals renders the three category totals, the grand total and a
// share bar per category.
func FormatTotals(r domain.Result) string {
	labelWidth := lipgloss.Width("Total")
	for _, c := range domain.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(c.Label()))
	}
	pad := func(s string) string {
		return s + strings.Repeat(" ", labelWidth-lipgloss.Width(s)+2)
	}

	total := r.Total()
	var lines []string
	for _, c := range domain.Categories {
		lines = append(lines, CategoryStyle(c).Render(pad(c.Label()))+FormatHours(r.CategoryHours(c)))
	}
	lines = append(lines, "", Bold(pad("Total"))+Bold(FormatHours(total)))

	if total > 0 {
		lines = append(lines, "")
		for _, c := range domain.Categories {
			share := r.CategoryHours(c) / total
			lines = append(lines, pad(c.Label())+RenderShare(share, shareBarWidth, CategoryStyle(c)))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatDaily renders the per-day breakdown in HHhMM. When the day total
// differs from the category total, a note explains the gap.
func FormatDaily(days []domain.DayTotal, categoryTotal float64) string {
	var b strings.Builder
	b.WriteString(Header("Par jour"))
	b.WriteString("\n")

	if len(days) == 0 {
		b.WriteString(Dim("Aucune date exploitable."))
		b.WriteString("\n")
		return b.String()
	}

	var sum float64
	rows := make([][]string, 0, len(days)+1)
	for _, d := range days {
		rows = append(rows, []string{FormatDay(d.Day), timesheet.FormatHoursMinutes(d.Hours)})
		sum += d.Hours
	}
	rows = append(rows, []string{Bold("Total"), Bold(timesheet.FormatHoursMinutes(sum))})
	b.WriteString(RenderTable([]string{"Jour", "Durée"}, rows, AlignLeft, AlignRight))

	if gap := categoryTotal - sum; math.Abs(gap) >= 1.0/60 {
		b.WriteString(Dim(fmt.Sprintf("%s non réparti(s) : lignes sans date exploitable.", timesheet.FormatHoursMinutes(gap))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDetails renders the retained off-client activities in input order.
func FormatDetails(entries []domain.OffClientEntry) string {
	var b strings.Builder
	b.WriteString(Header("Activités hors clientèle"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Dim("Aucune activité retenue."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			Truncate(e.Description, 40),
			e.Start,
			e.End,
			fmt.Sprintf("%.2f", e.Hours),
		})
	}
	b.WriteString(RenderTable(
		[]string{"#", "Description", "Début", "Fin", "Heures"}, rows,
		AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight,
	))
	return b.String()
}

// FormatDiagnostics lists the lines skipped or partially read.
func FormatDiagnostics(diags []domain.Diagnostic) string {
	var b strings.Builder
	b.WriteString(Header("Lignes signalées"))
	b.WriteString("\n")
	for _, d := range diags {
		fmt.Fprintf(&b, "%s %s %s\n", DiagnosticBadge(d.Kind), Dim(fmt.Sprintf("%s:%d", sourceLabel(d.Source), d.Line)), d.Message)
	}
	return b.String()
}

func sourceLabel(s domain.InputSource) string {
	switch s {
	case domain.SourceOffClient:
		return "hors-clientèle"
	case domain.SourceOnClient:
		return "clientèle"
	default:
		return string(s)
	}
}
