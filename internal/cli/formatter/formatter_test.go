package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var june10 = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func scenarioResponse() *contract.ComputeResponse {
	return &contract.ComputeResponse{
		Result: domain.Result{
			OffClient:  2,
			ClientWork: 1.5,
			Travel:     0.5,
			OffClientDetails: []domain.OffClientEntry{
				{Description: "Révision véhicule", Start: "10/06/2025 08:00", End: "10/06/2025 10:00", Hours: 2},
			},
		},
		Days: []domain.DayTotal{{Day: june10, Hours: 4}},
		Diagnostics: []domain.Diagnostic{
			{Source: domain.SourceOnClient, Line: 4, Kind: domain.DiagNumericParse, Message: `travel duration "x" is not a decimal number`},
		},
		Status: "Calcul terminé : 1 activité(s) hors clientèle retenue(s), 1 ligne(s) signalée(s)",
	}
}

func TestFormatResult_Totals(t *testing.T) {
	out := stripANSI(FormatResult(scenarioResponse(), ResultOptions{}))

	assert.Contains(t, out, "RÉSULTATS")
	assert.Contains(t, out, "Hors clientèle")
	assert.Contains(t, out, "2.00 heures")
	assert.Contains(t, out, "1.50 heures")
	assert.Contains(t, out, "0.50 heures")
	assert.Contains(t, out, "4.00 heures")
	assert.Contains(t, out, "50.0 %")
	assert.Contains(t, out, "12.5 %")
	assert.Contains(t, out, "Calcul terminé")
	assert.NotContains(t, out, "PAR JOUR")
	assert.NotContains(t, out, "ACTIVITÉS HORS CLIENTÈLE")
}

func TestFormatResult_OptionalSections(t *testing.T) {
	out := stripANSI(FormatResult(scenarioResponse(), ResultOptions{Daily: true, Details: true}))

	assert.Contains(t, out, "PAR JOUR")
	assert.Contains(t, out, "10/06/2025")
	assert.Contains(t, out, "04h00")
	assert.Contains(t, out, "ACTIVITÉS HORS CLIENTÈLE")
	assert.Contains(t, out, "Révision véhicule")
	assert.Contains(t, out, "LIGNES SIGNALÉES")
	assert.Contains(t, out, "clientèle:4")
	assert.NotContains(t, out, "non réparti")
}

func TestFormatTotals_ZeroHasNoShareBars(t *testing.T) {
	out := stripANSI(FormatTotals(domain.Result{}))

	assert.Contains(t, out, "0.00 heures")
	assert.NotContains(t, out, "%")
}

func TestFormatDaily_GapNote(t *testing.T) {
	out := stripANSI(FormatDaily([]domain.DayTotal{{Day: june10, Hours: 4.5}}, 5.5))

	assert.Contains(t, out, "04h30")
	assert.Contains(t, out, "01h00 non réparti(s)")
}

func TestFormatDaily_Empty(t *testing.T) {
	out := stripANSI(FormatDaily(nil, 2))
	assert.Contains(t, out, "Aucune date exploitable.")
}

func TestFormatDetails_Empty(t *testing.T) {
	out := stripANSI(FormatDetails(nil))
	assert.Contains(t, out, "Aucune activité retenue.")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable([]string{"Jour", "Durée"}, [][]string{
		{"10/06/2025", "4h"},
		{"11/06/2025", "12h30"},
	}, AlignLeft, AlignRight))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Jour        Durée", lines[0])
	assert.Equal(t, "10/06/2025     4h", lines[2])
	assert.Equal(t, "11/06/2025  12h30", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderShare(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
		label  string
	}{
		{"zero", 0, 0, "0.0 %"},
		{"half", 0.5, 5, "50.0 %"},
		{"full", 1, 10, "100.0 %"},
		{"over clamps", 1.5, 10, "100.0 %"},
		{"negative clamps", -0.2, 0, "0.0 %"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderShare(tt.pct, 10, lipgloss.NewStyle()))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "à l'instant", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "il y a 5 min", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "il y a 3 h", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	old := now.Add(-72 * time.Hour)
	assert.Equal(t, old.Local().Format("02/01/2006 15:04"), HumanTimestampFrom(old, now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "court", Truncate("court", 10))
	assert.Equal(t, "Révis…", Truncate("Révision véhicule", 6))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestFormatRunList(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	runs := []*domain.Run{{
		ID:               "0123456789abcdef",
		ComputedAt:       now.Add(-2 * time.Minute),
		Result:           domain.Result{OffClient: 2, ClientWork: 1.3, Travel: 0.6},
		DiagnosticsCount: 2,
	}}

	out := stripANSI(FormatRunListFrom(runs, now))
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "il y a 2 min")
	assert.Contains(t, out, "3.90")

	assert.Contains(t, stripANSI(FormatRunList(nil)), "Aucun calcul enregistré.")
}

func TestFormatRun(t *testing.T) {
	run := &domain.Run{
		ID:               "run-1",
		ComputedAt:       time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		Result:           scenarioResponse().Result,
		Days:             scenarioResponse().Days,
		DiagnosticsCount: 1,
	}

	out := stripANSI(FormatRun(run))
	assert.Contains(t, out, "Calcul run-1")
	assert.Contains(t, out, "4.00 heures")
	assert.Contains(t, out, "04h00")
	assert.Contains(t, out, "Révision véhicule")
	assert.Contains(t, out, "1 ligne(s) signalée(s)")
}
