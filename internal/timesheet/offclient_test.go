package timesheet

import (
	"testing"
	"time"

	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/alexanderramin/gestemps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	june10 = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	june11 = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
)

func TestParseOffClient_SingleLine(t *testing.T) {
	daily := NewDaily()
	diags := NewDiagnostics(nil)

	entries := ParseOffClient(
		testutil.OffClientLine("X", "Révision véhicule", "10/06/2025 08:00", "10/06/2025 10:00"),
		daily, diags,
	)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.OffClientEntry{
		Description: "Révision véhicule",
		Start:       "10/06/2025 08:00",
		End:         "10/06/2025 10:00",
		Hours:       2,
	}, entries[0])

	h, ok := daily.Hours(june10)
	require.True(t, ok)
	assert.InDelta(t, 2.0, h, 1e-9)
	assert.Equal(t, 0, diags.Len())
}

func TestParseOffClient_LunchBreakExcluded(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"lowercase", "pause déjeuner"},
		{"capitalized", "Pause déjeuner"},
		{"uppercase", "PAUSE DÉJEUNER"},
		{"embedded", "Longue pause Déjeuner équipe"},
		{"decomposed accent", "Pause de\u0301jeuner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daily := NewDaily()
			entries := ParseOffClient(
				testutil.OffClientLine("ABS-1", tt.description, "10/06/2025 12:00", "10/06/2025 13:00"),
				daily, nil,
			)
			assert.Empty(t, entries)
			assert.Equal(t, 0, daily.Len())
		})
	}
}

func TestParseOffClient_SimilarDescriptionKept(t *testing.T) {
	entries := ParseOffClient(
		testutil.OffClientLine("X", "Pause café", "10/06/2025 10:00", "10/06/2025 10:15"),
		NewDaily(), nil,
	)
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.25, entries[0].Hours, 1e-9)
}

func TestParseOffClient_ShortLinesSkipped(t *testing.T) {
	daily := NewDaily()
	diags := NewDiagnostics(nil)

	text := testutil.Lines(
		testutil.OffClientLine("A", "Formation", "10/06/2025 08:00", "10/06/2025 09:00"),
		"B\tRéunion\t10/06/2025 09:00",
		"",
		"   ",
		testutil.OffClientLine("C", "Administratif", "11/06/2025 14:00", "11/06/2025 16:30"),
	)

	entries := ParseOffClient(text, daily, diags)

	require.Len(t, entries, 2)
	assert.Equal(t, "Formation", entries[0].Description)
	assert.Equal(t, "Administratif", entries[1].Description)

	require.Equal(t, 1, diags.Len())
	assert.Equal(t, domain.DiagStructural, diags.Items()[0].Kind)
	assert.Equal(t, 2, diags.Items()[0].Line)

	h10, _ := daily.Hours(june10)
	h11, _ := daily.Hours(june11)
	assert.InDelta(t, 1.0, h10, 1e-9)
	assert.InDelta(t, 2.5, h11, 1e-9)
}

func TestParseOffClient_UnparseableDatesStillEmitEntry(t *testing.T) {
	daily := NewDaily()
	diags := NewDiagnostics(nil)

	entries := ParseOffClient(
		testutil.OffClientLine("X", "Inventaire", "hier matin", "hier midi"),
		daily, diags,
	)

	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Hours)
	assert.Equal(t, 0, daily.Len())
	assert.Equal(t, 2, diags.CountKind(domain.DiagDateParse))
}

func TestParseOffClient_FallbackLayoutKeysDayWithoutDuration(t *testing.T) {
	daily := NewDaily()
	diags := NewDiagnostics(nil)

	// ISO start resolves a day but the duration only accepts the primary layout.
	entries := ParseOffClient(
		testutil.OffClientLine("X", "Inventaire", "2025-06-10 08:00", "2025-06-10 09:00"),
		daily, diags,
	)

	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Hours)
	h, ok := daily.Hours(june10)
	assert.True(t, ok)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 1, diags.CountKind(domain.DiagDateParse))
}

func TestParseOffClient_NegativeDurationPassesThrough(t *testing.T) {
	daily := NewDaily()
	entries := ParseOffClient(
		testutil.OffClientLine("X", "Saisie inversée", "10/06/2025 10:00", "10/06/2025 09:00"),
		daily, nil,
	)

	require.Len(t, entries, 1)
	assert.InDelta(t, -1.0, entries[0].Hours, 1e-9)
	h, _ := daily.Hours(june10)
	assert.InDelta(t, -1.0, h, 1e-9)
}

func TestParseOffClient_EmptyTimestamps(t *testing.T) {
	daily := NewDaily()
	diags := NewDiagnostics(nil)

	entries := ParseOffClient("X\tAstreinte\t\t10/06/2025 10:00", daily, diags)

	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Start)
	assert.Equal(t, 0.0, entries[0].Hours)
	assert.Equal(t, 0, daily.Len())
	assert.Equal(t, 1, diags.CountKind(domain.DiagDateParse))
}

func TestParseOffClient_TrailingEmptyFieldsTrimmed(t *testing.T) {
	diags := NewDiagnostics(nil)

	// The whole line is trimmed before splitting, so trailing tabs vanish.
	entries := ParseOffClient("X\tAstreinte\t\t", NewDaily(), diags)

	assert.Empty(t, entries)
	assert.Equal(t, 1, diags.CountKind(domain.DiagStructural))
}

func TestParseOffClient_WindowsLineEndings(t *testing.T) {
	text := testutil.OffClientLine("A", "Formation", "10/06/2025 08:00", "10/06/2025 09:00") + "\r\n" +
		testutil.OffClientLine("B", "Réunion", "10/06/2025 09:00", "10/06/2025 09:30") + "\r\n"

	entries := ParseOffClient(text, NewDaily(), nil)
	require.Len(t, entries, 2)
	assert.Equal(t, "10/06/2025 09:30", entries[1].End)
}
