package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette. The category colors match the SVG chart.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the style of a time category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryOffClient:
		return StyleBlue
	case domain.CategoryClientWork:
		return StyleGreen
	case domain.CategoryTravel:
		return StyleYellow
	default:
		return StyleFg
	}
}

// DiagnosticBadge returns a colored tag for a diagnostic kind, e.g. "● date".
func DiagnosticBadge(kind domain.DiagnosticKind) string {
	switch kind {
	case domain.DiagStructural:
		return StyleRed.Render("● structure")
	case domain.DiagDateParse:
		return StyleYellow.Render("● date")
	case domain.DiagNumericParse:
		return StylePurple.Render("● nombre")
	default:
		return StyleDim.Render("● " + string(kind))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
