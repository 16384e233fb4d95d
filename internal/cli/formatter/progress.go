package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a share bar like "████░░░░  45.0 %" in the given
// style. pct is a fraction and is clamped to [0, 1].
func RenderShare(pct float64, width int, style lipgloss.Style) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s %5.1f %%", style.Render(bar), pct*100)
}
