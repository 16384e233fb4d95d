// Package chart lays out and renders the category pie chart.
package chart

import "github.com/alexanderramin/gestemps/internal/domain"

// Category colors, shared with the terminal palette.
const (
	ColorOffClient  = "#83a598"
	ColorClientWork = "#8ec07c"
	ColorTravel     = "#fabd2f"
)

// Slice is one labelled value of the chart.
type Slice struct {
	Label string
	Value float64
	Color string
}

// Wedge is a laid-out slice. Angles are in degrees, clockwise from
// twelve o'clock.
type Wedge struct {
	Slice
	Start   float64
	Sweep   float64
	Mid     float64
	Percent float64
}

// Renderer turns slices into an encoded image. Implementations return nil
// bytes and no error when there is nothing to draw.
type Renderer interface {
	Render(slices []Slice) ([]byte, error)
}

// CategorySlices returns the three category totals of r in display order.
func CategorySlices(r domain.Result) []Slice {
	colors := map[domain.Category]string{
		domain.CategoryOffClient:  ColorOffClient,
		domain.CategoryClientWork: ColorClientWork,
		domain.CategoryTravel:     ColorTravel,
	}
	slices := make([]Slice, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		slices = append(slices, Slice{Label: c.Label(), Value: r.CategoryHours(c), Color: colors[c]})
	}
	return slices
}

// Total sums the positive slice values. Non-positive values are not drawn
// and do not count.
func Total(slices []Slice) float64 {
	var total float64
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	return total
}

// Layout assigns consecutive angles to the positive slices in input order.
// It returns nil when the total is zero.
func Layout(slices []Slice) []Wedge {
	total := Total(slices)
	if total <= 0 {
		return nil
	}

	var wedges []Wedge
	start := 0.0
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		sweep := s.Value / total * 360
		wedges = append(wedges, Wedge{
			Slice:   s,
			Start:   start,
			Sweep:   sweep,
			Mid:     start + sweep/2,
			Percent: s.Value / total * 100,
		})
		start += sweep
	}
	return wedges
}
