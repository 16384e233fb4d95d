package chart

import (
	"fmt"
	"html"
	"math"
	"strings"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
	titleHeight   = 40
	chartTitle    = "Répartition du temps"
)

// SVGRenderer draws the pie chart as a standalone SVG document.
type SVGRenderer struct {
	Width  int
	Height int
}

func (r SVGRenderer) size() (int, int) {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= titleHeight {
		h = defaultHeight
	}
	return w, h
}

func (r SVGRenderer) Render(slices []Slice) ([]byte, error) {
	wedges := Layout(slices)
	if wedges == nil {
		return nil, nil
	}

	width, height := r.size()
	cx := float64(width) / 2
	cy := float64(titleHeight) + float64(height-titleHeight)/2
	radius := 0.42 * math.Min(float64(width), float64(height-titleHeight))

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<style>
.title { font-family: sans-serif; font-size: 18px; font-weight: bold; fill: #282828; }
.label { font-family: sans-serif; font-size: 13px; fill: #282828; }
</style>
<text class="title" x="%.2f" y="26" text-anchor="middle">%s</text>
`, width, height, cx, html.EscapeString(chartTitle))

	for _, w := range wedges {
		writeWedge(&svg, w, cx, cy, radius)
	}
	for _, w := range wedges {
		writeLabel(&svg, w, cx, cy, radius)
	}

	svg.WriteString("</svg>\n")
	return []byte(svg.String()), nil
}

func writeWedge(svg *strings.Builder, w Wedge, cx, cy, radius float64) {
	// A single arc cannot describe a full turn.
	if w.Sweep >= 359.999 {
		fmt.Fprintf(svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#ffffff" stroke-width="2"/>`+"\n",
			cx, cy, radius, w.Color)
		return
	}

	x1, y1 := polar(cx, cy, radius, w.Start)
	x2, y2 := polar(cx, cy, radius, w.Start+w.Sweep)
	largeArc := 0
	if w.Sweep > 180 {
		largeArc = 1
	}
	fmt.Fprintf(svg, `<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s" stroke="#ffffff" stroke-width="2"/>`+"\n",
		cx, cy, x1, y1, radius, radius, largeArc, x2, y2, w.Color)
}

func writeLabel(svg *strings.Builder, w Wedge, cx, cy, radius float64) {
	x, y := polar(cx, cy, radius*0.6, w.Mid)
	if w.Sweep >= 359.999 {
		x, y = cx, cy
	}
	fmt.Fprintf(svg, `<text class="label" text-anchor="middle"><tspan x="%.2f" y="%.2f">%s</tspan><tspan x="%.2f" dy="1.2em">%s</tspan></text>`+"\n",
		x, y, html.EscapeString(w.Label), x, ValueLabel(w))
}

// ValueLabel formats the hours and share of a wedge, e.g. "2.00 h (51.3 %)".
func ValueLabel(w Wedge) string {
	return fmt.Sprintf("%.2f h (%.1f %%)", w.Value, w.Percent)
}

// polar maps an angle in degrees, clockwise from twelve o'clock, to SVG
// coordinates where y grows downwards.
func polar(cx, cy, radius, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + radius*math.Sin(rad), cy - radius*math.Cos(rad)
}
