package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/viz"
)

// SceneToSVG draws the slots of sc as they are positioned right now. One
// surface unit becomes scale pixels; cellWidth is the element width in
// surface units.
func SceneToSVG(sc viz.Scene, theme viz.Theme, cellWidth, scale float64) string {
	ids := sc.Slots()

	maxX, maxY := 0.0, 0.0
	for _, id := range ids {
		p := sc.Position(id)
		maxX = math.Max(maxX, p.X+cellWidth)
		maxY = math.Max(maxY, p.Y+1)
	}
	width := (maxX + 1) * scale
	height := (maxY + 1) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle" dominant-baseline="central">
`, width, height, width, height, scale*0.6))

	for _, id := range ids {
		p := sc.Position(id)
		x, y := p.X*scale, p.Y*scale
		cx := x + cellWidth*scale/2
		label := html.EscapeString(sc.Label(id))

		switch sc.Kind(id) {
		case anim.SlotElement:
			fill := viz.Blend(theme.Element, theme.Selected, sc.Highlight(id))
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>
`, x, y, (cellWidth-0.5)*scale, scale, scale*0.15, fill))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, cx, y+scale/2, theme.Text, label))
		case anim.SlotIndex:
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, cx, y+scale/2, theme.Index, label))
		case anim.SlotPointer:
			tip := y + scale*0.1
			sb.WriteString(fmt.Sprintf(`<path d="M%.1f,%.1f l%.1f,%.1f h%.1f z" fill="%s"/>
`, cx, tip, scale*0.25, scale*0.35, -scale*0.5, theme.Pointer))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, cx, y+scale*0.75, theme.Pointer, label))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline, one point per sample.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
