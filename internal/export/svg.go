package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/rigidcalc/internal/chart"
)

// CanvasToSVG converts a braille chart canvas to SVG, one dot per set
// sub-pixel.
func CanvasToSVG(canvas *chart.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#45B7D1">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BarChartSVG renders an energy-distribution chart as a standalone SVG
// with the value annotated just above each bar.
func BarChartSVG(c *chart.BarChart, width, height int) string {
	if c == nil || len(c.Bars) == 0 {
		return ""
	}

	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	maxVal := 0.0
	for _, b := range c.Bars {
		if b.Joules > maxVal {
			maxVal = b.Joules
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	n := float64(len(c.Bars))
	slot := plotW / n
	barW := slot * 0.7

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%.0f" y="24" font-family="sans-serif" font-size="16" font-weight="bold">%s</text>
<text x="14" y="%.0f" font-family="sans-serif" font-size="11" transform="rotate(-90 14 %.0f)">energy (J)</text>
`, width, height, width, height, margin, c.Title, margin+plotH/2, margin+plotH/2))

	for i, b := range c.Bars {
		h := b.Joules / maxVal * plotH
		if h < 0 {
			h = 0
		}
		x := margin + float64(i)*slot + (slot-barW)/2
		y := margin + plotH - h
		color := string(chart.PaletteColor(b.ColorIndex))

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" font-weight="bold" text-anchor="middle">%.2f J</text>
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" text-anchor="middle">%s</text>
`,
			x, y, barW, h, color,
			x+barW/2, y-5, b.Joules,
			x+barW/2, margin+plotH+14, b.Label))
	}

	sb.WriteString(fmt.Sprintf(`<line x1="%.0f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333"/>
</svg>`, margin, margin+plotH, margin+plotW, margin+plotH))
	return sb.String()
}

// AreaChartSVG renders a force-displacement chart as a standalone SVG
// with the area under the curve shaded and the work annotated in the
// upper right.
func AreaChartSVG(c *chart.AreaChart, width, height int) string {
	if c == nil || len(c.Forces) < 2 {
		return ""
	}

	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	xMin, xMax := c.Displacements[0], c.Displacements[0]
	yMin, yMax := 0.0, 0.0
	for i := range c.Displacements {
		if c.Displacements[i] < xMin {
			xMin = c.Displacements[i]
		}
		if c.Displacements[i] > xMax {
			xMax = c.Displacements[i]
		}
		if c.Forces[i] < yMin {
			yMin = c.Forces[i]
		}
		if c.Forces[i] > yMax {
			yMax = c.Forces[i]
		}
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	toX := func(x float64) float64 { return margin + (x-xMin)/(xMax-xMin)*plotW }
	toY := func(f float64) float64 { return margin + plotH - (f-yMin)/(yMax-yMin)*plotH }

	var area strings.Builder
	area.WriteString(fmt.Sprintf("M%.1f,%.1f", toX(c.Displacements[0]), toY(0)))
	for i := range c.Displacements {
		area.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(c.Displacements[i]), toY(c.Forces[i])))
	}
	area.WriteString(fmt.Sprintf(" L%.1f,%.1f Z", toX(c.Displacements[len(c.Displacements)-1]), toY(0)))

	var line strings.Builder
	for i := range c.Displacements {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		line.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, toX(c.Displacements[i]), toY(c.Forces[i])))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%.0f" y="24" font-family="sans-serif" font-size="16" font-weight="bold">force vs displacement</text>
<path d="%s" fill="#add8e6" fill-opacity="0.4"/>
<path d="%s" fill="none" stroke="#1f77b4" stroke-width="2"/>
`, width, height, width, height, margin, area.String(), line.String()))

	for i := range c.Displacements {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#1f77b4"/>
`, toX(c.Displacements[i]), toY(c.Forces[i])))
	}

	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.0f" width="150" height="24" fill="#fff3a0" stroke="#999999" rx="4"/>
<text x="%.1f" y="%.0f" font-family="sans-serif" font-size="12" font-weight="bold">work = %.2f J</text>
<text x="%.1f" y="%.0f" font-family="sans-serif" font-size="11" text-anchor="middle">displacement (m)</text>
<text x="14" y="%.0f" font-family="sans-serif" font-size="11" transform="rotate(-90 14 %.0f)">force (N)</text>
</svg>`,
		margin+plotW-160, margin+6,
		margin+plotW-150, margin+22, c.Work,
		margin+plotW/2, margin+plotH+26,
		margin+plotH/2, margin+plotH/2))
	return sb.String()
}
