package chart

import (
	"fmt"
	"strings"

	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// AreaChart is a force-vs-displacement line chart with the area under
// the curve shaded and the integrated work annotated.
type AreaChart struct {
	Forces        []float64
	Displacements []float64

	// Work is the trapezoidal integral of the curve, computed once at
	// build time with mechanics.WorkVariableForce so the annotation and
	// the formula can never disagree.
	Work float64

	Width, Height int // canvas size in cells
}

// ForceDisplacement builds the chart from paired force and displacement
// samples.
func ForceDisplacement(forces, displacements []float64) (*AreaChart, error) {
	work, err := mechanics.WorkVariableForce(forces, displacements)
	if err != nil {
		return nil, err
	}

	f := make([]float64, len(forces))
	x := make([]float64, len(displacements))
	copy(f, forces)
	copy(x, displacements)

	return &AreaChart{
		Forces:        f,
		Displacements: x,
		Work:          work,
		Width:         64,
		Height:        14,
	}, nil
}

// Render draws the chart with a framed braille canvas, axis extents and
// the work annotation in the upper right.
func (c *AreaChart) Render() string {
	canvas := NewCanvas(c.Width, c.Height)
	xMin, xMax, yMin, yMax := c.bounds()

	subW := canvas.SubWidth()
	subH := canvas.SubHeight()

	toPx := func(x float64) int {
		return int(float64(subW-1) * (x - xMin) / (xMax - xMin))
	}
	toPy := func(f float64) int {
		// Flip: sub-pixel row 0 is the top.
		return subH - 1 - int(float64(subH-1)*(f-yMin)/(yMax-yMin))
	}

	baseline := toPy(0)

	// Shade the area between the curve and the zero line column by
	// column, interpolating force between samples.
	for i := 0; i < len(c.Forces)-1; i++ {
		px0, px1 := toPx(c.Displacements[i]), toPx(c.Displacements[i+1])
		if px0 == px1 {
			continue
		}
		step := 1
		if px1 < px0 {
			step = -1
		}
		for px := px0; px != px1; px += step {
			t := float64(px-px0) / float64(px1-px0)
			f := c.Forces[i] + t*(c.Forces[i+1]-c.Forces[i])
			canvas.FillColumn(px, baseline, toPy(f), 3)
		}
	}

	// Curve on top of the shading, then markers on top of the curve.
	for i := 0; i < len(c.Forces)-1; i++ {
		canvas.DrawLine(
			toPx(c.Displacements[i]), toPy(c.Forces[i]),
			toPx(c.Displacements[i+1]), toPy(c.Forces[i+1]),
		)
	}
	for i := range c.Forces {
		canvas.Marker(toPx(c.Displacements[i]), toPy(c.Forces[i]))
	}

	return c.frame(canvas, xMin, xMax, yMin, yMax)
}

// bounds returns the plot extents, always including the zero-force line
// and padding degenerate ranges.
func (c *AreaChart) bounds() (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = c.Displacements[0], c.Displacements[0]
	yMin, yMax = 0, 0
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
	return xMin, xMax, yMin, yMax
}

func (c *AreaChart) frame(canvas *Canvas, xMin, xMax, yMin, yMax float64) string {
	var sb strings.Builder

	title := titleStyle.Render("force vs displacement")
	annotation := annotationStyle.Render(fmt.Sprintf("work = %.2f J", c.Work))
	gap := c.Width + 2 - len("force vs displacement") - len(fmt.Sprintf("work = %.2f J", c.Work))
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(title + strings.Repeat(" ", gap) + annotation + "\n")

	sb.WriteString(axisStyle.Render(fmt.Sprintf("%8.2f ┌%s┐", yMax, strings.Repeat("─", c.Width))) + "\n")
	for i, row := range canvas.Grid {
		label := "         "
		if i == c.Height/2 {
			label = fmt.Sprintf("%8.2f ", (yMax+yMin)/2)
		}
		sb.WriteString(axisStyle.Render(label+"│") + curveStyle.Render(string(row)) + axisStyle.Render("│") + "\n")
	}
	sb.WriteString(axisStyle.Render(fmt.Sprintf("%8.2f └%s┘", yMin, strings.Repeat("─", c.Width))) + "\n")

	left := fmt.Sprintf("%.2f", xMin)
	right := fmt.Sprintf("%.2f m", xMax)
	pad := c.Width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	sb.WriteString(axisStyle.Render("          "+left+strings.Repeat(" ", pad)+right) + "\n")

	return sb.String()
}
