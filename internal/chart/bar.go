// Package chart builds renderable energy and force charts. Each build
// call returns an immutable chart value; rendering the same chart twice
// yields the same output.
package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch indicates paired chart inputs of different lengths.
var ErrLengthMismatch = errors.New("chart: paired inputs have different lengths")

// ErrNoData indicates an empty chart input.
var ErrNoData = errors.New("chart: no data")

// Bar is a single labeled bar.
type Bar struct {
	Label      string
	Joules     float64
	ColorIndex int
}

// BarChart is a categorical energy-distribution chart.
type BarChart struct {
	Title string
	Bars  []Bar
}

// EnergyDistribution builds a bar chart with one bar per label, each
// annotated with its value in joules. Colors cycle through the fixed
// palette.
func EnergyDistribution(energies []float64, labels []string) (*BarChart, error) {
	if len(energies) != len(labels) {
		return nil, ErrLengthMismatch
	}
	if len(energies) == 0 {
		return nil, ErrNoData
	}

	bars := make([]Bar, len(energies))
	for i := range energies {
		bars[i] = Bar{
			Label:      labels[i],
			Joules:     energies[i],
			ColorIndex: i,
		}
	}
	return &BarChart{Title: "energy distribution", Bars: bars}, nil
}

// Render draws the chart as horizontal bars with the value annotation at
// the head of each bar.
func (c *BarChart) Render() string {
	return c.RenderWidth(40)
}

// RenderWidth draws the chart with the given maximum bar width in cells.
func (c *BarChart) RenderWidth(barWidth int) string {
	if barWidth < 1 {
		barWidth = 1
	}

	maxVal := 0.0
	labelWidth := 0
	for _, b := range c.Bars {
		if v := absFloat(b.Joules); v > maxVal {
			maxVal = v
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(c.Title) + "\n")

	for _, b := range c.Bars {
		filled := 0
		if maxVal > 0 {
			filled = int(absFloat(b.Joules) / maxVal * float64(barWidth))
		}
		if filled < 1 && b.Joules != 0 {
			filled = 1
		}

		barStyle := valueStyle.Foreground(PaletteColor(b.ColorIndex))

		// Pad before styling so ANSI codes don't skew the column.
		padded := b.Label + strings.Repeat(" ", labelWidth-len(b.Label))
		sb.WriteString("  " + labelStyle.Render(padded) + " ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		sb.WriteString(valueStyle.Render(fmt.Sprintf(" %.2f J", b.Joules)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
