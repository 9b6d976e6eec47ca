package chart

import "github.com/charmbracelet/lipgloss"

// Palette is the fixed 5-color bar palette. Charts with more than five
// bars cycle through it rather than truncating.
var Palette = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#45B7D1"),
	lipgloss.Color("#96CEB4"),
	lipgloss.Color("#FECA57"),
}

// PaletteColor returns the palette entry for bar index i, cycling after
// the last color.
func PaletteColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	annotationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	axisStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	curveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)
