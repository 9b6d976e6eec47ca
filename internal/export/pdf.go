package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// ReportInfo is the header block of a PDF analysis report.
type ReportInfo struct {
	Title  string
	Author string
	Notes  string
}

// WriteReportPDF writes a one-page work and energy report for the
// scenario breakdown.
func WriteReportPDF(w io.Writer, info ReportInfo, s analysis.Scenario, b *analysis.Breakdown) error {
	if info.Title == "" {
		info.Title = "Work and Energy Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, info.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if info.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", info.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Scenario")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Shape: %s", s.Shape))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Mass: %.3f kg", s.Mass))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Velocity: %.3f m/s   Angular velocity: %.3f rad/s   Height: %.3f m",
		s.Velocity, s.AngularVelocity, s.Height))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Moment of inertia: %.4f kg*m^2", b.MomentOfInertia))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Energy Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, e := range b.Entries {
		pdf.Cell(100, 6, e.Label)
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f J", e.Joules), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f %%", b.Share(e.Label)*100), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 6, "total")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f J", b.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	g := s.Gravity
	if g == 0 {
		g = mechanics.StandardGravity
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Equivalent States")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Velocity holding the total translationally: %.2f m/s",
		analysis.EquivalentVelocity(b.Total, s.Mass)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Drop height holding the total gravitationally: %.2f m",
		analysis.EquivalentHeight(b.Total, s.Mass, g)))
	pdf.Ln(6)
	if b.MomentOfInertia > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Spin rate holding the total rotationally: %.2f rad/s",
			analysis.EquivalentAngularVelocity(b.Total, b.MomentOfInertia)))
		pdf.Ln(6)
	}

	if info.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, info.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
