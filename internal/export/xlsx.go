package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/curve"
)

// WriteBreakdownXLSX writes a workbook with the energy breakdown and,
// when a curve is given, a second sheet with its samples.
func WriteBreakdownXLSX(w io.Writer, b *analysis.Breakdown, c *curve.ForceCurve) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Energy"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "component")
	f.SetCellValue(sheet, "B1", "energy (J)")

	row := 2
	for _, e := range b.Entries {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, e.Label)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cell, e.Joules)
		row++
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, "total")
	cell, _ = excelize.CoordinatesToCellName(2, row)
	f.SetCellValue(sheet, cell, b.Total)

	cell, _ = excelize.CoordinatesToCellName(1, row+2)
	f.SetCellValue(sheet, cell, "moment of inertia (kg*m^2)")
	cell, _ = excelize.CoordinatesToCellName(2, row+2)
	f.SetCellValue(sheet, cell, b.MomentOfInertia)

	if c != nil {
		curveSheet := "ForceCurve"
		if _, err := f.NewSheet(curveSheet); err != nil {
			return err
		}
		f.SetCellValue(curveSheet, "A1", "displacement (m)")
		f.SetCellValue(curveSheet, "B1", "force (N)")
		for i := range c.Displacements {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			f.SetCellValue(curveSheet, cell, c.Displacements[i])
			cell, _ = excelize.CoordinatesToCellName(2, i+2)
			f.SetCellValue(curveSheet, cell, c.Forces[i])
		}
	}

	return f.Write(w)
}
