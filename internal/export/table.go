package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/curve"
)

// WriteBreakdownCSV writes label,joules rows followed by the total.
func WriteBreakdownCSV(w io.Writer, b *analysis.Breakdown) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"component", "energy_j"}); err != nil {
		return err
	}
	for _, e := range b.Entries {
		if err := cw.Write([]string{e.Label, strconv.FormatFloat(e.Joules, 'f', 6, 64)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"total", strconv.FormatFloat(b.Total, 'f', 6, 64)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurveCSV writes displacement,force rows.
func WriteCurveCSV(w io.Writer, c *curve.ForceCurve) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"displacement_m", "force_n"}); err != nil {
		return err
	}
	for i := range c.Displacements {
		row := []string{
			strconv.FormatFloat(c.Displacements[i], 'f', 6, 64),
			strconv.FormatFloat(c.Forces[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type breakdownJSON struct {
	MomentOfInertia float64            `json:"moment_of_inertia"`
	Components      map[string]float64 `json:"components"`
	Total           float64            `json:"total"`
}

// WriteBreakdownJSON writes the breakdown as indented JSON.
func WriteBreakdownJSON(w io.Writer, b *analysis.Breakdown) error {
	out := breakdownJSON{
		MomentOfInertia: b.MomentOfInertia,
		Components:      make(map[string]float64, len(b.Entries)),
		Total:           b.Total,
	}
	for _, e := range b.Entries {
		out.Components[e.Label] = e.Joules
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
