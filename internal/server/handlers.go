package server

import (
	"encoding/json"
	"net/http"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/chart"
	"github.com/san-kum/rigidcalc/internal/curve"
	"github.com/san-kum/rigidcalc/internal/export"
	"github.com/san-kum/rigidcalc/internal/inertia"
	"github.com/san-kum/rigidcalc/internal/mechanics"
)

// ScenarioInput is the JSON form of an analysis scenario. The geometry
// field matching the shape's required parameter is used; the others are
// ignored.
type ScenarioInput struct {
	Shape              string  `json:"shape"`
	Mass               float64 `json:"mass"`
	Radius             float64 `json:"radius"`
	Length             float64 `json:"length"`
	Inertia            float64 `json:"inertia"`
	Velocity           float64 `json:"velocity"`
	AngularVelocity    float64 `json:"angular_velocity"`
	Height             float64 `json:"height"`
	Gravity            float64 `json:"gravity"`
	SpringConstant     float64 `json:"spring_constant"`
	SpringDisplacement float64 `json:"spring_displacement"`
}

func (in ScenarioInput) scenario() (analysis.Scenario, error) {
	shape, err := inertia.ParseShape(in.Shape)
	if err != nil {
		return analysis.Scenario{}, err
	}

	var geom inertia.Geometry
	switch shape.RequiredParameter() {
	case inertia.ParamRadius:
		geom = inertia.Radius(in.Radius)
	case inertia.ParamLength:
		geom = inertia.Length(in.Length)
	default:
		geom = inertia.CustomValue(in.Inertia)
	}

	return analysis.Scenario{
		Mass:               in.Mass,
		Shape:              shape,
		Geometry:           geom,
		Velocity:           in.Velocity,
		AngularVelocity:    in.AngularVelocity,
		Height:             in.Height,
		Gravity:            in.Gravity,
		SpringConstant:     in.SpringConstant,
		SpringDisplacement: in.SpringDisplacement,
	}, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleKineticTranslational(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Mass     float64 `json:"mass"`
		Velocity float64 `json:"velocity"`
	}
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, map[string]float64{
		"energy_j": mechanics.KineticTranslational(in.Mass, in.Velocity),
	})
}

func (s *Server) handleKineticRotational(w http.ResponseWriter, r *http.Request) {
	var in ScenarioInput
	if !decode(w, r, &in) {
		return
	}
	sc, err := in.scenario()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	moment, err := inertia.Resolve(sc.Shape, sc.Mass, sc.Geometry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]float64{
		"moment_of_inertia": moment,
		"energy_j":          mechanics.KineticRotational(moment, in.AngularVelocity),
	})
}

func (s *Server) handlePotentialGravitational(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Mass    float64 `json:"mass"`
		Height  float64 `json:"height"`
		Gravity float64 `json:"gravity"`
	}
	if !decode(w, r, &in) {
		return
	}
	g := in.Gravity
	if g == 0 {
		g = mechanics.StandardGravity
	}
	writeJSON(w, map[string]float64{
		"energy_j": mechanics.PotentialGravitational(in.Mass, in.Height, g),
	})
}

func (s *Server) handlePotentialElastic(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SpringConstant float64 `json:"spring_constant"`
		Displacement   float64 `json:"displacement"`
	}
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, map[string]float64{
		"energy_j": mechanics.PotentialElastic(in.SpringConstant, in.Displacement),
	})
}

func (s *Server) handleWorkConstant(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Force        float64 `json:"force"`
		Displacement float64 `json:"displacement"`
		AngleDegrees float64 `json:"angle_deg"`
	}
	if !decode(w, r, &in) {
		return
	}
	d := analysis.DetailWorkConstant(in.Force, in.Displacement, in.AngleDegrees)
	writeJSON(w, map[string]float64{
		"work_j":     d.Work,
		"cos_factor": d.CosFactor,
	})
}

type curveInput struct {
	Forces        []float64 `json:"forces"`
	Displacements []float64 `json:"displacements"`
}

func (s *Server) handleWorkVariable(w http.ResponseWriter, r *http.Request) {
	var in curveInput
	if !decode(w, r, &in) {
		return
	}
	work, err := mechanics.WorkVariableForce(in.Forces, in.Displacements)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]float64{"work_j": work})
}

func (s *Server) handlePower(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Work float64 `json:"work_j"`
		Time float64 `json:"time_s"`
	}
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, map[string]float64{"power_w": mechanics.Power(in.Work, in.Time)})
}

func (s *Server) handleInertia(w http.ResponseWriter, r *http.Request) {
	var in ScenarioInput
	if !decode(w, r, &in) {
		return
	}
	sc, err := in.scenario()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	moment, err := inertia.Resolve(sc.Shape, sc.Mass, sc.Geometry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]float64{"moment_of_inertia": moment})
}

type analyzeResult struct {
	MomentOfInertia float64            `json:"moment_of_inertia"`
	Components      []componentResult  `json:"components"`
	Total           float64            `json:"total_j"`
	Equivalents     map[string]float64 `json:"equivalents"`
}

type componentResult struct {
	Label   string  `json:"label"`
	Joules  float64 `json:"energy_j"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var in ScenarioInput
	if !decode(w, r, &in) {
		return
	}
	sc, b, ok := s.analyze(w, in)
	if !ok {
		return
	}

	out := analyzeResult{
		MomentOfInertia: b.MomentOfInertia,
		Total:           b.Total,
		Equivalents: map[string]float64{
			"velocity_ms": analysis.EquivalentVelocity(b.Total, sc.Mass),
			"height_m":    analysis.EquivalentHeight(b.Total, sc.Mass, sc.Gravity),
		},
	}
	if b.MomentOfInertia > 0 {
		out.Equivalents["angular_velocity_rads"] = analysis.EquivalentAngularVelocity(b.Total, b.MomentOfInertia)
	}
	for _, e := range b.Entries {
		out.Components = append(out.Components, componentResult{
			Label:   e.Label,
			Joules:  e.Joules,
			Percent: b.Share(e.Label) * 100,
		})
	}
	writeJSON(w, out)
}

func (s *Server) analyze(w http.ResponseWriter, in ScenarioInput) (analysis.Scenario, *analysis.Breakdown, bool) {
	sc, err := in.scenario()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return analysis.Scenario{}, nil, false
	}
	b, err := analysis.Analyze(sc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return analysis.Scenario{}, nil, false
	}
	return sc, b, true
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	type shapeInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Parameter   string `json:"required_parameter"`
	}
	var out []shapeInfo
	for _, shape := range inertia.Shapes() {
		out = append(out, shapeInfo{
			Name:        shape.String(),
			Description: shape.Description(),
			Parameter:   shape.RequiredParameter().String(),
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleEnergyChartSVG(w http.ResponseWriter, r *http.Request) {
	var in ScenarioInput
	if !decode(w, r, &in) {
		return
	}
	_, b, ok := s.analyze(w, in)
	if !ok {
		return
	}
	c, err := chart.EnergyDistribution(b.Values(), b.Labels())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(export.BarChartSVG(c, 640, 400)))
}

func (s *Server) handleForceChartSVG(w http.ResponseWriter, r *http.Request) {
	var in curveInput
	if !decode(w, r, &in) {
		return
	}
	c, err := chart.ForceDisplacement(in.Forces, in.Displacements)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(export.AreaChartSVG(c, 640, 400)))
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ScenarioInput
		Title  string `json:"title"`
		Author string `json:"author"`
		Notes  string `json:"notes"`
	}
	if !decode(w, r, &in) {
		return
	}
	sc, b, ok := s.analyze(w, in.ScenarioInput)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	info := export.ReportInfo{Title: in.Title, Author: in.Author, Notes: in.Notes}
	if err := export.WriteReportPDF(w, info, sc, b); err != nil {
		s.logger.Error("report generation failed", "error", err)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ScenarioInput
		Curve *curveInput `json:"curve"`
	}
	if !decode(w, r, &in) {
		return
	}
	_, b, ok := s.analyze(w, in.ScenarioInput)
	if !ok {
		return
	}

	var fc *curve.ForceCurve
	if in.Curve != nil {
		var err error
		fc, err = curve.FromSamples(in.Curve.Displacements, in.Curve.Forces)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"analysis.xlsx\"")
	if err := export.WriteBreakdownXLSX(w, b, fc); err != nil {
		s.logger.Error("xlsx export failed", "error", err)
	}
}
