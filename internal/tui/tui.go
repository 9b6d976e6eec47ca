// Package tui is the interactive terminal calculator: pick a topic,
// fill in the parameters, read the results and charts.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/chart"
	"github.com/san-kum/rigidcalc/internal/curve"
	"github.com/san-kum/rigidcalc/internal/inertia"
	"github.com/san-kum/rigidcalc/internal/mechanics"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const (
	stateMenu = iota
	stateForm
	stateResult
)

type section int

const (
	secKinetic section = iota
	secPotential
	secWorkConstant
	secWorkVariable
	secAnalysis
)

var sectionNames = []string{
	"kinetic energy",
	"potential energy",
	"work (constant force)",
	"work (variable force)",
	"full analysis",
}

var sectionInfo = map[section]string{
	secKinetic:      "0.5 m v^2 and 0.5 I w^2",
	secPotential:    "m g h and 0.5 k x^2",
	secWorkConstant: "F d cos(theta)",
	secWorkVariable: "integral of F dx (trapezoidal)",
	secAnalysis:     "all energies for one rigid body",
}

// paramNames lists the editable parameters per section, in form order.
// The shape row is handled separately with left/right cycling.
var paramNames = map[section][]string{
	secKinetic:      {"mass", "velocity", "angular_velocity", "radius", "length", "inertia"},
	secPotential:    {"mass", "height", "gravity", "spring_constant", "spring_displacement"},
	secWorkConstant: {"force", "displacement", "angle_deg"},
	secWorkVariable: {"coeff_a", "coeff_b", "x_max", "samples"},
	secAnalysis:     {"mass", "velocity", "angular_velocity", "height", "gravity", "radius", "length", "inertia"},
}

func sectionHasShape(s section) bool {
	return s == secKinetic || s == secAnalysis
}

type model struct {
	state       int
	cursor      int
	section     section
	shapeIdx    int
	params      map[string]float64
	paramCursor int
	editing     bool
	editBuf     string
	result      string
	width       int
}

// newModel builds the TUI model with classroom-friendly defaults.
func newModel() *model {
	return &model{
		state: stateMenu,
		params: map[string]float64{
			"mass": 1.0, "velocity": 10.0, "angular_velocity": 5.0,
			"radius": 0.5, "length": 1.0, "inertia": 1.0,
			"height": 10.0, "gravity": mechanics.StandardGravity,
			"spring_constant": 100.0, "spring_displacement": 0.5,
			"force": 50.0, "displacement": 5.0, "angle_deg": 0.0,
			"coeff_a": 10.0, "coeff_b": 0.0, "x_max": 5.0, "samples": 100,
		},
		width: 80,
	}
}

// Run starts the interactive calculator and blocks until quit.
func Run() error {
	p := tea.NewProgram(newModel())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateForm:
		return m.formKey(msg)
	default:
		return m.resultKey(msg)
	}
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sectionNames)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.section = section(m.cursor)
		m.state = stateForm
		m.paramCursor = 0
	}
	return m, nil
}

func (m *model) formRows() int {
	rows := len(paramNames[m.section])
	if sectionHasShape(m.section) {
		rows++
	}
	return rows
}

// paramAt maps a form row to a parameter name; row 0 is the shape when
// the section has one.
func (m *model) paramAt(row int) (string, bool) {
	names := paramNames[m.section]
	if sectionHasShape(m.section) {
		if row == 0 {
			return "", false
		}
		row--
	}
	return names[row], true
}

func (m *model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			if name, ok := m.paramAt(m.paramCursor); ok {
				m.params[name] = val
			}
			m.editing, m.editBuf = false, ""
		case "escape", "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < m.formRows()-1 {
			m.paramCursor++
		}
	case "left", "h":
		if sectionHasShape(m.section) && m.paramCursor == 0 {
			m.shapeIdx = (m.shapeIdx + len(inertia.Shapes()) - 1) % len(inertia.Shapes())
		}
	case "right", "l":
		if sectionHasShape(m.section) && m.paramCursor == 0 {
			m.shapeIdx = (m.shapeIdx + 1) % len(inertia.Shapes())
		}
	case "enter":
		if _, ok := m.paramAt(m.paramCursor); ok {
			m.editing = true
			m.editBuf = ""
		}
	case "c", " ":
		m.result = m.compute()
		m.state = stateResult
	}
	return m, nil
}

func (m *model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape", "esc", "backspace":
		m.state = stateForm
	case "m":
		m.state = stateMenu
	}
	return m, nil
}

func (m *model) shape() inertia.Shape {
	return inertia.Shapes()[m.shapeIdx]
}

func (m *model) geometry() inertia.Geometry {
	switch m.shape().RequiredParameter() {
	case inertia.ParamRadius:
		return inertia.Radius(m.params["radius"])
	case inertia.ParamLength:
		return inertia.Length(m.params["length"])
	default:
		return inertia.CustomValue(m.params["inertia"])
	}
}

func (m *model) compute() string {
	switch m.section {
	case secKinetic:
		return m.computeKinetic()
	case secPotential:
		return m.computePotential()
	case secWorkConstant:
		return m.computeWorkConstant()
	case secWorkVariable:
		return m.computeWorkVariable()
	default:
		return m.computeAnalysis()
	}
}

func (m *model) computeKinetic() string {
	ekTrans := mechanics.KineticTranslational(m.params["mass"], m.params["velocity"])

	moment, err := inertia.Resolve(m.shape(), m.params["mass"], m.geometry())
	if err != nil {
		return errorView(err)
	}
	ekRot := mechanics.KineticRotational(moment, m.params["angular_velocity"])

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("moment of inertia (%s): %s kg*m^2\n\n", m.shape(), green.Render(fmt.Sprintf("%.4f", moment))))

	c, err := chart.EnergyDistribution(
		[]float64{ekTrans, ekRot, ekTrans + ekRot},
		[]string{"translational", "rotational", "total"},
	)
	if err != nil {
		return errorView(err)
	}
	sb.WriteString(c.Render())
	return sb.String()
}

func (m *model) computePotential() string {
	epGrav := mechanics.PotentialGravitational(m.params["mass"], m.params["height"], m.params["gravity"])
	epElastic := mechanics.PotentialElastic(m.params["spring_constant"], m.params["spring_displacement"])

	c, err := chart.EnergyDistribution(
		[]float64{epGrav, epElastic, epGrav + epElastic},
		[]string{"gravitational", "elastic", "total"},
	)
	if err != nil {
		return errorView(err)
	}
	return c.Render()
}

func (m *model) computeWorkConstant() string {
	d := analysis.DetailWorkConstant(m.params["force"], m.params["displacement"], m.params["angle_deg"])

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("work: %s\n\n", green.Render(fmt.Sprintf("%.2f J", d.Work))))
	sb.WriteString(dim.Render(fmt.Sprintf("  %.2f N x %.2f m x cos(%.1f) = %.2f x %.2f x %.4f",
		d.Force, d.Displacement, d.AngleDegrees, d.Force, d.Displacement, d.CosFactor)))
	sb.WriteString("\n")
	return sb.String()
}

func (m *model) computeWorkVariable() string {
	n := int(m.params["samples"])
	if n < 2 {
		n = 2
	}
	fc, err := curve.Linear(m.params["coeff_a"], m.params["coeff_b"], m.params["x_max"], n)
	if err != nil {
		return errorView(err)
	}

	c, err := chart.ForceDisplacement(fc.Forces, fc.Displacements)
	if err != nil {
		return errorView(err)
	}
	return c.Render()
}

func (m *model) computeAnalysis() string {
	s := analysis.Scenario{
		Mass:            m.params["mass"],
		Shape:           m.shape(),
		Geometry:        m.geometry(),
		Velocity:        m.params["velocity"],
		AngularVelocity: m.params["angular_velocity"],
		Height:          m.params["height"],
		Gravity:         m.params["gravity"],
	}
	b, err := analysis.Analyze(s)
	if err != nil {
		return errorView(err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("moment of inertia: %s kg*m^2\n", green.Render(fmt.Sprintf("%.4f", b.MomentOfInertia))))
	sb.WriteString(fmt.Sprintf("total energy:      %s\n\n", green.Render(fmt.Sprintf("%.2f J", b.Total))))

	c, err := chart.EnergyDistribution(b.Values(), b.Labels())
	if err != nil {
		return errorView(err)
	}
	sb.WriteString(c.Render())

	sb.WriteString("\n" + dim.Render(fmt.Sprintf(
		"equivalents: %.2f m/s translational | %.2f m drop | %.2f rad/s spin",
		analysis.EquivalentVelocity(b.Total, s.Mass),
		analysis.EquivalentHeight(b.Total, s.Mass, s.Gravity),
		analysis.EquivalentAngularVelocity(b.Total, b.MomentOfInertia),
	)))
	sb.WriteString("\n")
	return sb.String()
}

func errorView(err error) string {
	return yellow.Render("error: " + err.Error())
}

func (m *model) View() string {
	switch m.state {
	case stateMenu:
		return m.menuView()
	case stateForm:
		return m.formView()
	default:
		return m.resultView()
	}
}

func (m *model) menuView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("rigidcalc") + dim.Render(" - work and energy for rigid bodies") + "\n\n")
	for i, name := range sectionNames {
		cursor := "  "
		line := white.Render(name)
		if i == m.cursor {
			cursor = cyan.Render("> ")
			line = cyan.Render(name)
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, line, dim.Render(sectionInfo[section(i)])))
	}
	sb.WriteString("\n" + dim.Render("j/k move | enter select | q quit"))
	return sb.String()
}

func (m *model) formView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render(sectionNames[m.section]) + "\n\n")

	row := 0
	if sectionHasShape(m.section) {
		cursor := "  "
		if m.paramCursor == 0 {
			cursor = cyan.Render("> ")
		}
		sb.WriteString(fmt.Sprintf("%s%-20s %s\n", cursor, "shape", yellow.Render("< "+m.shape().String()+" >")))
		row = 1
	}

	for _, name := range paramNames[m.section] {
		cursor := "  "
		value := fmt.Sprintf("%.4g", m.params[name])
		if m.paramCursor == row {
			cursor = cyan.Render("> ")
			if m.editing {
				value = m.editBuf + "_"
			}
		}
		sb.WriteString(fmt.Sprintf("%s%-20s %s\n", cursor, name, white.Render(value)))
		row++
	}

	help := "j/k move | enter edit | c compute | esc back | q quit"
	if sectionHasShape(m.section) {
		help = "j/k move | h/l shape | enter edit | c compute | esc back | q quit"
	}
	sb.WriteString("\n" + dim.Render(help))
	return sb.String()
}

func (m *model) resultView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render(sectionNames[m.section]) + "\n\n")
	sb.WriteString(m.result)
	sb.WriteString("\n" + dim.Render("esc edit parameters | m menu | q quit"))
	return sb.String()
}
