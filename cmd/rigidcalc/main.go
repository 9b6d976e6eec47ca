package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/rigidcalc/internal/analysis"
	"github.com/san-kum/rigidcalc/internal/chart"
	"github.com/san-kum/rigidcalc/internal/config"
	"github.com/san-kum/rigidcalc/internal/curve"
	"github.com/san-kum/rigidcalc/internal/export"
	"github.com/san-kum/rigidcalc/internal/inertia"
	"github.com/san-kum/rigidcalc/internal/mechanics"
	"github.com/san-kum/rigidcalc/internal/server"
	"github.com/san-kum/rigidcalc/internal/tui"
)

var (
	mass            float64
	velocity        float64
	angularVelocity float64
	height          float64
	gravity         float64
	springK         float64
	springX         float64
	shapeName       string
	radius          float64
	length          float64
	customInertia   float64
	force           float64
	displacement    float64
	angleDeg        float64
	workVal         float64
	timeVal         float64
	// Variable-force curve sources
	curveFile string
	linearFn  string
	quadFn    string
	xMax      float64
	samples   int
	// Scenario sources
	preset     string
	configFile string
	// Export targets
	reportPath string
	xlsxPath   string
	svgPath    string
	csvPath    string
	jsonOut    bool
	// Server
	addr    string
	logFile string
	envFile string
)

// main registers the rigidcalc commands and launches the interactive
// calculator when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rigidcalc",
		Short: "work and energy calculator for rigid bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	kineticCmd := &cobra.Command{
		Use:   "kinetic",
		Short: "translational and rotational kinetic energy",
		RunE:  runKinetic,
	}
	kineticCmd.Flags().Float64Var(&mass, "mass", 1.0, "mass (kg)")
	kineticCmd.Flags().Float64Var(&velocity, "velocity", 0.0, "linear velocity (m/s)")
	kineticCmd.Flags().Float64Var(&angularVelocity, "omega", 0.0, "angular velocity (rad/s)")
	addShapeFlags(kineticCmd)

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "gravitational and elastic potential energy",
		RunE:  runPotential,
	}
	potentialCmd.Flags().Float64Var(&mass, "mass", 1.0, "mass (kg)")
	potentialCmd.Flags().Float64Var(&height, "height", 0.0, "height (m)")
	potentialCmd.Flags().Float64Var(&gravity, "gravity", mechanics.StandardGravity, "gravitational acceleration (m/s^2)")
	potentialCmd.Flags().Float64Var(&springK, "spring-k", 0.0, "spring constant (N/m)")
	potentialCmd.Flags().Float64Var(&springX, "spring-x", 0.0, "spring displacement (m)")

	workCmd := &cobra.Command{
		Use:   "work",
		Short: "work done by a constant or variable force",
		Long: `Work done by a force over a displacement.

With --force and --displacement the force is constant and work is
F*d*cos(angle). With --curve, --linear or --quadratic the force varies
with displacement and work is the trapezoidal integral of the curve.`,
		RunE: runWork,
	}
	workCmd.Flags().Float64Var(&force, "force", 0.0, "constant force magnitude (N)")
	workCmd.Flags().Float64Var(&displacement, "displacement", 0.0, "displacement (m)")
	workCmd.Flags().Float64Var(&angleDeg, "angle", 0.0, "angle between force and displacement (degrees)")
	addCurveFlags(workCmd)

	powerCmd := &cobra.Command{
		Use:   "power",
		Short: "average power from work and time",
		RunE:  runPower,
	}
	powerCmd.Flags().Float64Var(&workVal, "work", 0.0, "work done (J)")
	powerCmd.Flags().Float64Var(&timeVal, "time", 0.0, "elapsed time (s)")

	inertiaCmd := &cobra.Command{
		Use:   "inertia",
		Short: "moment of inertia for a standard shape",
		RunE:  runInertia,
	}
	inertiaCmd.Flags().Float64Var(&mass, "mass", 1.0, "mass (kg)")
	addShapeFlags(inertiaCmd)

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list supported shapes and their formulas",
		RunE:  listShapes,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "full energy breakdown for a scenario",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Float64Var(&mass, "mass", 1.0, "mass (kg)")
	analyzeCmd.Flags().Float64Var(&velocity, "velocity", 0.0, "linear velocity (m/s)")
	analyzeCmd.Flags().Float64Var(&angularVelocity, "omega", 0.0, "angular velocity (rad/s)")
	analyzeCmd.Flags().Float64Var(&height, "height", 0.0, "height (m)")
	analyzeCmd.Flags().Float64Var(&gravity, "gravity", mechanics.StandardGravity, "gravitational acceleration (m/s^2)")
	analyzeCmd.Flags().Float64Var(&springK, "spring-k", 0.0, "spring constant (N/m)")
	analyzeCmd.Flags().Float64Var(&springX, "spring-x", 0.0, "spring displacement (m)")
	addShapeFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	analyzeCmd.Flags().StringVar(&reportPath, "report", "", "write pdf report to file")
	analyzeCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write xlsx workbook to file")
	analyzeCmd.Flags().StringVar(&svgPath, "svg", "", "write energy chart svg to file")
	analyzeCmd.Flags().StringVar(&csvPath, "csv", "", "write breakdown csv to file")
	analyzeCmd.Flags().BoolVar(&jsonOut, "json", false, "print breakdown as json")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "inspect a force-displacement curve",
		RunE:  runCurve,
	}
	addCurveFlags(curveCmd)
	curveCmd.Flags().StringVar(&csvPath, "csv", "", "write curve samples to csv file")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "write area chart svg to file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the http calculation api",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080, env RIGIDCALC_ADDR)")
	serveCmd.Flags().StringVar(&logFile, "log-file", "", "also log json to this file (env RIGIDCALC_LOG_FILE)")
	serveCmd.Flags().StringVar(&envFile, "env", ".env", "env file to load")

	rootCmd.AddCommand(kineticCmd, potentialCmd, workCmd, powerCmd, inertiaCmd, shapesCmd, analyzeCmd, curveCmd, presetsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shapeName, "shape", "solid_sphere", "body shape (see 'rigidcalc shapes')")
	cmd.Flags().Float64Var(&radius, "radius", 0.0, "radius (m)")
	cmd.Flags().Float64Var(&length, "length", 0.0, "length (m)")
	cmd.Flags().Float64Var(&customInertia, "inertia", 0.0, "moment of inertia for shape=custom (kg*m^2)")
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&curveFile, "curve", "", "force curve file (csv or yaml)")
	cmd.Flags().StringVar(&linearFn, "linear", "", "linear force a,b for F(x)=a*x+b")
	cmd.Flags().StringVar(&quadFn, "quadratic", "", "quadratic force a,b,c for F(x)=a*x^2+b*x+c")
	cmd.Flags().Float64Var(&xMax, "x-max", 5.0, "maximum displacement for generated curves (m)")
	cmd.Flags().IntVar(&samples, "samples", 100, "sample count for generated curves")
}

// geometryFromFlags builds the geometry parameter the selected shape
// needs from whichever flag was supplied.
func geometryFromFlags(shape inertia.Shape) inertia.Geometry {
	switch shape.RequiredParameter() {
	case inertia.ParamRadius:
		return inertia.Radius(radius)
	case inertia.ParamLength:
		return inertia.Length(length)
	default:
		return inertia.CustomValue(customInertia)
	}
}

func runKinetic(cmd *cobra.Command, args []string) error {
	ekTrans := mechanics.KineticTranslational(mass, velocity)
	fmt.Printf("translational: %.4f J\n", ekTrans)

	if angularVelocity == 0 {
		return nil
	}

	shape, err := inertia.ParseShape(shapeName)
	if err != nil {
		return err
	}
	moment, err := inertia.Resolve(shape, mass, geometryFromFlags(shape))
	if err != nil {
		return err
	}
	ekRot := mechanics.KineticRotational(moment, angularVelocity)

	fmt.Printf("rotational:    %.4f J  (I = %.4f kg*m^2, %s)\n", ekRot, moment, shape)
	fmt.Printf("total:         %.4f J\n", ekTrans+ekRot)
	return nil
}

func runPotential(cmd *cobra.Command, args []string) error {
	epGrav := mechanics.PotentialGravitational(mass, height, gravity)
	fmt.Printf("gravitational: %.4f J\n", epGrav)

	if springK == 0 {
		return nil
	}
	epElastic := mechanics.PotentialElastic(springK, springX)
	fmt.Printf("elastic:       %.4f J\n", epElastic)
	fmt.Printf("total:         %.4f J\n", epGrav+epElastic)
	return nil
}

// curveFromFlags builds a force curve from --curve, --linear or
// --quadratic; it returns nil when none of them was given.
func curveFromFlags() (*curve.ForceCurve, error) {
	switch {
	case curveFile != "":
		return curve.Load(curveFile)
	case linearFn != "":
		coeffs, err := parseCoeffs(linearFn, 2)
		if err != nil {
			return nil, fmt.Errorf("--linear: %w", err)
		}
		return curve.Linear(coeffs[0], coeffs[1], xMax, samples)
	case quadFn != "":
		coeffs, err := parseCoeffs(quadFn, 3)
		if err != nil {
			return nil, fmt.Errorf("--quadratic: %w", err)
		}
		return curve.Quadratic(coeffs[0], coeffs[1], coeffs[2], xMax, samples)
	}
	return nil, nil
}

func parseCoeffs(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	coeffs := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q", p)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}

func runWork(cmd *cobra.Command, args []string) error {
	fc, err := curveFromFlags()
	if err != nil {
		return err
	}

	if fc == nil {
		d := analysis.DetailWorkConstant(force, displacement, angleDeg)
		fmt.Printf("work: %.4f J\n", d.Work)
		fmt.Printf("  %.2f N x %.2f m x cos(%.1f) = %.2f x %.2f x %.4f\n",
			d.Force, d.Displacement, d.AngleDegrees, d.Force, d.Displacement, d.CosFactor)
		return nil
	}

	c, err := chart.ForceDisplacement(fc.Forces, fc.Displacements)
	if err != nil {
		return err
	}
	fmt.Println(c.Render())
	return nil
}

func runPower(cmd *cobra.Command, args []string) error {
	p := mechanics.Power(workVal, timeVal)
	fmt.Printf("power: %.4f W\n", p)
	if timeVal == 0 {
		fmt.Println("  (zero elapsed time, power reported as 0)")
	}
	return nil
}

func runInertia(cmd *cobra.Command, args []string) error {
	shape, err := inertia.ParseShape(shapeName)
	if err != nil {
		return err
	}
	moment, err := inertia.Resolve(shape, mass, geometryFromFlags(shape))
	if err != nil {
		return err
	}
	fmt.Printf("%s: I = %.6f kg*m^2\n", shape, moment)
	return nil
}

func listShapes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMULA\tPARAMETER")
	for _, s := range inertia.Shapes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s, s.Description(), s.RequiredParameter())
	}
	return w.Flush()
}

// scenarioFromFlags resolves the analysis scenario from, in priority
// order: a preset, a config file, then the individual flags.
func scenarioFromFlags(cmd *cobra.Command) (analysis.Scenario, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return analysis.Scenario{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg.Scenario()
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return analysis.Scenario{}, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg.Scenario()
	}

	shape, err := inertia.ParseShape(shapeName)
	if err != nil {
		return analysis.Scenario{}, err
	}
	return analysis.Scenario{
		Mass:               mass,
		Shape:              shape,
		Geometry:           geometryFromFlags(shape),
		Velocity:           velocity,
		AngularVelocity:    angularVelocity,
		Height:             height,
		Gravity:            gravity,
		SpringConstant:     springK,
		SpringDisplacement: springX,
	}, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := scenarioFromFlags(cmd)
	if err != nil {
		return err
	}
	b, err := analysis.Analyze(s)
	if err != nil {
		return err
	}

	if jsonOut {
		return export.WriteBreakdownJSON(os.Stdout, b)
	}

	fmt.Printf("moment of inertia: %.4f kg*m^2\n", b.MomentOfInertia)
	fmt.Printf("total energy:      %.2f J\n\n", b.Total)

	c, err := chart.EnergyDistribution(b.Values(), b.Labels())
	if err != nil {
		return err
	}
	fmt.Println(c.Render())

	g := s.Gravity
	if g == 0 {
		g = mechanics.StandardGravity
	}
	fmt.Println("\nequivalent states for the total energy:")
	fmt.Printf("  translational velocity: %.2f m/s\n", analysis.EquivalentVelocity(b.Total, s.Mass))
	fmt.Printf("  drop height:            %.2f m\n", analysis.EquivalentHeight(b.Total, s.Mass, g))
	if b.MomentOfInertia > 0 {
		fmt.Printf("  angular velocity:       %.2f rad/s\n", analysis.EquivalentAngularVelocity(b.Total, b.MomentOfInertia))
	}

	if reportPath != "" {
		if err := writeFileWith(reportPath, func(f *os.File) error {
			return export.WriteReportPDF(f, export.ReportInfo{Title: "Energy Analysis"}, s, b)
		}); err != nil {
			return err
		}
		fmt.Printf("\nreport written to %s\n", reportPath)
	}
	if xlsxPath != "" {
		if err := writeFileWith(xlsxPath, func(f *os.File) error {
			return export.WriteBreakdownXLSX(f, b, nil)
		}); err != nil {
			return err
		}
		fmt.Printf("workbook written to %s\n", xlsxPath)
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.BarChartSVG(c, 640, 400)), 0644); err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", svgPath)
	}
	if csvPath != "" {
		if err := writeFileWith(csvPath, func(f *os.File) error {
			return export.WriteBreakdownCSV(f, b)
		}); err != nil {
			return err
		}
		fmt.Printf("csv written to %s\n", csvPath)
	}
	return nil
}

func writeFileWith(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runCurve(cmd *cobra.Command, args []string) error {
	fc, err := curveFromFlags()
	if err != nil {
		return err
	}
	if fc == nil {
		return fmt.Errorf("no curve given: use --curve, --linear or --quadratic")
	}

	work, err := fc.Work()
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d\n", fc.Len())
	fmt.Printf("work:    %.4f J\n", work)
	if !fc.Monotonic() {
		fmt.Println("warning: displacements are not strictly increasing")
	}
	fmt.Println()

	graph := asciigraph.Plot(fc.Forces,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("force (N) vs sample"),
	)
	fmt.Println(graph)

	if csvPath != "" {
		if err := writeFileWith(csvPath, func(f *os.File) error {
			return export.WriteCurveCSV(f, fc)
		}); err != nil {
			return err
		}
		fmt.Printf("\ncsv written to %s\n", csvPath)
	}
	if svgPath != "" {
		c, err := chart.ForceDisplacement(fc.Forces, fc.Displacements)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgPath, []byte(export.AreaChartSVG(c, 640, 400)), 0644); err != nil {
			return err
		}
		fmt.Printf("chart written to %s\n", svgPath)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine, env vars may come from the environment.
	_ = godotenv.Load(envFile)

	if addr == "" {
		addr = os.Getenv("RIGIDCALC_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}
	if logFile == "" {
		logFile = os.Getenv("RIGIDCALC_LOG_FILE")
	}

	logger, err := server.NewLogger(logFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(addr, logger).Run(ctx)
}
