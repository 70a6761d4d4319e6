package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/trace"
	"github.com/san-kum/ballpit/internal/viz"
	"github.com/san-kum/ballpit/internal/world"
)

var (
	dt          float64
	duration    float64
	seed        int64
	numBodies   int
	environment string
	material    string
	configFile  string
	width       float64
	height      float64
	csvOut      string
	jsonOut     string
	svgOut      string
	benchTime   float64
)

// main registers the commands and runs the live view when none is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ballpit",
		Short: "bouncing ball physics sandbox",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write trajectory CSV to this path")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write trajectory JSON to this path (- for stdout)")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG of the final frame to this path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	addSceneFlags(rootCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run headless and plot energy and mean height",
		Args:  cobra.NoArgs,
		RunE:  plotRun,
	}
	addSceneFlags(plotCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure step throughput against body count",
		Args:  cobra.NoArgs,
		RunE:  benchBodies,
	}
	benchCmd.Flags().Float64Var(&benchTime, "time", 2.0, "simulated seconds per case")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list environments and materials",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of balls")
	cmd.Flags().StringVar(&environment, "env", config.DefaultEnvironment, "environment preset")
	cmd.Flags().StringVar(&material, "material", config.DefaultMaterial, "material preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "container width (render units)")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "container height (render units)")
}

// buildConfig layers defaults, then the config file, then explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	// without a config file every flag applies; with one, only flags the user set
	use := func(name string) bool { return configFile == "" || flags.Changed(name) }

	// a config file has already applied the presets it names
	if use("env") {
		env, err := config.LookupEnvironment(environment)
		if err != nil {
			return nil, err
		}
		cfg.Environment = environment
		cfg.ApplyEnvironment(env)
	}
	if use("material") {
		mat, err := config.LookupMaterial(material)
		if err != nil {
			return nil, err
		}
		cfg.Material = material
		cfg.ApplyMaterial(mat)
	}
	if use("dt") {
		cfg.Dt = dt
	}
	if use("time") {
		cfg.Duration = duration
	}
	if use("bodies") {
		cfg.Bodies = numBodies
	}
	if use("width") {
		cfg.Width = width
	}
	if use("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	clamped, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if clamped {
		log.Printf("[CONFIG] spawn mass raised to floor %.2f kg", config.MinMass)
	}
	return cfg, nil
}

func simulate(cfg *config.Config, keepFrames bool) (*world.Result, error) {
	w := world.New(cfg.Seed)
	w.SpawnRow(cfg.Bodies, cfg.Bounds(), cfg.Spawn.Y, cfg.Spawn.Radius, cfg.Spawn.Mass)

	sim := world.NewSimulator()
	for _, m := range metrics.Defaults() {
		sim.AddMetric(m)
	}

	runCfg := world.RunConfig{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Params:        cfg.PhysicsParams(),
		ValidateState: true,
		KeepFrames:    keepFrames,
	}
	return sim.Run(context.Background(), w, runCfg)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	keep := csvOut != "" || jsonOut != "" || svgOut != ""
	toStdout := jsonOut == "-"
	if !toStdout {
		fmt.Printf("running %d %s balls on %s for %.1fs...\n", cfg.Bodies, cfg.Material, cfg.Environment, cfg.Duration)
	}
	start := time.Now()

	result, err := simulate(cfg, keep)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeOutputs(cfg, result); err != nil {
		return err
	}
	if toStdout {
		return nil
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func writeOutputs(cfg *config.Config, result *world.Result) error {
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := trace.WriteCSV(f, result); err != nil {
			return err
		}
	}

	if jsonOut != "" {
		meta := trace.Meta{
			Environment: cfg.Environment,
			Material:    cfg.Material,
			Dt:          cfg.Dt,
			Duration:    cfg.Duration,
			Seed:        cfg.Seed,
			Width:       cfg.Width,
			Height:      cfg.Height,
		}
		out := os.Stdout
		if jsonOut != "-" {
			f, err := os.Create(jsonOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if err := trace.WriteJSON(out, meta, result); err != nil {
			return err
		}
	}

	if svgOut != "" {
		svg := trace.FrameToSVG(result.Last(), cfg.Bounds(), "#ff8800")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	result, err := simulate(cfg, true)
	if err != nil {
		return err
	}
	if len(result.Frames) < 2 {
		return fmt.Errorf("no data to plot")
	}

	energy := make([]float64, len(result.Frames))
	meanHeight := make([]float64, len(result.Frames))
	for i, frame := range result.Frames {
		for _, b := range frame {
			energy[i] += 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
			// height above the floor in meters
			meanHeight[i] += (cfg.Height - b.Y - b.Radius) / physics.UnitScale
		}
		if len(frame) > 0 {
			meanHeight[i] /= float64(len(frame))
		}
	}

	fmt.Printf("%d %s balls on %s, %d steps\n\n", cfg.Bodies, cfg.Material, cfg.Environment, result.StepsTaken)
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{energy, "kinetic energy (J)"},
		{meanHeight, "mean height above floor (m)"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func benchBodies(cmd *cobra.Command, args []string) error {
	counts := []int{10, 50, 100, 200}
	bounds := physics.Bounds{Width: 4000, Height: 3000}

	fmt.Printf("benchmarking body/body resolution (O(n²) pairs)\n\n")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tPAIRS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range counts {
		wd := world.New(42)
		for i := 0; i < n; i++ {
			// staggered rows so bodies meet early
			x := 50 + float64(i%35)*110
			y := 50 + float64(i/35)*60
			wd.Spawn(physics.Vec2{X: x, Y: y}, 0.2, 1)
		}

		cfg := world.RunConfig{
			Dt:       1.0 / 60,
			Duration: benchTime,
			Params:   physics.DefaultParams(bounds),
		}

		start := time.Now()
		result, err := world.NewSimulator().Run(context.Background(), wd, cfg)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
			n, n*(n-1)/2, result.StepsTaken, elapsed, float64(result.StepsTaken)/elapsed.Seconds())
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ENVIRONMENT\tGRAVITY\tDENSITY\tDRAG")
	for _, name := range config.ListEnvironments() {
		env := config.Environments[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.3f\t%.2f\n", name, env.Gravity, env.FluidDensity, env.Drag)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "MATERIAL\tRADIUS\tMASS\tFRICTION")
	for _, name := range config.ListMaterials() {
		m := config.Materials[name]
		fmt.Fprintf(w, "%s\t%.2fm\t%.2fkg\t%.2f\n", name, m.Radius, m.Mass, m.Friction)
	}

	return w.Flush()
}
