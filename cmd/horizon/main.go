package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/horizon/internal/config"
	"github.com/san-kum/horizon/internal/geometry"
	"github.com/san-kum/horizon/internal/horizon"
	"github.com/san-kum/horizon/internal/ode"
	"github.com/san-kum/horizon/internal/shoot"
	"github.com/san-kum/horizon/internal/steppers"
	"github.com/san-kum/horizon/internal/storage"
	"github.com/san-kum/horizon/internal/viz"
)

var (
	dataDir     string
	sources     []float64
	gridPoints  int
	scheme      string
	seedLow     float64
	seedHigh    float64
	tolerance   float64
	maxIter     int
	configFile  string
	preset      string
	trialH0     float64
	scanLo      float64
	scanHi      float64
	scanSamples int
	scanWorkers int
	chartHeight int
	outPath     string
	withSlope   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "horizon",
		Short: "apparent horizon finder for Brill-Lindquist punctures",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".horizon", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "shoot for the horizon radius",
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory",
		Short: "integrate a trial curve at a fixed h0",
		RunE:  runTrajectory,
	}
	addSolveFlags(trajectoryCmd)
	trajectoryCmd.Flags().Float64Var(&trialH0, "h0", 0.5, "trial initial radius")
	trajectoryCmd.Flags().IntVar(&chartHeight, "height", 12, "chart height")
	trajectoryCmd.Flags().BoolVar(&withSlope, "slope", false, "also plot dh/dtheta")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sample the residual over a range of trial radii",
		RunE:  runScan,
	}
	addSolveFlags(scanCmd)
	scanCmd.Flags().Float64Var(&scanLo, "lo", 0.3, "lower trial radius")
	scanCmd.Flags().Float64Var(&scanHi, "hi", 1.2, "upper trial radius")
	scanCmd.Flags().IntVar(&scanSamples, "samples", 16, "number of samples")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 4, "parallel workers")
	scanCmd.Flags().IntVar(&chartHeight, "height", 12, "chart height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "solve with live iteration view",
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&chartHeight, "height", 12, "chart height")
	plotCmd.Flags().BoolVar(&withSlope, "slope", false, "also plot dh/dtheta")

	exportCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "destination path (default run_id.csv)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset puncture layouts",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-14s sources %v, seeds (%g, %g)\n", name, cfg.Sources, cfg.SeedLow, cfg.SeedHigh)
			}
		},
	}

	rootCmd.AddCommand(solveCmd, trajectoryCmd, scanCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&sources, "sources", []float64{0}, "axial puncture positions (non-negative)")
	cmd.Flags().IntVar(&gridPoints, "n", config.DefaultGridPoints, "angular grid points")
	cmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "step scheme (euler|rk2)")
	cmd.Flags().Float64Var(&seedLow, "seed-low", config.DefaultSeedLow, "first secant seed")
	cmd.Flags().Float64Var(&seedHigh, "seed-high", config.DefaultSeedHigh, "second secant seed")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "residual tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration budget")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset layout")
}

// resolveConfig layers preset < config file < changed CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
		cfg.Sources = append([]float64(nil), p.Sources...)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("sources") {
		cfg.Sources = sources
	}
	if cmd.Flags().Changed("n") {
		cfg.GridPoints = gridPoints
	}
	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = scheme
	}
	if cmd.Flags().Changed("seed-low") {
		cfg.SeedLow = seedLow
	}
	if cmd.Flags().Changed("seed-high") {
		cfg.SeedHigh = seedHigh
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.MaxIterations = maxIter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSolver(cfg *config.Config) (*horizon.Integrator, *ode.Grid, shoot.ResidualFunc, error) {
	grid, err := ode.NewGrid(cfg.GridPoints)
	if err != nil {
		return nil, nil, nil, err
	}
	step, err := steppers.New(cfg.Scheme)
	if err != nil {
		return nil, nil, nil, err
	}
	it := horizon.NewIntegrator(grid, step)
	src := geometry.SingularitySet(cfg.Sources)
	fn := func(h0 float64) (float64, error) {
		return it.Residual(h0, src)
	}
	return it, grid, fn, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	it, grid, fn, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := shoot.Secant(fn, cfg.SeedLow, cfg.SeedHigh, shoot.Options{
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		// An unconverged horizon is reported, never plotted or stored.
		var nc *shoot.NonConvergenceError
		if errors.As(err, &nc) {
			fmt.Printf("last iterate: h0 = %.12f, residual = %.3e\n", nc.LastRoot, nc.Residual)
		}
		return err
	}
	elapsed := time.Since(start)

	fmt.Print(viz.SolveSummary(cfg.Sources, cfg.Scheme, cfg.GridPoints, res))
	fmt.Printf("solved in %v\n", elapsed)

	traj, err := it.Integrate(res.Root, geometry.SingularitySet(cfg.Sources))
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Sources:    cfg.Sources,
		Scheme:     cfg.Scheme,
		GridPoints: cfg.GridPoints,
		H0:         res.Root,
		Residual:   res.Residual,
		Iterations: res.Iterations,
	}, grid, traj)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	it, _, _, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	traj, err := it.Integrate(trialH0, geometry.SingularitySet(cfg.Sources))
	if err != nil {
		return err
	}

	fmt.Println(viz.TrajectoryChart(traj.Radii(), chartHeight))
	if withSlope {
		fmt.Println(viz.SlopeChart(traj.Slopes(), chartHeight))
	}
	fmt.Printf("boundary residual dh/dtheta(pi/2) = %+.6e\n", traj.Final()[1])
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	_, _, fn, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	samples, err := shoot.Scan(context.Background(), fn, scanLo, scanHi, scanSamples, scanWorkers)
	if err != nil {
		return err
	}

	fmt.Println(viz.ResidualChart(samples, chartHeight))

	lo, hi, err := shoot.FindBracket(samples)
	if err != nil {
		fmt.Println("no sign change in range; widen --lo/--hi")
		return nil
	}
	fmt.Printf("suggested seeds: --seed-low %g --seed-high %g\n", lo, hi)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	_, _, fn, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	res, err := viz.RunLive(cfg.Scheme, cfg.Sources, func(onIter func(n int, h0, residual float64)) (shoot.Result, error) {
		return shoot.Secant(fn, cfg.SeedLow, cfg.SeedHigh, shoot.Options{
			Tolerance:     cfg.Tolerance,
			MaxIterations: cfg.MaxIterations,
			OnIteration:   onIter,
		})
	})
	if err != nil {
		return err
	}
	fmt.Print(viz.SolveSummary(cfg.Sources, cfg.Scheme, cfg.GridPoints, res))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCES\tSCHEME\tN\tH0\tRESIDUAL\tITER\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%v\t%s\t%d\t%.10f\t%.2e\t%d\t%s\n",
			r.ID, r.Sources, r.Scheme, r.GridPoints, r.H0, r.Residual, r.Iterations,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, radii, slopes, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s: sources %v, scheme %s, h0* = %.12f\n", meta.ID, meta.Sources, meta.Scheme, meta.H0)
	fmt.Println(viz.TrajectoryChart(radii, chartHeight))
	if withSlope {
		fmt.Println(viz.SlopeChart(slopes, chartHeight))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	dest := outPath
	if dest == "" {
		dest = args[0] + ".csv"
	}
	st := storage.New(dataDir)
	if err := st.ExportCSV(args[0], dest); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", dest)
	return nil
}
