package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/driftdev/logodrift/internal/config"
	"github.com/driftdev/logodrift/internal/gui"
	"github.com/driftdev/logodrift/internal/metrics"
	"github.com/driftdev/logodrift/internal/motion"
	"github.com/driftdev/logodrift/internal/sim"
	"github.com/driftdev/logodrift/internal/sprite"
	"github.com/driftdev/logodrift/internal/tui"
)

var (
	logoName   string
	speed      float64
	heading    float64
	frameRate  int
	theme      string
	trail      int
	overlay    bool
	seed       int64
	configFile string
	preset     string
	// Headless run parameters
	dt       float64
	duration float64
	arenaW   float64
	arenaH   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logodrift",
		Short: "bouncing-logo screensaver for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logoName, "logo", config.DefaultLogo, "builtin logo name or path to a text file")
	rootCmd.PersistentFlags().Float64Var(&speed, "speed", config.DefaultSpeed, "speed in cells per second")
	rootCmd.PersistentFlags().Float64Var(&heading, "heading", config.DefaultHeading, "launch angle in degrees (negative = random)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().IntVar(&trail, "trail", config.DefaultTrail, "trail length (0 disables)")
	rootCmd.PersistentFlags().BoolVar(&overlay, "overlay", false, "start with the debug overlay visible")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print bounce statistics",
		RunE:  runHeadless,
	}
	addArenaFlags(runCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and plot the position traces",
		RunE:  tracePlot,
	}
	addArenaFlags(traceCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run headless and export the trajectory to CSV",
		RunE:  exportCSV,
	}
	addArenaFlags(exportCSVCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the integrator",
		RunE:  benchIntegrator,
	}
	addArenaFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s logo=%s speed=%.0f theme=%s\n", name, cfg.Logo, cfg.Speed, cfg.Theme)
			}
			return nil
		},
	}

	logosCmd := &cobra.Command{
		Use:   "logos",
		Short: "list builtin logos",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sprite.Names() {
				s, _ := sprite.Builtin(name)
				w, h := s.Size()
				fmt.Printf("%-8s %dx%d\n", name, w, h)
			}
			return nil
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the windowed renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, exportCSVCmd, benchCmd, presetsCmd, logosCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addArenaFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "timestep in seconds")
	cmd.Flags().Float64Var(&duration, "time", 30.0, "duration in seconds")
	cmd.Flags().Float64Var(&arenaW, "width", 160, "arena width in cells")
	cmd.Flags().Float64Var(&arenaH, "height", 48, "arena height in cells")
}

// resolveConfig merges defaults, preset, config file, then CLI flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("logo") {
		cfg.Logo = logoName
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("heading") {
		cfg.Heading = heading
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("trail") {
		cfg.Trail = trail
	}
	if flags.Changed("overlay") {
		cfg.Overlay = overlay
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// headlessSetup builds the runner and launch state for the CLI commands
// that run without a renderer.
func headlessSetup(cmd *cobra.Command) (*sim.Runner, motion.State, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, motion.State{}, err
	}

	logo, err := sprite.Resolve(cfg.Logo)
	if err != nil {
		return nil, motion.State{}, err
	}
	w, h := logo.Size()

	bounds := motion.BoundsFor(arenaW, arenaH, float64(w), float64(h))
	if !bounds.Valid() {
		return nil, motion.State{}, fmt.Errorf("logo %q (%dx%d) does not fit a %gx%g arena", cfg.Logo, w, h, arenaW, arenaH)
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	angle := cfg.Heading * math.Pi / 180
	if cfg.Heading < 0 {
		angle = rng.Float64() * 2 * math.Pi
	}

	state := motion.State{
		X: (bounds.Left + bounds.Right) / 2,
		Y: (bounds.Top + bounds.Bottom) / 2,
	}
	state.VX, state.VY = motion.FromPolar(angle, cfg.Speed)

	return sim.New(bounds), state, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	runner, state, err := headlessSetup(cmd)
	if err != nil {
		return err
	}

	runner.AddMetric(metrics.NewBounces())
	runner.AddMetric(metrics.NewCorners())
	runner.AddMetric(metrics.NewFlightTime())
	runner.AddMetric(metrics.NewDistance())

	start := time.Now()
	result, err := runner.Run(context.Background(), state, sim.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, result.Metrics[name])
	}

	return nil
}

func tracePlot(cmd *cobra.Command, args []string) error {
	runner, state, err := headlessSetup(cmd)
	if err != nil {
		return err
	}

	result, err := runner.Run(context.Background(), state, sim.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}

	xData := make([]float64, len(result.States))
	yData := make([]float64, len(result.States))
	for i, s := range result.States {
		xData[i] = s.X
		yData[i] = s.Y
	}

	fmt.Printf("samples: %d\n\n", len(result.States))
	fmt.Println(asciigraph.Plot(xData,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x vs time"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(yData,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y vs time"),
	))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runner, state, err := headlessSetup(cmd)
	if err != nil {
		return err
	}

	result, err := runner.Run(context.Background(), state, sim.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "vx", "vy", "events"}); err != nil {
		return err
	}

	for i, s := range result.States {
		events := ""
		if i > 0 && !result.Events[i-1].Empty() {
			events = result.Events[i-1].String()
		}
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 4, 64),
			strconv.FormatFloat(s.Y, 'f', 4, 64),
			strconv.FormatFloat(s.VX, 'f', 4, 64),
			strconv.FormatFloat(s.VY, 'f', 4, 64),
			events,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func benchIntegrator(cmd *cobra.Command, args []string) error {
	runner, state, err := headlessSetup(cmd)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 10.0, 60.0}
	dts := []float64{1.0 / 240, 1.0 / 60, 1.0 / 30}

	fmt.Println("benchmarking integrator")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			start := time.Now()
			result, err := runner.Run(context.Background(), state, sim.Config{Dt: step, Duration: dur})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			stepsPerSec := float64(result.Steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, step, result.Steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
