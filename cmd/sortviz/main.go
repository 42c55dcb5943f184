package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	logFile    string
	// Input selection
	preset     string
	randomSize int
	seed       int64
	// Command options
	step       int
	outFile    string
	svgFile    string
	noSave     bool
	numTrials  int
	maxSize    int
	workers    int
	algorithms []string
)

// main registers the sortviz commands and runs the interactive TUI when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-through sorting algorithm animations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, nil, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "log file (interactive mode logs nowhere by default)")

	inputFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&preset, "preset", "", "input preset")
		cmd.Flags().IntVar(&randomSize, "random", 0, "use a random input of this size")
		cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	}

	playCmd := &cobra.Command{
		Use:   "play [algorithm] [values...]",
		Short: "animate one algorithm in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args, true)
		},
	}
	inputFlags(playCmd)

	runCmd := &cobra.Command{
		Use:   "run [algorithm] [values...]",
		Short: "run an animation headlessly and store the result",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runHeadless,
	}
	inputFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm] [values...]",
		Short: "list the generated queue and its steps",
		Args:  cobra.MinimumNArgs(1),
		RunE:  traceRun,
	}
	inputFlags(traceCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [values...]",
		Short: "compare all algorithms on the same input",
		RunE:  compareAlgorithms,
	}
	inputFlags(compareCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [run_id|algorithm] [values...]",
		Short: "plot queue entries per step",
		Args:  cobra.MinimumNArgs(1),
		RunE:  plotRun,
	}
	inputFlags(plotCmd)
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the chart as svg")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm] [values...]",
		Short: "render one step of an animation as svg",
		Args:  cobra.MinimumNArgs(1),
		RunE:  exportSVG,
	}
	inputFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&step, "step", -1, "step to render, 0-based (default: last)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: stdout)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range algo.Names() {
				a, _ := algo.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Title, strings.Join(a.Pointers, ","))
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				if in, ok := config.GetPreset(name); ok {
					fmt.Printf("  %-12s %v\n", name, in)
				} else {
					fmt.Printf("  %-12s (--random N --seed S)\n", name)
				}
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "run randomized trials across algorithms",
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVar(&numTrials, "trials", 50, "number of random inputs")
	trialsCmd.Flags().IntVar(&maxSize, "max-size", 12, "largest input size")
	trialsCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel workers")
	trialsCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: time based)")
	trialsCmd.Flags().StringSliceVar(&algorithms, "algorithms", nil, "algorithms to test (default: all)")

	rootCmd.AddCommand(playCmd, runCmd, traceCmd, compareCmd, plotCmd, exportSVGCmd, exportCmd,
		listCmd, algorithmsCmd, presetsCmd, themesCmd, scenarioCmd, trialsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newLogger writes text logs to stderr, or to --log when set. Interactive
// mode passes quiet so nothing is written over the alt screen.
func newLogger(quiet bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

// loadConfig reads --config if given, otherwise the defaults.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveInput picks the input from explicit values, then --random, then
// --preset, then the config file.
func resolveInput(cmd *cobra.Command, cfg *config.Config, values []string) ([]int, error) {
	if len(values) > 0 {
		return parseValues(values)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if randomSize > 0 {
		return config.RandomInput(randomSize, cfg.Seed), nil
	}
	if preset != "" {
		cfg.Input = nil
		cfg.Preset = preset
	}
	return cfg.GetInput()
}

// parseValues accepts separate arguments or comma separated lists.
func parseValues(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func headlessOptions(cfg *config.Config, log *slog.Logger) automation.Options {
	return automation.Options{
		Geometry:   cfg.Geometry(),
		Timing:     cfg.StageTiming(),
		TrackDelay: cfg.TrackDelay(),
		Logger:     log,
	}
}

func runTUI(cmd *cobra.Command, args []string, play bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{Config: cfg, Logger: log, Play: play}
	if play {
		cfg.Algorithm = args[0]
		if opts.Input, err = resolveInput(cmd, cfg, args[1:]); err != nil {
			return err
		}
	}
	return tui.RunInteractive(opts)
}

// prepare loads config, logger and input for a headless command whose first
// argument is the algorithm.
func prepare(cmd *cobra.Command, values []string) (*config.Config, *slog.Logger, []int, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	input, err := resolveInput(cmd, cfg, values)
	if err != nil {
		closeLog()
		return nil, nil, nil, nil, err
	}
	return cfg, log, input, closeLog, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, log, input, closeLog, err := prepare(cmd, args[1:])
	if err != nil {
		return err
	}
	defer closeLog()

	opts := headlessOptions(cfg, log)
	opts.Verify = true
	res, err := automation.Execute(cmd.Context(), args[0], input, opts)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", res.Algorithm)
	fmt.Printf("input:     %v\n", res.Input)
	fmt.Printf("sorted:    %v\n", res.Sorted)
	fmt.Printf("entries:   %d\n", res.Entries)
	fmt.Printf("steps:     %d\n", res.Steps)
	fmt.Println("\nmetrics:")
	printStats(res.Stats)

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res, cfg.Seed)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func printStats(stats map[string]float64) {
	for _, m := range metrics.Standard() {
		if v, ok := stats[m.Name()]; ok {
			fmt.Printf("  %s: %g\n", m.Name(), v)
		}
	}
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, log, input, closeLog, err := prepare(cmd, args[1:])
	if err != nil {
		return err
	}
	defer closeLog()

	res, err := automation.Execute(cmd.Context(), args[0], input, headlessOptions(cfg, log))
	if err != nil {
		return err
	}

	fmt.Printf("%s %v -> %v\n\n", res.Algorithm, res.Input, res.Sorted)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tSTEP\tPHASE\tOPERATION")
	stepNo := 0
	for i, e := range res.Queue {
		mark := ""
		if e.Op.Kind == anim.KindTrack && e.Phase == anim.PhaseMain {
			stepNo++
			mark = strconv.Itoa(stepNo)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, mark, e.Phase, e.Op)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d entries, %d steps\n", res.Entries, res.Steps)
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, log, input, closeLog, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer closeLog()

	fmt.Printf("input: %v\n\n", input)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tENTRIES\tSTEPS\tSWAPS\tSHIFTS\tPOINTER\tMOVEMENT")

	for _, name := range algo.Names() {
		res, err := automation.Execute(cmd.Context(), name, input, headlessOptions(cfg, log))
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%g\t%g\t%g\n",
			name,
			res.Entries,
			res.Steps,
			res.Stats["swaps"],
			res.Stats["shifts"],
			res.Stats["pointer_moves"],
			res.Stats["movement"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	var (
		title  string
		series []float64
	)
	if _, err := algo.Lookup(args[0]); err == nil {
		cfg, log, input, closeLog, err := prepare(cmd, args[1:])
		if err != nil {
			return err
		}
		defer closeLog()
		res, err := automation.Execute(cmd.Context(), args[0], input, headlessOptions(cfg, log))
		if err != nil {
			return err
		}
		title = fmt.Sprintf("%s %v", res.Algorithm, res.Input)
		series = res.PerStep
	} else {
		st := storage.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return fmt.Errorf("%q is neither an algorithm nor a stored run: %w", args[0], err)
		}
		if series, err = st.LoadSteps(args[0]); err != nil {
			return err
		}
		title = fmt.Sprintf("%s %v (run %s)", meta.Algorithm, meta.Input, meta.ID)
	}

	if len(series) == 0 {
		return fmt.Errorf("no steps to plot")
	}

	fmt.Println(title)
	fmt.Printf("steps: %d\n\n", len(series))
	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("queue entries per step"),
	)
	fmt.Println(graph)

	if svgFile != "" {
		svg := export.SeriesToSVG(series, 800, 240, "#00ff88")
		if svg == "" {
			return fmt.Errorf("need at least two steps for an svg chart")
		}
		return os.WriteFile(svgFile, []byte(svg), 0644)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, log, input, closeLog, err := prepare(cmd, args[1:])
	if err != nil {
		return err
	}
	defer closeLog()

	st := cfg.NewStage()
	a := anim.New(st, anim.NopHost{}, anim.Options{TrackDelay: cfg.TrackDelay(), Logger: log})
	if err := a.Sort(args[0], input); err != nil {
		return err
	}
	st.Layout()
	st.Drain(automation.FrameStep)

	steps := a.Steps()
	if len(steps) == 0 {
		return fmt.Errorf("%s recorded no steps", a.Algorithm())
	}
	target := step
	if target < 0 {
		target = len(steps) - 1
	}
	if target >= len(steps) {
		return fmt.Errorf("step %d out of range: %d steps", target, len(steps))
	}
	for a.CurrentStep() > target {
		if err := a.PreviousStep(); err != nil {
			return err
		}
	}

	svg := export.SceneToSVG(st, viz.GetTheme(cfg.Theme), float64(cfg.Layout.CellWidth), 16)
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("step %d of %d written to %s\n", target, len(steps), outFile)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tN\tENTRIES\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Input),
			run.Entries,
			run.Steps,
		)
	}

	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	opts := headlessOptions(cfg, log)
	opts.Verify = true

	results, err := automation.RunScenario(cmd.Context(), scenario, opts)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tALGORITHM\tN\tSTEPS\tSWAPS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%g\n", i+1, r.Algorithm, len(r.Input), r.Steps, r.Stats["swaps"])
	}
	w.Flush()
	if err != nil {
		return err
	}
	fmt.Printf("\nscenario %q: %d runs passed\n", scenario.Name, len(results))
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := headlessOptions(cfg, log)
	opts.Verify = true
	results, err := automation.RunTrials(cmd.Context(), &automation.TrialsConfig{
		Algorithms: algorithms,
		NumTrials:  numTrials,
		MaxSize:    maxSize,
		Seed:       seed,
		Workers:    workers,
	}, opts)
	if err != nil {
		return err
	}

	passed, failed := automation.TrialStats(results)
	fmt.Printf("trials: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		for _, r := range results {
			if !r.Passed() {
				fmt.Printf("  #%d %s %v: %v\n", r.TrialID, r.Algorithm, r.Input, r.Err)
			}
		}
		return fmt.Errorf("%d trials failed", failed)
	}
	return nil
}
