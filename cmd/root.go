package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sloth-sim/sloth/bmi"
	"github.com/sloth-sim/sloth/bmi/sloth"
	"github.com/sloth-sim/sloth/bmi/trace"
)

var (
	// CLI flags for run
	scenarioPath string  // Scenario YAML file
	steps        int     // Update() calls, overrides scenario
	until        float64 // UpdateUntil target, overrides scenario
	plotVar      string  // Variable to plot after the run
	logLevel     string  // Log verbosity level
	traceLevel   string  // Call trace verbosity
	componentID  string  // Registered component to run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sloth",
	Short: "Drive a SLoTH BMI component from scripted scenarios",
}

// runOptions are the run flags after validation.
type runOptions struct {
	Component  string
	ConfigFile string // passed to Initialize
	Steps      *int
	Until      *float64
	Plot       string
	TraceLevel trace.TraceLevel
}

// runCmd executes a scenario against a fresh model
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a scenario to a SLoTH model and report its variables",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Use --scenario.")
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s (valid: none, state, writes)", traceLevel)
		}

		opts := runOptions{
			Component:  componentID,
			ConfigFile: scenarioPath,
			Plot:       plotVar,
			TraceLevel: trace.TraceLevel(traceLevel),
		}
		if cmd.Flags().Changed("steps") {
			opts.Steps = &steps
		}
		if cmd.Flags().Changed("until") {
			opts.Until = &until
		}

		logrus.Infof("Loading scenario %s", scenarioPath)
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := runScenario(os.Stdout, sc, opts); err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
	},
}

// parseCmd decodes variable names without touching a model
var parseCmd = &cobra.Command{
	Use:   "parse <name>...",
	Short: "Decode variable names and their metadata suffixes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseNames(cmd.OutOrStdout(), args)
	},
}

// tracer is implemented by components that can record a call trace.
type tracer interface {
	SetTrace(st *trace.SessionTrace)
}

// runScenario builds the component, applies sc with flag overrides and
// writes the report to w.
func runScenario(w io.Writer, sc *Scenario, opts runOptions) error {
	if opts.Steps != nil {
		if *opts.Steps < 0 {
			return fmt.Errorf("steps must be >= 0, got %d", *opts.Steps)
		}
		sc.Steps = *opts.Steps
	}
	if opts.Until != nil {
		sc.Until = opts.Until
	}

	m, err := bmi.New(opts.Component)
	if err != nil {
		return err
	}

	var st *trace.SessionTrace
	if opts.TraceLevel != "" && opts.TraceLevel != trace.TraceLevelNone {
		st = trace.NewSessionTrace(opts.TraceLevel)
		if tr, ok := m.(tracer); ok {
			tr.SetTrace(st)
		} else {
			logrus.Warnf("component %q does not support tracing", opts.Component)
		}
	}

	if err := m.Initialize(opts.ConfigFile); err != nil {
		return err
	}
	defer func() {
		if err := m.Finalize(); err != nil {
			logrus.Errorf("finalize: %v", err)
		}
	}()

	if err := sc.Apply(m); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s at t=%g %s\n", m.GetComponentName(), m.GetCurrentTime(), m.GetTimeUnits()); err != nil {
		return err
	}
	if err := writeVariableTable(w, m); err != nil {
		return err
	}
	if st != nil {
		if err := writeTraceSummary(w, trace.Summarize(st)); err != nil {
			return err
		}
	}
	if opts.Plot != "" {
		if err := writePlot(w, m, opts.Plot); err != nil {
			return fmt.Errorf("plot %q: %w", opts.Plot, err)
		}
	}
	return nil
}

// parseNames prints the decoded metadata of each name. Names that fail to
// parse are reported in the table and make the command fail.
func parseNames(w io.Writer, names []string) error {
	rows := make([][]string, 0, len(names))
	failed := 0
	for _, name := range names {
		canonical, meta, err := sloth.ParseName(name)
		if err != nil {
			failed++
			rows = append(rows, []string{name, "", "", "", "", "", err.Error()})
			continue
		}
		rows = append(rows, []string{
			name, canonical, strconv.Itoa(meta.Count), meta.Type.String(), meta.Units, meta.Location, meta.Alias,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("INPUT", "NAME", "COUNT", "TYPE", "UNITS", "LOCATION", "ALIAS / ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d names failed to parse", failed, len(names))
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file")
	runCmd.Flags().IntVar(&steps, "steps", 0, "Number of Update calls (overrides scenario)")
	runCmd.Flags().Float64Var(&until, "until", 0, "UpdateUntil target time (overrides scenario)")
	runCmd.Flags().StringVar(&plotVar, "plot", "", "Variable to plot after the run")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "state", "Call trace level (none, state, writes)")
	runCmd.Flags().StringVar(&componentID, "component", sloth.ComponentID, "Registered component to run")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(parseCmd)
}
