package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"checkdiff/internal/adapter"
	"checkdiff/internal/diag"
	"checkdiff/internal/observ"
	"checkdiff/internal/reconcile"
	"checkdiff/internal/reportfmt"
	"checkdiff/internal/runner"
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] [targets...]",
	Short: "Run the checkers and reconcile their diagnostics",
	Long:  `Run every enabled checker over the target paths (none = whole project), parse each tool's report, and show which diagnostics the tools agree on and which are exclusive to one tool`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	compareCmd.Flags().Bool("agree-only", false, "only list rows where two or more checkers report an error")
	compareCmd.Flags().StringSlice("checkers", nil, "checkers to run (default: all enabled)")
	compareCmd.Flags().Int("jobs", 0, "max parallel checker invocations (0=auto)")
	compareCmd.Flags().Duration("timeout", 0, "per-checker timeout (0=none)")
	compareCmd.Flags().String("config", "", "path to checkdiff.toml")
	compareCmd.Flags().Bool("no-ui", false, "disable the live progress display")
	compareCmd.Flags().Bool("disk-cache", false, "cache raw checker output on disk (experimental)")
	compareCmd.Flags().Int("max", 0, "cap listed locations per section (0=unlimited)")
}

// runCompare executes the "compare" command: it invokes the enabled
// checkers over the targets, parses every captured report into records,
// reconciles them, and renders the result in the chosen format.
//
// Diagnostics found by the checkers never make the command fail; only
// invocation-layer and formatting errors do.
func runCompare(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	agreeOnly, err := cmd.Flags().GetBool("agree-only")
	if err != nil {
		return fmt.Errorf("failed to get agree-only flag: %w", err)
	}

	checkerNames, err := cmd.Flags().GetStringSlice("checkers")
	if err != nil {
		return fmt.Errorf("failed to get checkers flag: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("failed to get timeout flag: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return fmt.Errorf("failed to get no-ui flag: %w", err)
	}

	diskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	maxShown, err := cmd.Flags().GetInt("max")
	if err != nil {
		return fmt.Errorf("failed to get max flag: %w", err)
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	colorOn, err := resolveColor(colorMode)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	specs := cfg.Specs()
	if len(checkerNames) > 0 {
		specs, err = filterSpecs(specs, checkerNames)
		if err != nil {
			return err
		}
	}
	if len(specs) == 0 {
		return fmt.Errorf("no checkers enabled")
	}

	var cache *runner.Cache
	if diskCache {
		cache, err = runner.OpenCache("checkdiff")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	opts := runner.Options{
		Targets: args,
		Jobs:    jobs,
		Timeout: timeout,
		Cache:   cache,
	}

	timer := observ.NewTimer()

	runIdx := timer.Begin("run")
	var captures []runner.Capture
	if !noUI && !quiet && isTerminal(os.Stdout) {
		captures, err = runWithUI(cmd.Context(), "running checkers", specs, opts)
	} else {
		captures, err = runner.RunAll(cmd.Context(), specs, opts)
	}
	if err != nil {
		return err
	}
	timer.End(runIdx, fmt.Sprintf("%d checkers", len(specs)))

	// A failed invocation is reported here and its (empty) capture still
	// participates downstream as an empty record set.
	for _, capture := range captures {
		if capture.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", capture.Tool, capture.Err)
		}
	}

	parseIdx := timer.Begin("parse")
	input := make(reconcile.Input, len(captures))
	parsed := 0
	for _, capture := range captures {
		records := adapter.For(capture.Tool).Parse(string(capture.Output))
		input[capture.Tool] = records
		parsed += len(records)
	}
	timer.End(parseIdx, fmt.Sprintf("%d records", parsed))

	recIdx := timer.Begin("reconcile")
	result := reconcile.Reconcile(input)
	timer.End(recIdx, fmt.Sprintf("%d agreed locations", len(result.Agreed)))

	switch format {
	case "pretty":
		reportfmt.Pretty(os.Stdout, result, reportfmt.PrettyOpts{
			Color:       colorOn,
			AgreeOnly:   agreeOnly,
			ShowSummary: !quiet,
			Max:         maxShown,
		})
	case "json":
		if err := reportfmt.JSON(os.Stdout, result, reportfmt.JSONOpts{AgreeOnly: agreeOnly, Max: maxShown}); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// filterSpecs keeps only the named checkers, preserving enumeration order.
func filterSpecs(specs []runner.Spec, names []string) ([]runner.Spec, error) {
	want := make(map[diag.Tool]bool, len(names))
	for _, name := range names {
		tool, err := diag.ParseTool(name)
		if err != nil {
			return nil, err
		}
		want[tool] = true
	}
	out := make([]runner.Spec, 0, len(specs))
	for _, spec := range specs {
		if want[spec.Tool] {
			out = append(out, spec)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no checkers selected")
	}
	return out, nil
}
