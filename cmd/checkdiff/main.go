package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"checkdiff/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "checkdiff",
	Short: "Compare diagnostics across Python type checkers",
	Long:  `checkdiff runs several independent type checkers over the same files and reconciles their diagnostics: where the tools agree, where they disagree, and what each one reports alone`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkersCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor applies the --color flag and reports whether output should
// be colorized.
func resolveColor(mode string) (bool, error) {
	switch mode {
	case "on":
		color.NoColor = false
		return true, nil
	case "off":
		color.NoColor = true
		return false, nil
	case "auto":
		enabled := isTerminal(os.Stdout)
		color.NoColor = !enabled
		return enabled, nil
	}
	return false, fmt.Errorf("unknown color mode %q", mode)
}
