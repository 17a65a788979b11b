package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"checkdiff/internal/config"
)

var checkersCmd = &cobra.Command{
	Use:   "checkers",
	Short: "List supported checkers and whether they resolve in PATH",
	RunE:  runCheckers,
}

func init() {
	checkersCmd.Flags().String("config", "", "path to checkdiff.toml")
}

func runCheckers(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	for _, spec := range cfg.Specs() {
		status := "not found"
		if path, ok := spec.Available(); ok {
			status = path
		}
		fmt.Fprintf(os.Stdout, "%-8s %-44s %s\n",
			spec.Tool, strings.Join(spec.CommandLine(nil), " "), status)
	}
	return nil
}

// loadConfig reads the config at path, or the default checkdiff.toml in
// the working directory if it exists. No file at all is fine: the built-in
// checker specs apply.
func loadConfig(path string) (config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.Load(config.DefaultFileName)
	}
	return config.File{}, nil
}
