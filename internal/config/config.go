// Package config loads the optional checkdiff.toml that overrides how the
// built-in checkers are invoked.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"checkdiff/internal/diag"
	"checkdiff/internal/runner"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "checkdiff.toml"

// CheckerSpec is one [checkers.<name>] table.
type CheckerSpec struct {
	Command []string `toml:"command"`
	Enabled *bool    `toml:"enabled"` // nil means enabled
}

// File is a parsed configuration file.
type File struct {
	Checkers map[string]CheckerSpec `toml:"checkers"`
}

// ErrEmptyCommand indicates a [checkers.<name>].command with no argv.
var ErrEmptyCommand = errors.New("empty command")

// Load parses a checkdiff.toml. A file without a [checkers] section is
// valid and yields no overrides. Unknown checker names are rejected so a
// typo does not silently leave the default invocation in place.
func Load(path string) (File, error) {
	var cfg File
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("checkers") || cfg.Checkers == nil {
		return File{Checkers: map[string]CheckerSpec{}}, nil
	}
	for name, spec := range cfg.Checkers {
		if _, err := diag.ParseTool(name); err != nil {
			return File{}, fmt.Errorf("%s: %w", path, err)
		}
		if meta.IsDefined("checkers", name, "command") && len(spec.Command) == 0 {
			return File{}, fmt.Errorf("%s: checker %q: %w", path, name, ErrEmptyCommand)
		}
	}
	return cfg, nil
}

// Specs applies the file's overrides to the default checker specs and
// returns the enabled ones, in tool enumeration order.
func (f File) Specs() []runner.Spec {
	defaults := runner.DefaultSpecs()
	out := make([]runner.Spec, 0, len(defaults))
	for _, spec := range defaults {
		if override, ok := f.Checkers[spec.Tool.String()]; ok {
			if override.Enabled != nil && !*override.Enabled {
				continue
			}
			if len(override.Command) > 0 {
				spec.Bin = override.Command[0]
				spec.Args = append([]string(nil), override.Command[1:]...)
			}
		}
		out = append(out, spec)
	}
	return out
}
