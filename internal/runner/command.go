// Package runner invokes the external checkers and captures their raw
// output. The reconciliation core never executes processes itself; it only
// receives the fully captured text produced here.
package runner

import (
	"os/exec"

	"checkdiff/internal/diag"
)

// Spec describes how to invoke one checker.
type Spec struct {
	Tool diag.Tool
	Bin  string
	Args []string
}

// DefaultSpecs returns the built-in invocation for every supported
// checker, in tool enumeration order. Targets are appended to the argv; an
// empty target list means the checker scans the whole project by its own
// convention.
func DefaultSpecs() []Spec {
	return []Spec{
		{Tool: diag.ToolTy, Bin: "ty", Args: []string{"check", "--output-format", "concise"}},
		{Tool: diag.ToolPyrefly, Bin: "pyrefly", Args: []string{"check"}},
		{Tool: diag.ToolPyright, Bin: "pyright"},
		{Tool: diag.ToolPyre, Bin: "pyre"},
	}
}

// CommandLine returns the full argv for the spec against targets.
func (s Spec) CommandLine(targets []string) []string {
	argv := make([]string, 0, 1+len(s.Args)+len(targets))
	argv = append(argv, s.Bin)
	argv = append(argv, s.Args...)
	argv = append(argv, targets...)
	return argv
}

// Available reports whether the checker binary resolves in PATH.
func (s Spec) Available() (string, bool) {
	path, err := exec.LookPath(s.Bin)
	if err != nil {
		return "", false
	}
	return path, true
}
