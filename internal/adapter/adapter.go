// Package adapter converts each checker's raw text report into canonical
// diagnostic records. One adapter per tool; new tools are supported by
// adding a new adapter, never by branching on tool names elsewhere.
package adapter

import (
	"checkdiff/internal/diag"
)

// Adapter turns one checker's raw captured text (combined stdout and
// stderr) into the ordered sequence of diagnostic records it contains.
//
// Parsing is best-effort and never fails: lines that do not match the
// tool's diagnostic shape (banners, progress text, summaries, blank lines)
// produce no record, and so do matching lines whose line-number field is
// not a positive integer. A comparison tool must not abort on one tool's
// output quirk.
type Adapter interface {
	Tool() diag.Tool
	Parse(raw string) []diag.Record
}

// For returns the adapter for a tool, or nil for an unknown tool.
func For(tool diag.Tool) Adapter {
	switch tool {
	case diag.ToolTy:
		return tyAdapter{}
	case diag.ToolPyrefly:
		return pyreflyAdapter{}
	case diag.ToolPyright:
		return pyrightAdapter{}
	case diag.ToolPyre:
		return pyreAdapter{}
	}
	return nil
}

// All returns adapters for every supported tool in enumeration order.
func All() []Adapter {
	tools := diag.AllTools()
	out := make([]Adapter, 0, len(tools))
	for _, t := range tools {
		out = append(out, For(t))
	}
	return out
}
