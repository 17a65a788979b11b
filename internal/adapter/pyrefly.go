package adapter

import (
	"strings"

	"checkdiff/internal/diag"
)

// pyreflyAdapter parses `pyrefly check` reports.
//
// Diagnostic lines start with a literal "ERROR" marker followed by the
// path, a line-number field, and the message. The line-number field may
// carry a row range written as "start-end"; the start row is taken.
//
//	ERROR /proj/foo.py:10:3: incompatible types [bad-arg]
//	ERROR /proj/foo.py:10-12: incompatible types
type pyreflyAdapter struct{}

func (pyreflyAdapter) Tool() diag.Tool { return diag.ToolPyrefly }

func (pyreflyAdapter) Parse(raw string) []diag.Record {
	var recs []diag.Record
	forEachLine(raw, func(line string) {
		if !strings.HasPrefix(line, "ERROR") {
			return
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "ERROR"))
		parts := strings.Split(rest, ":")
		if len(parts) < 3 {
			return
		}
		row, _, _ := strings.Cut(parts[1], "-")
		num, ok := parseLineNumber(row)
		if !ok {
			return
		}
		recs = append(recs, diag.Record{
			Tool:    diag.ToolPyrefly,
			Path:    diag.NormalizePath(parts[0]),
			Line:    num,
			Message: strings.TrimSpace(strings.Join(parts[2:], ":")),
		})
	})
	return recs
}
