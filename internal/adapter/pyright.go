package adapter

import (
	"strings"

	"checkdiff/internal/diag"
)

// pyrightAdapter parses `pyright` reports.
//
// Diagnostic lines begin with an absolute path; the first hyphen separates
// the location from the message. The location is colon separated into path
// and line number.
//
//	/proj/foo.py:10:3 - error: incompatible types
//
// This is the least regular of the supported formats: any line whose
// location cannot be split, or whose line number is not a positive
// integer, is skipped rather than failing the parse.
type pyrightAdapter struct{}

func (pyrightAdapter) Tool() diag.Tool { return diag.ToolPyright }

func (pyrightAdapter) Parse(raw string) []diag.Record {
	var recs []diag.Record
	forEachLine(raw, func(line string) {
		if !strings.HasPrefix(line, "/") {
			return
		}
		loc, msg, found := strings.Cut(line, "-")
		if !found {
			return
		}
		parts := strings.Split(loc, ":")
		if len(parts) < 2 {
			return
		}
		num, ok := parseLineNumber(parts[1])
		if !ok {
			return
		}
		recs = append(recs, diag.Record{
			Tool:    diag.ToolPyright,
			Path:    diag.NormalizePath(parts[0]),
			Line:    num,
			Message: strings.TrimSpace(msg),
		})
	})
	return recs
}
