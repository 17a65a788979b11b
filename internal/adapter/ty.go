package adapter

import (
	"strings"

	"checkdiff/internal/diag"
)

// tyAdapter parses `ty check --output-format concise` reports.
//
// Diagnostic lines start with a literal "error" marker and are colon
// separated: the first field is the file path, the second the line number,
// the remaining colon-joined fields are the message.
//
//	error:/proj/foo.py:10:incompatible types
type tyAdapter struct{}

func (tyAdapter) Tool() diag.Tool { return diag.ToolTy }

func (tyAdapter) Parse(raw string) []diag.Record {
	var recs []diag.Record
	forEachLine(raw, func(line string) {
		if !strings.HasPrefix(line, "error") {
			return
		}
		rest := strings.TrimLeft(strings.TrimPrefix(line, "error"), ": \t")
		parts := strings.Split(rest, ":")
		if len(parts) < 3 {
			return
		}
		num, ok := parseLineNumber(parts[1])
		if !ok {
			return
		}
		recs = append(recs, diag.Record{
			Tool:    diag.ToolTy,
			Path:    diag.NormalizePath(parts[0]),
			Line:    num,
			Message: strings.TrimSpace(strings.Join(parts[2:], ":")),
		})
	})
	return recs
}
