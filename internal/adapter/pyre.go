package adapter

import (
	"strings"

	"checkdiff/internal/diag"
)

// pyreTag marks a pyre diagnostic line. Unlike the other checkers the
// marker trails the line instead of leading it.
const pyreTag = "Unused ignore [0]:"

// pyreAdapter parses `pyre` reports.
//
// A diagnostic is recognized by its trailing tag; the rest of the line is
// colon split into path, line number and message. The tag text is part of
// the diagnostic, not noise, so it is appended back onto the message.
//
//	/proj/bar.py:5:msg text:Unused ignore [0]:
type pyreAdapter struct{}

func (pyreAdapter) Tool() diag.Tool { return diag.ToolPyre }

func (pyreAdapter) Parse(raw string) []diag.Record {
	var recs []diag.Record
	forEachLine(raw, func(line string) {
		if !strings.HasSuffix(line, pyreTag) {
			return
		}
		rest := strings.TrimSuffix(line, pyreTag)
		parts := strings.Split(rest, ":")
		if len(parts) < 3 {
			return
		}
		num, ok := parseLineNumber(parts[1])
		if !ok {
			return
		}
		recs = append(recs, diag.Record{
			Tool:    diag.ToolPyre,
			Path:    diag.NormalizePath(parts[0]),
			Line:    num,
			Message: strings.TrimSpace(strings.Join(parts[2:], ":") + pyreTag),
		})
	})
	return recs
}
