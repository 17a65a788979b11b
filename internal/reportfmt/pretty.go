// Package reportfmt renders reconciliation results for humans and
// machines. It owns no state: formatters take a finished result and an
// options struct and write to the supplied writer.
package reportfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"checkdiff/internal/reconcile"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	keyColor     = color.New(color.Bold)
	toolColor    = color.New(color.FgYellow)
)

// Pretty writes the human-readable report: a summary block, the agreed
// section, and per-tool exclusive sections. With AgreeOnly only the agreed
// section is shown. Output order is deterministic: locations sorted by
// (path, line), messages per tool in tool enumeration order.
func Pretty(w io.Writer, res reconcile.Result, opts PrettyOpts) {
	p := printer{w: w, color: opts.Color}

	if opts.ShowSummary {
		writeSummary(p, res)
	}

	if opts.AgreeOnly {
		if len(res.Agreed) == 0 {
			fmt.Fprintln(w, "No rows where all participating checkers overlap.")
			return
		}
		writeAgreed(p, res, opts)
		return
	}

	writeAgreed(p, res, opts)
	writeExclusive(p, res, opts)
}

type printer struct {
	w     io.Writer
	color bool
}

func (p printer) heading(s string) {
	if p.color {
		headingColor.Fprintln(p.w, s)
		return
	}
	fmt.Fprintln(p.w, s)
}

func (p printer) key(s string) {
	if p.color {
		keyColor.Fprintf(p.w, "%s:\n", s)
		return
	}
	fmt.Fprintf(p.w, "%s:\n", s)
}

func (p printer) toolLine(tool, msg string) {
	if p.color {
		fmt.Fprintf(p.w, "  %s : %s\n", toolColor.Sprintf("%-8s", tool), msg)
		return
	}
	fmt.Fprintf(p.w, "  %-8s : %s\n", tool, msg)
}

func writeSummary(p printer, res reconcile.Result) {
	p.heading("================ SUMMARY ================")
	width := 0
	labels := make([]string, 0, 2*len(res.Tools)+2)
	values := make([]int, 0, 2*len(res.Tools)+2)
	for _, tool := range res.Tools {
		labels = append(labels, fmt.Sprintf("Total diagnostics in %s", tool))
		values = append(values, res.Summary.Totals[tool])
	}
	labels = append(labels, "Overlapping files")
	values = append(values, res.Summary.OverlappingFiles)
	labels = append(labels, "Overlapping file & row pairs")
	values = append(values, res.Summary.OverlappingLocations)
	for _, tool := range res.Tools {
		labels = append(labels, fmt.Sprintf("Rows only in %s", tool))
		values = append(values, res.Summary.ExclusiveLocations[tool])
	}
	for _, label := range labels {
		if len(label) > width {
			width = len(label)
		}
	}
	for i, label := range labels {
		fmt.Fprintf(p.w, "%-*s : %d\n", width, label, values[i])
	}
	p.heading("=========================================")
	fmt.Fprintln(p.w)
}

func writeAgreed(p printer, res reconcile.Result, opts PrettyOpts) {
	if len(res.Agreed) == 0 {
		return
	}
	p.heading("Rows where two or more checkers agree:")
	fmt.Fprintln(p.w)
	shown := 0
	for _, group := range res.Agreed {
		if opts.Max > 0 && shown >= opts.Max {
			fmt.Fprintf(p.w, "... and %d more\n", len(res.Agreed)-shown)
			break
		}
		p.key(group.Key.String())
		for _, tool := range group.Tools {
			for _, msg := range group.Messages[tool] {
				p.toolLine(tool.String(), msg)
			}
		}
		fmt.Fprintln(p.w)
		shown++
	}
}

func writeExclusive(p printer, res reconcile.Result, opts PrettyOpts) {
	for _, tool := range res.Tools {
		entries := res.Exclusive[tool]
		if len(entries) == 0 {
			continue
		}
		p.heading(fmt.Sprintf("%s-only locations:", strings.ToUpper(tool.String())))
		shown := 0
		for _, entry := range entries {
			if opts.Max > 0 && shown >= opts.Max {
				fmt.Fprintf(p.w, "  ... and %d more\n", len(entries)-shown)
				break
			}
			for _, msg := range entry.Messages {
				fmt.Fprintf(p.w, "  %s: %s\n", entry.Key, msg)
			}
			shown++
		}
		fmt.Fprintln(p.w)
	}
}
