package reportfmt

import (
	"encoding/json"
	"io"

	"checkdiff/internal/diag"
	"checkdiff/internal/reconcile"
)

// GroupJSON represents an agreed location for JSON output.
type GroupJSON struct {
	File     string              `json:"file"`
	Line     uint32              `json:"line"`
	Tools    []string            `json:"tools"`
	Messages map[string][]string `json:"messages"`
}

// EntryJSON represents a tool-exclusive location for JSON output.
type EntryJSON struct {
	File     string   `json:"file"`
	Line     uint32   `json:"line"`
	Messages []string `json:"messages"`
}

// RecordJSON represents a single exact-text diagnostic for JSON output.
type RecordJSON struct {
	File    string `json:"file"`
	Line    uint32 `json:"line"`
	Message string `json:"message"`
}

// SummaryJSON mirrors reconcile.Summary with string tool keys.
type SummaryJSON struct {
	Totals               map[string]int `json:"totals"`
	OverlappingFiles     int            `json:"overlapping_files"`
	OverlappingLocations int            `json:"overlapping_locations"`
	ExclusiveLocations   map[string]int `json:"exclusive_locations"`
	MessageOnly          map[string]int `json:"message_only"`
}

// ResultJSON is the root structure of JSON output.
type ResultJSON struct {
	Tools       []string                `json:"tools"`
	Agreed      []GroupJSON             `json:"agreed"`
	AgreedCount int                     `json:"agreed_count"`
	Exclusive   map[string][]EntryJSON  `json:"exclusive,omitempty"`
	MessageOnly map[string][]RecordJSON `json:"message_only,omitempty"`
	Summary     SummaryJSON             `json:"summary"`
}

// JSON writes the reconciliation result as indented JSON.
func JSON(w io.Writer, res reconcile.Result, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSON(res, opts))
}

func buildJSON(res reconcile.Result, opts JSONOpts) ResultJSON {
	out := ResultJSON{
		Tools:       toolNames(res.Tools),
		Agreed:      make([]GroupJSON, 0, len(res.Agreed)),
		AgreedCount: len(res.Agreed),
		Summary: SummaryJSON{
			Totals:               toolCounts(res.Tools, res.Summary.Totals),
			OverlappingFiles:     res.Summary.OverlappingFiles,
			OverlappingLocations: res.Summary.OverlappingLocations,
			ExclusiveLocations:   toolCounts(res.Tools, res.Summary.ExclusiveLocations),
			MessageOnly:          toolCounts(res.Tools, res.Summary.MessageOnly),
		},
	}

	for _, group := range res.Agreed {
		if opts.Max > 0 && len(out.Agreed) >= opts.Max {
			break
		}
		g := GroupJSON{
			File:     group.Key.Path,
			Line:     group.Key.Line,
			Tools:    toolNames(group.Tools),
			Messages: make(map[string][]string, len(group.Tools)),
		}
		for _, tool := range group.Tools {
			g.Messages[tool.String()] = group.Messages[tool]
		}
		out.Agreed = append(out.Agreed, g)
	}

	if opts.AgreeOnly {
		return out
	}

	out.Exclusive = make(map[string][]EntryJSON, len(res.Tools))
	out.MessageOnly = make(map[string][]RecordJSON, len(res.Tools))
	for _, tool := range res.Tools {
		entries := make([]EntryJSON, 0, len(res.Exclusive[tool]))
		for _, entry := range res.Exclusive[tool] {
			if opts.Max > 0 && len(entries) >= opts.Max {
				break
			}
			entries = append(entries, EntryJSON{
				File:     entry.Key.Path,
				Line:     entry.Key.Line,
				Messages: entry.Messages,
			})
		}
		out.Exclusive[tool.String()] = entries

		records := make([]RecordJSON, 0, len(res.MessageOnly[tool]))
		for _, rec := range res.MessageOnly[tool] {
			if opts.Max > 0 && len(records) >= opts.Max {
				break
			}
			records = append(records, RecordJSON{File: rec.Path, Line: rec.Line, Message: rec.Message})
		}
		out.MessageOnly[tool.String()] = records
	}
	return out
}

func toolNames(tools []diag.Tool) []string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.String())
	}
	return names
}

func toolCounts(tools []diag.Tool, counts map[diag.Tool]int) map[string]int {
	out := make(map[string]int, len(tools))
	for _, tool := range tools {
		out[tool.String()] = counts[tool]
	}
	return out
}
