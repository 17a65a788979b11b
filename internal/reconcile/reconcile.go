// Package reconcile groups diagnostic records from independent checkers by
// location key and classifies every location as agreed (reported by two or
// more tools) or exclusive to a single tool. The engine is stateless: each
// run is a pure function of the per-tool record sequences handed to it.
package reconcile

import (
	"sort"

	"checkdiff/internal/diag"
)

// Input maps every participating tool to its parsed record sequence. A
// tool that produced zero parseable diagnostics still participates in all
// set operations, contributing an empty set; it is never excluded from the
// comparison.
type Input map[diag.Tool][]diag.Record

// Group is one location reported by at least two tools.
type Group struct {
	Key      diag.Key
	Tools    []diag.Tool            // contributing tools, enumeration order
	Messages map[diag.Tool][]string // sorted distinct messages per tool
}

// Entry is one location reported by exactly one tool.
type Entry struct {
	Key      diag.Key
	Messages []string // sorted distinct messages
}

// Summary carries the aggregate counts shown at the top of a report.
type Summary struct {
	Totals               map[diag.Tool]int // every record the tool emitted
	OverlappingFiles     int               // files reported by >=2 tools
	OverlappingLocations int               // locations reported by >=2 tools
	ExclusiveLocations   map[diag.Tool]int
	MessageOnly          map[diag.Tool]int // exact-text diagnostics unique to the tool
}

// Result is the full reconciliation outcome for one run.
//
// Every location key present in the union of all tools' records lands in
// exactly one of Agreed or Exclusive, never both, never neither.
type Result struct {
	Tools       []diag.Tool // participating tools, enumeration order
	Agreed      []Group     // sorted by key
	Exclusive   map[diag.Tool][]Entry
	MessageOnly map[diag.Tool][]diag.Record
	Summary     Summary
}

// Reconcile classifies the input's locations. Classification is symmetric:
// the result does not depend on which tool's records were collected first.
//
// Location-level agreement ignores message text: a key is agreed as soon as
// two tools report anything there. Message-sensitive exclusivity compares
// trimmed message text byte-for-byte; no whitespace, casing, or error-code
// normalization is applied, so two diagnostics differing only in an
// embedded code count as different.
func Reconcile(in Input) Result {
	tools := participants(in)

	perKey := make(map[diag.Key]map[diag.Tool]map[string]struct{})
	exact := make(map[diag.Tool]map[diag.ExactKey]struct{}, len(tools))
	files := make(map[diag.Tool]map[string]struct{}, len(tools))
	totals := make(map[diag.Tool]int, len(tools))

	for _, tool := range tools {
		exact[tool] = make(map[diag.ExactKey]struct{})
		files[tool] = make(map[string]struct{})
		totals[tool] = len(in[tool])
		for _, rec := range in[tool] {
			key := rec.Key()
			byTool := perKey[key]
			if byTool == nil {
				byTool = make(map[diag.Tool]map[string]struct{})
				perKey[key] = byTool
			}
			msgs := byTool[tool]
			if msgs == nil {
				msgs = make(map[string]struct{})
				byTool[tool] = msgs
			}
			msgs[rec.Message] = struct{}{}
			exact[tool][rec.ExactKey()] = struct{}{}
			files[tool][rec.Path] = struct{}{}
		}
	}

	keys := make([]diag.Key, 0, len(perKey))
	for key := range perKey {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	res := Result{
		Tools:       tools,
		Exclusive:   make(map[diag.Tool][]Entry, len(tools)),
		MessageOnly: make(map[diag.Tool][]diag.Record, len(tools)),
		Summary: Summary{
			Totals:             totals,
			ExclusiveLocations: make(map[diag.Tool]int, len(tools)),
			MessageOnly:        make(map[diag.Tool]int, len(tools)),
		},
	}
	for _, tool := range tools {
		res.Exclusive[tool] = nil
		res.Summary.ExclusiveLocations[tool] = 0
	}

	for _, key := range keys {
		byTool := perKey[key]
		contributing := make([]diag.Tool, 0, len(byTool))
		for _, tool := range tools {
			if _, ok := byTool[tool]; ok {
				contributing = append(contributing, tool)
			}
		}
		if len(contributing) >= 2 {
			group := Group{
				Key:      key,
				Tools:    contributing,
				Messages: make(map[diag.Tool][]string, len(contributing)),
			}
			for _, tool := range contributing {
				group.Messages[tool] = sortedMessages(byTool[tool])
			}
			res.Agreed = append(res.Agreed, group)
			continue
		}
		tool := contributing[0]
		res.Exclusive[tool] = append(res.Exclusive[tool], Entry{
			Key:      key,
			Messages: sortedMessages(byTool[tool]),
		})
		res.Summary.ExclusiveLocations[tool]++
	}
	res.Summary.OverlappingLocations = len(res.Agreed)
	res.Summary.OverlappingFiles = overlappingFiles(tools, files)

	for _, tool := range tools {
		res.MessageOnly[tool] = messageOnly(tool, tools, in, exact)
		res.Summary.MessageOnly[tool] = len(res.MessageOnly[tool])
	}

	return res
}

// participants returns the input's tools in enumeration order.
func participants(in Input) []diag.Tool {
	tools := make([]diag.Tool, 0, len(in))
	for _, tool := range diag.AllTools() {
		if _, ok := in[tool]; ok {
			tools = append(tools, tool)
		}
	}
	return tools
}

func sortedMessages(set map[string]struct{}) []string {
	msgs := make([]string, 0, len(set))
	for msg := range set {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return msgs
}

// overlappingFiles counts normalized paths reported by two or more tools.
func overlappingFiles(tools []diag.Tool, files map[diag.Tool]map[string]struct{}) int {
	seen := make(map[string]int)
	for _, tool := range tools {
		for path := range files[tool] {
			seen[path]++
		}
	}
	count := 0
	for _, n := range seen {
		if n >= 2 {
			count++
		}
	}
	return count
}

// messageOnly returns the tool's exact-text diagnostics absent from every
// other tool's exact-text set, deduplicated and sorted.
func messageOnly(tool diag.Tool, tools []diag.Tool, in Input, exact map[diag.Tool]map[diag.ExactKey]struct{}) []diag.Record {
	var out []diag.Record
	seen := make(map[diag.ExactKey]struct{})
	for _, rec := range in[tool] {
		key := rec.ExactKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique := true
		for _, other := range tools {
			if other == tool {
				continue
			}
			if _, ok := exact[other][key]; ok {
				unique = false
				break
			}
		}
		if unique {
			out = append(out, rec)
		}
	}
	diag.SortRecords(out)
	return out
}
