package diag

import "sort"

// Record is one diagnostic reported by one tool at a file and line.
// Multiple Records (even from the same tool) may share a Key; all are
// retained, because a tool can report several distinct messages on the
// same line.
type Record struct {
	Tool    Tool
	Path    string
	Line    uint32
	Message string
}

// Key returns the location identity of the record.
func (r Record) Key() Key {
	return Key{Path: r.Path, Line: r.Line}
}

// ExactKey returns the message-sensitive identity of the record.
func (r Record) ExactKey() ExactKey {
	return ExactKey{Path: r.Path, Line: r.Line, Message: r.Message}
}

// SortRecords sorts by path, line, tool, message for stable and
// deterministic output order.
func SortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := recs[i], recs[j]
		if ri.Path != rj.Path {
			return ri.Path < rj.Path
		}
		if ri.Line != rj.Line {
			return ri.Line < rj.Line
		}
		if ri.Tool != rj.Tool {
			return ri.Tool < rj.Tool
		}
		return ri.Message < rj.Message
	})
}
