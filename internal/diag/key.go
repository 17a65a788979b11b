package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Key is the location identity used to correlate diagnostics across tools
// regardless of message wording.
type Key struct {
	Path string
	Line uint32
}

// Less orders keys by path, then line.
func (k Key) Less(other Key) bool {
	if k.Path != other.Path {
		return k.Path < other.Path
	}
	return k.Line < other.Line
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d", k.Path, k.Line)
}

// ExactKey is the message-sensitive identity: same location plus the exact
// (trimmed) message text.
type ExactKey struct {
	Path    string
	Line    uint32
	Message string
}

// NormalizePath reduces a raw tool-reported path to its final segment.
// Deterministic and total: the same raw string always maps to the same
// value, independent of record order or platform separators.
func NormalizePath(raw string) string {
	p := filepath.ToSlash(strings.TrimSpace(raw))
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
