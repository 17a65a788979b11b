package diag

import (
	"fmt"
	"strings"
)

// Tool identifies the checker that produced a diagnostic.
type Tool uint8

const (
	ToolTy Tool = iota
	ToolPyrefly
	ToolPyright
	ToolPyre

	toolCount
)

func (t Tool) String() string {
	switch t {
	case ToolTy:
		return "ty"
	case ToolPyrefly:
		return "pyrefly"
	case ToolPyright:
		return "pyright"
	case ToolPyre:
		return "pyre"
	}
	return "unknown"
}

// AllTools returns every supported tool in enumeration order.
// This order is stable across runs and is the order used when listing
// per-tool output, independent of input-arrival order.
func AllTools() []Tool {
	tools := make([]Tool, 0, toolCount)
	for t := Tool(0); t < toolCount; t++ {
		tools = append(tools, t)
	}
	return tools
}

// ParseTool maps a checker name (as written in flags or config) to its Tool.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ty":
		return ToolTy, nil
	case "pyrefly":
		return ToolPyrefly, nil
	case "pyright":
		return ToolPyright, nil
	case "pyre":
		return ToolPyre, nil
	}
	return 0, fmt.Errorf("unknown checker %q", name)
}
