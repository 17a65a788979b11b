package reportfmt

// PrettyOpts configures the human-readable report.
type PrettyOpts struct {
	Color       bool
	AgreeOnly   bool // restrict output to locations where the tools agree
	ShowSummary bool
	Max         int // cap on listed locations per section, 0 = unlimited
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	AgreeOnly bool
	Max       int // truncates the output, not the result
}
