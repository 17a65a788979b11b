package reportfmt

import (
	"strings"
	"testing"

	"checkdiff/internal/diag"
	"checkdiff/internal/reconcile"
)

func sampleResult() reconcile.Result {
	return reconcile.Reconcile(reconcile.Input{
		diag.ToolTy: {
			{Tool: diag.ToolTy, Path: "foo.py", Line: 10, Message: "incompatible types"},
			{Tool: diag.ToolTy, Path: "foo.py", Line: 12, Message: "unused variable"},
		},
		diag.ToolPyrefly: {
			{Tool: diag.ToolPyrefly, Path: "foo.py", Line: 10, Message: "3: incompatible types [bad-arg]"},
		},
	})
}

func TestPrettyListsAgreedAndExclusiveSections(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleResult(), PrettyOpts{ShowSummary: true})
	out := sb.String()

	if !strings.Contains(out, "================ SUMMARY ================") {
		t.Fatalf("missing summary block:\n%s", out)
	}
	if !strings.Contains(out, "foo.py:10:") {
		t.Fatalf("missing agreed key:\n%s", out)
	}
	if !strings.Contains(out, "incompatible types") {
		t.Fatalf("missing agreed message:\n%s", out)
	}
	if !strings.Contains(out, "TY-only locations:") {
		t.Fatalf("missing exclusive section:\n%s", out)
	}
	if !strings.Contains(out, "foo.py:12: unused variable") {
		t.Fatalf("missing exclusive entry:\n%s", out)
	}
}

func TestPrettyAgreeOnlyHidesExclusiveSections(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleResult(), PrettyOpts{AgreeOnly: true})
	out := sb.String()

	if strings.Contains(out, "-only locations:") {
		t.Fatalf("agree-only output still lists exclusive sections:\n%s", out)
	}
	if !strings.Contains(out, "foo.py:10:") {
		t.Fatalf("agree-only output misses agreed key:\n%s", out)
	}
}

func TestPrettyWithoutSummary(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleResult(), PrettyOpts{})
	if strings.Contains(sb.String(), "SUMMARY") {
		t.Fatalf("summary shown although disabled:\n%s", sb.String())
	}
}

func TestPrettyEmptyResult(t *testing.T) {
	in := reconcile.Input{}
	for _, tool := range diag.AllTools() {
		in[tool] = nil
	}
	var sb strings.Builder
	Pretty(&sb, reconcile.Reconcile(in), PrettyOpts{ShowSummary: true})
	out := sb.String()

	if !strings.Contains(out, "Total diagnostics in ty") {
		t.Fatalf("summary must list every participating tool:\n%s", out)
	}
	if strings.Contains(out, "-only locations:") {
		t.Fatalf("empty result must produce no exclusive sections:\n%s", out)
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	in := reconcile.Input{
		diag.ToolTy:      nil,
		diag.ToolPyright: nil,
	}
	for line := uint32(1); line <= 5; line++ {
		in[diag.ToolTy] = append(in[diag.ToolTy], diag.Record{Tool: diag.ToolTy, Path: "a.py", Line: line, Message: "m"})
		in[diag.ToolPyright] = append(in[diag.ToolPyright], diag.Record{Tool: diag.ToolPyright, Path: "a.py", Line: line, Message: "m"})
	}
	var sb strings.Builder
	Pretty(&sb, reconcile.Reconcile(in), PrettyOpts{Max: 2})
	out := sb.String()

	if !strings.Contains(out, "... and 3 more") {
		t.Fatalf("expected truncation marker:\n%s", out)
	}
}
