package adapter

import (
	"testing"

	"checkdiff/internal/diag"
)

func TestPyreflyParsesDiagnosticLine(t *testing.T) {
	raw := "ERROR /proj/foo.py:10:3: incompatible types [bad-arg]\n"
	recs := pyreflyAdapter{}.Parse(raw)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	want := diag.Record{Tool: diag.ToolPyrefly, Path: "foo.py", Line: 10, Message: "3: incompatible types [bad-arg]"}
	if recs[0] != want {
		t.Fatalf("record = %+v, want %+v", recs[0], want)
	}
}

func TestPyreflyTakesRangeStartRow(t *testing.T) {
	raw := "ERROR /proj/foo.py:10-12: revealed type mismatch"
	recs := pyreflyAdapter{}.Parse(raw)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Line != 10 {
		t.Fatalf("line = %d, want 10", recs[0].Line)
	}
	if recs[0].Message != "revealed type mismatch" {
		t.Fatalf("message = %q, want %q", recs[0].Message, "revealed type mismatch")
	}
}

func TestPyreflyIgnoresLowercaseMarkerAndBanners(t *testing.T) {
	raw := "error /proj/foo.py:10: wrong marker case\npyrefly 0.5\n 1 error found\n"
	if recs := (pyreflyAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}

func TestPyreflySkipsUnparseableRange(t *testing.T) {
	raw := "ERROR /proj/foo.py:abc-12: msg"
	if recs := (pyreflyAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}
