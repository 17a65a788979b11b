package adapter

import (
	"testing"

	"checkdiff/internal/diag"
)

func TestPyrightParsesDiagnosticLine(t *testing.T) {
	raw := "/proj/foo.py:10:3 - error: incompatible types\n"
	recs := pyrightAdapter{}.Parse(raw)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	want := diag.Record{Tool: diag.ToolPyright, Path: "foo.py", Line: 10, Message: "error: incompatible types"}
	if recs[0] != want {
		t.Fatalf("record = %+v, want %+v", recs[0], want)
	}
}

func TestPyrightGarbageProducesNothing(t *testing.T) {
	raw := "garbage line with no colons"
	if recs := (pyrightAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}

func TestPyrightSkipsLineWithoutHyphen(t *testing.T) {
	raw := "/proj/foo.py:10:3 error: missing separator"
	if recs := (pyrightAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}

func TestPyrightSkipsUnparseableLineNumber(t *testing.T) {
	raw := "/proj/foo.py:xx:3 - error: msg"
	if recs := (pyrightAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}

func TestPyrightKeepsHyphensInsideMessage(t *testing.T) {
	raw := "/proj/foo.py:4:1 - error: non-iterable value"
	recs := pyrightAdapter{}.Parse(raw)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Message != "error: non-iterable value" {
		t.Fatalf("message = %q, want %q", recs[0].Message, "error: non-iterable value")
	}
}

func TestPyrightIgnoresSummaryLines(t *testing.T) {
	raw := "0 errors, 2 warnings, 0 informations\nCompleted in 1.2s\n"
	if recs := (pyrightAdapter{}).Parse(raw); len(recs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(recs))
	}
}
