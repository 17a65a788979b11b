package reportfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"checkdiff/internal/diag"
	"checkdiff/internal/reconcile"
)

func TestJSONStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult(), JSONOpts{}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out ResultJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.AgreedCount != 1 || len(out.Agreed) != 1 {
		t.Fatalf("agreed = %d (count %d), want 1", len(out.Agreed), out.AgreedCount)
	}
	group := out.Agreed[0]
	if group.File != "foo.py" || group.Line != 10 {
		t.Fatalf("agreed group at %s:%d, want foo.py:10", group.File, group.Line)
	}
	if len(group.Tools) != 2 {
		t.Fatalf("agreed tools = %v, want 2 entries", group.Tools)
	}
	if msgs := group.Messages["ty"]; len(msgs) != 1 || msgs[0] != "incompatible types" {
		t.Fatalf("ty messages = %v", msgs)
	}

	entries := out.Exclusive["ty"]
	if len(entries) != 1 || entries[0].File != "foo.py" || entries[0].Line != 12 {
		t.Fatalf("ty exclusive = %+v", entries)
	}
	if out.Summary.Totals["ty"] != 2 || out.Summary.Totals["pyrefly"] != 1 {
		t.Fatalf("summary totals = %+v", out.Summary.Totals)
	}
}

func TestJSONAgreeOnlyOmitsExclusive(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult(), JSONOpts{AgreeOnly: true}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := out["exclusive"]; ok {
		t.Fatal("agree-only JSON must omit the exclusive section")
	}
	if _, ok := out["message_only"]; ok {
		t.Fatal("agree-only JSON must omit the message_only section")
	}
}

func TestJSONEmptyResultEncodes(t *testing.T) {
	in := reconcile.Input{}
	for _, tool := range diag.AllTools() {
		in[tool] = nil
	}
	var buf bytes.Buffer
	if err := JSON(&buf, reconcile.Reconcile(in), JSONOpts{}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	var out ResultJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Agreed) != 0 || out.AgreedCount != 0 {
		t.Fatalf("empty result produced agreed groups: %+v", out.Agreed)
	}
	if len(out.Tools) != len(diag.AllTools()) {
		t.Fatalf("tools = %v, want all four", out.Tools)
	}
}
