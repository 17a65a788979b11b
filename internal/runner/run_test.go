package runner

import (
	"context"
	"testing"

	"checkdiff/internal/diag"
)

func TestRunAllReportsMissingBinaryAsCaptureErr(t *testing.T) {
	specs := []Spec{{Tool: diag.ToolTy, Bin: "checkdiff-no-such-binary"}}

	captures, err := RunAll(context.Background(), specs, Options{})
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	if len(captures) != 1 {
		t.Fatalf("expected 1 capture, got %d", len(captures))
	}
	if captures[0].Err == nil {
		t.Fatal("expected Capture.Err for a missing binary")
	}
	if captures[0].Tool != diag.ToolTy {
		t.Fatalf("capture tool = %v, want %v", captures[0].Tool, diag.ToolTy)
	}
}

func TestRunAllEmitsStatusEvents(t *testing.T) {
	specs := []Spec{{Tool: diag.ToolTy, Bin: "checkdiff-no-such-binary"}}
	events := make(chan Event, 8)

	if _, err := RunAll(context.Background(), specs, Options{Events: events}); err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	close(events)

	var statuses []Status
	for ev := range events {
		if ev.Tool != diag.ToolTy {
			t.Fatalf("event for unexpected tool %v", ev.Tool)
		}
		statuses = append(statuses, ev.Status)
	}
	want := []Status{StatusQueued, StatusRunning, StatusFailed}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestRunAllUsesCachedOutput(t *testing.T) {
	cache := openTestCache(t)
	spec := Spec{Tool: diag.ToolTy, Bin: "checkdiff-no-such-binary"}
	cached := []byte("error:/proj/foo.py:10:incompatible types\n")
	if err := cache.Put(spec, nil, cached); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	captures, err := RunAll(context.Background(), []Spec{spec}, Options{Cache: cache})
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	if captures[0].Err != nil {
		t.Fatalf("expected cache hit to bypass invocation, got error: %v", captures[0].Err)
	}
	if string(captures[0].Output) != string(cached) {
		t.Fatalf("output = %q, want cached %q", captures[0].Output, cached)
	}
}

func TestRunAllHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunAll(ctx, []Spec{{Tool: diag.ToolTy, Bin: "checkdiff-no-such-binary"}}, Options{})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
