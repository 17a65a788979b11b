package runner

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"checkdiff/internal/diag"
)

// Status describes a checker's progress within a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusRunning
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Event reports a checker status change, consumed by the progress UI.
type Event struct {
	Tool   diag.Tool
	Status Status
}

// Capture holds one checker's fully captured output. Output is the
// combined stdout and stderr of the terminated process; the engine is only
// handed complete captures, never streams.
type Capture struct {
	Tool     diag.Tool
	Output   []byte
	Err      error
	Duration time.Duration
}

// Options configure a run across all requested checkers.
type Options struct {
	Targets []string
	Jobs    int           // max parallel checkers, 0 = GOMAXPROCS
	Timeout time.Duration // per checker, 0 = none
	Cache   *Cache        // optional raw-output cache
	Events  chan<- Event  // optional progress sink
}

// RunAll invokes every checker and returns one Capture per spec, in spec
// order. Checkers run in parallel, bounded by Options.Jobs.
//
// A nonzero exit is data, not failure: checkers exit nonzero whenever they
// report diagnostics, and an empty capture from a failed invocation is
// legitimate input downstream. Only start failures (binary not found,
// context cancelled) set Capture.Err; surfacing those to the user is this
// layer's job, never the engine's.
func RunAll(ctx context.Context, specs []Spec, opts Options) ([]Capture, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, spec := range specs {
		emit(opts.Events, Event{Tool: spec.Tool, Status: StatusQueued})
	}

	// Result slots are indexed per goroutine, no mutex needed.
	results := make([]Capture, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(specs)))

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Events, Event{Tool: spec.Tool, Status: StatusRunning})
			results[i] = runOne(gctx, spec, opts)

			status := StatusDone
			if results[i].Err != nil {
				status = StatusFailed
			}
			emit(opts.Events, Event{Tool: spec.Tool, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runOne(ctx context.Context, spec Spec, opts Options) Capture {
	start := time.Now()

	if opts.Cache != nil {
		if out, ok := opts.Cache.Get(spec, opts.Targets); ok {
			return Capture{Tool: spec.Tool, Output: out, Duration: time.Since(start)}
		}
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	argv := spec.CommandLine(opts.Targets)
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()

	capture := Capture{Tool: spec.Tool, Output: out, Duration: time.Since(start)}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		capture.Err = err
	}

	if capture.Err == nil && opts.Cache != nil {
		// Cache write failures are not worth aborting a run over.
		_ = opts.Cache.Put(spec, opts.Targets, capture.Output)
	}
	return capture
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
