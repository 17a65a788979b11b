package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"checkdiff/internal/runner"
	"checkdiff/internal/ui"
)

type runOutcome struct {
	captures []runner.Capture
	err      error
}

// runWithUI invokes the checkers under a Bubble Tea progress program fed
// by runner events.
func runWithUI(ctx context.Context, title string, specs []runner.Spec, opts runner.Options) ([]runner.Capture, error) {
	events := make(chan runner.Event, 64)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		captures, err := runner.RunAll(ctx, specs, optsCopy)
		outcomeCh <- runOutcome{captures: captures, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, specs, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.captures, uiErr
	}
	return outcome.captures, outcome.err
}
