package project

import (
	"fmt"
	"io"
)

// Reporter receives build progress events. Calls arrive from the goroutine
// running Build, in phase order.
type Reporter interface {
	PhaseStarted(p Phase)
	PhaseFinished(p Phase, err error)
	PhaseSkipped(p Phase)
	StepFailed(f StepFailure)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) PhaseStarted(Phase)         {}
func (NopReporter) PhaseFinished(Phase, error) {}
func (NopReporter) PhaseSkipped(Phase)         {}
func (NopReporter) StepFailed(StepFailure)     {}

// consoleReporter writes one plain line per event.
type consoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a Reporter that prints plain progress lines to w.
func NewConsoleReporter(w io.Writer) Reporter {
	return &consoleReporter{w: w}
}

func (c *consoleReporter) PhaseStarted(p Phase) {
	fmt.Fprintf(c.w, "==> %s\n", p.Title())
}

func (c *consoleReporter) PhaseFinished(p Phase, err error) {
	if err != nil {
		fmt.Fprintf(c.w, "  x %s: %v\n", p.Title(), err)
	}
}

func (c *consoleReporter) PhaseSkipped(p Phase) {
	fmt.Fprintf(c.w, "  - %s (skipped)\n", p.Title())
}

func (c *consoleReporter) StepFailed(f StepFailure) {
	fmt.Fprintf(c.w, "  ! step %d %q failed in %s: %v\n", f.Index, f.Command, f.Dir, f.Err)
}
