// Package shell runs command strings through the platform shell with
// inherited standard streams. The setup pipeline treats each invocation as
// opaque: only the exit status matters.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
)

// Executor runs shell command strings.
type Executor interface {
	// Run executes command with dir as its working directory. An empty dir
	// inherits the current working directory. A non-zero exit status is
	// returned as an error wrapping *exec.ExitError.
	Run(ctx context.Context, dir, command string) error
}

// Streams are the standard streams handed to child processes.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// InheritedStreams returns the current process's standard streams.
func InheritedStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// commandExecutor is the concrete Executor backed by os/exec.
type commandExecutor struct {
	streams Streams
	logger  *slog.Logger
}

// NewExecutor creates an Executor that attaches the given streams to every
// child process.
func NewExecutor(streams Streams, logger *slog.Logger) Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &commandExecutor{streams: streams, logger: logger}
}

// Run executes command via "sh -c" (or "cmd /C" on Windows).
func (e *commandExecutor) Run(ctx context.Context, dir, command string) error {
	name, args := shellInvocation(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.streams.Stdin
	cmd.Stdout = e.streams.Stdout
	cmd.Stderr = e.streams.Stderr

	e.logger.Debug("exec", "command", command, "dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%q exited with status %d: %w", command, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

// shellInvocation returns the interpreter and arguments for command.
func shellInvocation(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// ExitCode extracts the child exit status from an error returned by Run.
// It returns -1 when err did not come from a process exit.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
