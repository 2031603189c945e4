package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// StepKind distinguishes directory changes from shell commands.
type StepKind string

const (
	// StepRun executes Command through the shell.
	StepRun StepKind = "run"
	// StepChangeDir moves the execution cursor to Path without spawning.
	StepChangeDir StepKind = "cd"
)

// shellOperators makes a cd line a shell command instead of a cursor move.
const shellOperators = "&|;<>`$(){}*?~\n"

// Step is one parsed init or post-init entry.
type Step struct {
	Kind StepKind `json:"kind"`
	// Command is set for StepRun.
	Command string `json:"command,omitempty"`
	// Path is set for StepChangeDir; empty returns to the project root.
	Path string `json:"path,omitempty"`
}

// RunCommand returns a StepRun for command.
func RunCommand(command string) Step {
	return Step{Kind: StepRun, Command: command}
}

// ChangeDirectory returns a StepChangeDir for path.
func ChangeDirectory(path string) Step {
	return Step{Kind: StepChangeDir, Path: path}
}

// ParseStep classifies a raw step line. A line is a directory change when
// its first token is cd, it has at most one argument (optionally quoted)
// and it contains no shell operators. Everything else runs in the shell.
func ParseStep(line string) Step {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 || fields[0] != "cd" {
		return RunCommand(trimmed)
	}
	if strings.ContainsAny(trimmed, shellOperators) {
		return RunCommand(trimmed)
	}

	arg := strings.TrimSpace(trimmed[len("cd"):])
	switch {
	case arg == "":
		return ChangeDirectory("")
	case len(arg) >= 2 && (arg[0] == '"' || arg[0] == '\'') && arg[len(arg)-1] == arg[0]:
		arg = arg[1 : len(arg)-1]
		if strings.ContainsAny(arg, `"'`) {
			return RunCommand(trimmed)
		}
	case strings.ContainsAny(arg, " \t\"'"), arg == "-":
		return RunCommand(trimmed)
	}
	return ChangeDirectory(arg)
}

// ParseSteps parses the template lines in order, then substitutes the
// project name into each command or path. A name with spaces or shell
// characters never changes how a line is classified.
func ParseSteps(lines []string, name string) []Step {
	steps := make([]Step, 0, len(lines))
	for _, line := range lines {
		steps = append(steps, ParseStep(line).withName(name))
	}
	return steps
}

func (s Step) withName(name string) Step {
	s.Command = ReplacePlaceholders(s.Command, name)
	s.Path = ReplacePlaceholders(s.Path, name)
	return s
}

// String renders the step the way it would appear in a template.
func (s Step) String() string {
	if s.Kind == StepChangeDir {
		if s.Path == "" {
			return "cd"
		}
		return "cd " + s.Path
	}
	return s.Command
}

// next returns the cursor after applying a change-directory step. Relative
// paths, including "..", resolve against cursor.
func (s Step) next(root, cursor string) string {
	switch {
	case s.Path == "":
		return root
	case filepath.IsAbs(s.Path):
		return filepath.Clean(s.Path)
	default:
		return filepath.Join(cursor, s.Path)
	}
}

// UnmarshalJSON accepts both the tagged object form and a bare step line.
func (s *Step) UnmarshalJSON(data []byte) error {
	var line string
	if err := json.Unmarshal(data, &line); err == nil {
		*s = ParseStep(line)
		return nil
	}

	type plain Step
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode step: %w", err)
	}
	switch p.Kind {
	case StepRun, StepChangeDir:
	default:
		return fmt.Errorf("decode step: unknown kind %q", p.Kind)
	}
	*s = Step(p)
	return nil
}
