package ui

import "errors"

var (
	// ErrCancelled is returned when the user aborts an interactive prompt.
	ErrCancelled = errors.New("cancelled by user")

	// ErrHeadlessNoDefaults is returned when a prompt is needed in headless
	// mode and no default value was supplied for it.
	ErrHeadlessNoDefaults = errors.New("headless mode: missing value and no default")
)
