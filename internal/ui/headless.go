package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// Default keys understood by the create wizard.
const (
	DefaultKeyType = "type"
	DefaultKeyName = "name"
)

// HeadlessManager decides whether kickstart may prompt or animate, and
// holds the values used instead of prompts when it may not.
type HeadlessManager struct {
	forced   *bool
	defaults map[string]string
}

// NewHeadlessManager creates a HeadlessManager using TTY detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether stdin or stdout is not a terminal, unless
// ForceHeadless overrode detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(os.Stdin) || !isTerminal(os.Stdout)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// SetDefaults replaces the headless default values.
func (h *HeadlessManager) SetDefaults(defaults map[string]string) {
	h.defaults = nil
	for k, v := range defaults {
		if v == "" {
			continue
		}
		if h.defaults == nil {
			h.defaults = make(map[string]string, len(defaults))
		}
		h.defaults[k] = v
	}
}

// GetDefault returns the default stored for key.
func (h *HeadlessManager) GetDefault(key string) (string, bool) {
	v, ok := h.defaults[key]
	return v, ok
}

// Defaults returns a copy of all stored defaults.
func (h *HeadlessManager) Defaults() map[string]string {
	return maps.Clone(h.defaults)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
