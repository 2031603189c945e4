// Package ui provides kickstart's terminal presentation: theming, headless
// detection, build progress, the create wizard and result rendering.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark-background variants).
const (
	ColorPrimary   = "#F59E0B"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#FBBF24"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Palette holds the hex colors a Theme renders with.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries color settings shared by every UI component.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme returns the default theme. With noColor set every style renders
// as plain text.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
}

// Style returns a foreground style for color, or a plain style when color
// output is disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t == nil || t.NoColor || color == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// huhTheme maps the brand colors onto a huh form theme.
func (t *Theme) huhTheme() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}
	h := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#B45309", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	h.Focused.Base = h.Focused.Base.BorderForeground(border)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.Option = h.Focused.Option.Foreground(text)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base

	return h
}
