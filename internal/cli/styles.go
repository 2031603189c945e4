package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// defaultTermWidth is used when the output is not a terminal.
const defaultTermWidth = 80

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}).Bold(true)
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// kvPair is one aligned label/value line.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns values after the longest key.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%s  %s", cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return strings.Join(lines, "\n")
}

// termWidth returns the column count of w when it is a terminal.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// applyNoColor strips colors from the package styles.
func applyNoColor() {
	for _, s := range []*lipgloss.Style{&cliSuccess, &cliWarn, &cliError, &cliMuted, &cliPrimary} {
		*s = s.UnsetForeground()
	}
}
