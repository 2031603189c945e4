package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kickstart-dev/kickstart/internal/core/project"
)

// BuildProgress renders builder phase events. On a terminal, phases that do
// not spawn processes show an animated spinner and every finished phase
// prints a progress bar line. Phases that run commands only print a header,
// since the child processes write to the same terminal. Headless output is
// one plain line per event.
type BuildProgress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer

	mu      sync.Mutex
	bar     progress.Model
	total   int
	current int
	spinner *phaseSpinner
}

// NewBuildProgress creates a BuildProgress writing to w.
func NewBuildProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *BuildProgress {
	if theme == nil {
		theme = NewTheme(false)
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
	if !theme.NoColor {
		bar = progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(24),
			progress.WithoutPercentage(),
		)
	}
	return &BuildProgress{
		theme:    theme,
		headless: hm,
		writer:   w,
		bar:      bar,
		total:    len(project.Phases()),
	}
}

var _ project.Reporter = (*BuildProgress)(nil)

func (b *BuildProgress) plain() bool {
	return b.headless.IsHeadless() || b.theme.NoColor
}

// PhaseStarted implements project.Reporter.
func (b *BuildProgress) PhaseStarted(p project.Phase) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.plain() {
		b.printf("[%d/%d] %s\n", b.current+1, b.total, p.Title())
		return
	}
	if p.RunsCommands() {
		b.printf("%s %s\n", b.theme.Style(b.theme.Colors.Primary).Render("▸"), p.Title())
		return
	}
	b.spinner = newPhaseSpinner(b.theme, p.Title(), b.writer)
}

// PhaseFinished implements project.Reporter.
func (b *BuildProgress) PhaseFinished(p project.Phase, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopSpinner()
	b.current++

	if b.plain() {
		if err != nil {
			b.printf("[%d/%d] %s failed: %v\n", b.current, b.total, p.Title(), err)
		}
		return
	}

	mark := b.theme.Style(b.theme.Colors.Success).Render("✓")
	if err != nil {
		mark = b.theme.Style(b.theme.Colors.Error).Render("✗")
	}
	b.printf("%s %s %s\n", b.bar.ViewAs(b.fraction()), mark, p.Title())
	if err != nil {
		b.printf("  %s\n", b.theme.Style(b.theme.Colors.Error).Render(err.Error()))
	}
}

// PhaseSkipped implements project.Reporter.
func (b *BuildProgress) PhaseSkipped(p project.Phase) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	if b.plain() {
		b.printf("[%d/%d] %s skipped\n", b.current, b.total, p.Title())
		return
	}
	b.printf("%s %s %s\n", b.bar.ViewAs(b.fraction()),
		b.theme.Style(b.theme.Colors.Muted).Render("-"),
		b.theme.Style(b.theme.Colors.Muted).Render(p.Title()+" (skipped)"))
}

// StepFailed implements project.Reporter.
func (b *BuildProgress) StepFailed(f project.StepFailure) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := fmt.Sprintf("step %d failed (%s): %s", f.Index, f.Command, f.Err)
	if b.plain() {
		b.printf("  warning: %s\n", msg)
		return
	}
	b.printf("  %s %s\n", b.theme.Style(b.theme.Colors.Warning).Render("!"), msg)
}

// Close stops any running spinner.
func (b *BuildProgress) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopSpinner()
}

func (b *BuildProgress) fraction() float64 {
	if b.total == 0 {
		return 1
	}
	return float64(b.current) / float64(b.total)
}

func (b *BuildProgress) stopSpinner() {
	if b.spinner != nil {
		b.spinner.Stop()
		b.spinner = nil
	}
}

func (b *BuildProgress) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.writer, format, args...)
}

// --- phaseSpinner ---

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.Style(theme.Colors.Primary)
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// phaseSpinner runs a spinner program until Stop. It never reads stdin so
// it cannot steal input from child processes.
type phaseSpinner struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func newPhaseSpinner(theme *Theme, title string, w io.Writer) *phaseSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s := &phaseSpinner{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = p.Run()
	}()
	return s
}

// Stop halts the spinner and waits for the program to exit.
func (s *phaseSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		<-s.done
	})
}
