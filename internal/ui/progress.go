package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teehex/teehex/internal/core/project"
)

// StepReporter shows generation progress. Interactive sessions get an
// animated bar; headless sessions get one line per step.
type StepReporter struct {
	theme    *Theme
	headless bool
	writer   io.Writer

	mu  sync.Mutex
	bar *interactiveProgressBar
}

var _ project.Reporter = (*StepReporter)(nil)

// NewStepReporter creates a StepReporter writing to w.
func NewStepReporter(theme *Theme, hm *HeadlessManager, w io.Writer) *StepReporter {
	return &StepReporter{
		theme:    theme,
		headless: hm.IsHeadless() || theme.NoColor,
		writer:   w,
	}
}

// StepStarted implements project.Reporter.
func (r *StepReporter) StepStarted(step project.Step, index, total int) {
	if r.headless {
		_, _ = fmt.Fprintf(r.writer, "%s [%d/%d] %s\n", r.theme.SymProgress(), index+1, total, step.Title())
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		r.bar = newInteractiveProgressBar(r.theme, step.Title(), total, r.writer)
		return
	}
	r.bar.SetTitle(step.Title())
}

// StepFinished implements project.Reporter.
func (r *StepReporter) StepFinished(step project.Step, index, total int, err error) {
	if r.headless {
		if err != nil {
			_, _ = fmt.Fprintf(r.writer, "%s [%d/%d] %s: %v\n", r.theme.SymError(), index+1, total, step.Title(), err)
		}
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		return
	}
	r.bar.Increment(1)
	if err != nil || index == total-1 {
		r.bar.Done()
		r.bar = nil
	}
}

// Close stops a bar left running by an interrupted run. It is safe to call
// more than once.
func (r *StepReporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}
}

// progressIncrMsg is sent to increment the progress bar.
type progressIncrMsg int

// progressTitleMsg is sent to update the progress bar title.
type progressTitleMsg string

// progressDoneMsg is sent to complete the progress bar.
type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the step progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

// interactiveProgressBar drives a progressModel in its own tea.Program.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total),
		tea.WithOutput(w),
		tea.WithInput(nil),
	)
	pb := &interactiveProgressBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return pb
}

// Increment advances the progress by n.
func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done stops the program and waits for it to restore the terminal.
func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}
