package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrewbrown/cornertable/internal/generator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	depthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tickMsg drives the elapsed-time display.
type tickMsg time.Time

// progressMsg carries one generator.WithProgressFunc callback into the TUI.
type progressMsg struct {
	depth  int
	popped int
	filled int
}

// doneMsg signals that the generation run (or its failure) has finished.
type doneMsg struct {
	stats generator.Stats
	err   error
}

// progressModel drives the live display for `cornertable generate`.
type progressModel struct {
	progressCh chan progressMsg
	doneCh     chan doneMsg

	depth  int
	popped int
	filled int

	startTime time.Time
	elapsed   time.Duration

	finished bool
	stats    generator.Stats
	err      error
}

func newProgressModel(progressCh chan progressMsg, doneCh chan doneMsg) *progressModel {
	return &progressModel{progressCh: progressCh, doneCh: doneCh, startTime: time.Now()}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.waitForProgress(), m.waitForDone())
}

func (m *progressModel) tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *progressModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.progressCh
		if !ok {
			return nil
		}
		return p
	}
}

func (m *progressModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		d := <-m.doneCh
		return d
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		m.elapsed = time.Since(m.startTime)
		if m.finished {
			return m, nil
		}
		return m, m.tickCmd()

	case progressMsg:
		m.depth = msg.depth
		m.popped = msg.popped
		m.filled = msg.filled
		return m, m.waitForProgress()

	case doneMsg:
		m.finished = true
		m.stats = msg.stats
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generating corner heuristic table"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Depth:  %s\n", depthStyle.Render(fmt.Sprintf("%d", m.depth))))
	b.WriteString(fmt.Sprintf("Popped: %d\n", m.popped))
	b.WriteString(fmt.Sprintf("Filled: %s\n", statusStyle.Render(fmt.Sprintf("%d / %d", m.filled, 88_179_840))))
	b.WriteString(fmt.Sprintf("Elapsed: %s\n", m.elapsed.Round(time.Second)))

	if m.finished {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("failed: %v", m.err)))
		} else {
			b.WriteString(statusStyle.Render(fmt.Sprintf("done: max depth %d, %d pops", m.stats.MaxDepth, m.stats.Pops)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))
	b.WriteString("\n")

	return b.String()
}
