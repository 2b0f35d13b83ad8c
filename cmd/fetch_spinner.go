package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerGlyphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	spinnerLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	spinnerAgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Faint(true)
)

type fetchDoneMsg struct {
	err error
}

// fetchSpinnerModel animates a spinner while a fetch runs, with the elapsed
// time alongside once the request takes more than a beat.
type fetchSpinnerModel struct {
	spinner spinner.Model
	label   string
	fetch   tea.Cmd
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newFetchSpinnerModel(label string, fetch tea.Cmd) fetchSpinnerModel {
	return fetchSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(spinnerGlyphStyle),
		),
		label:   label,
		fetch:   fetch,
		started: time.Now(),
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	view := m.spinner.View() + " " + spinnerLabelStyle.Render(m.label)
	if m.elapsed >= time.Second {
		view += " " + spinnerAgeStyle.Render(fmt.Sprintf("(%ds)", int(m.elapsed.Seconds())))
	}

	return view
}

// runFetchSpinner shows a spinner on output while fetch runs; it returns the
// fetch error once done.
func runFetchSpinner(ctx context.Context, output io.Writer, label string, fetch func(context.Context) error) error {
	program := tea.NewProgram(
		newFetchSpinnerModel(label, func() tea.Msg {
			return fetchDoneMsg{err: fetch(ctx)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
