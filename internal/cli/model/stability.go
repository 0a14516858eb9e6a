// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

const stabilityProgressWidth = 40

// StabilityRunner starts the sampling run and reports per-tick progress.
// It decouples the progress TUI from the use case layer.
type StabilityRunner func(ctx context.Context, progress func(tick, total int)) (entity.TestRecord, error)

// StabilityModel drives a live stability sampling run: a spinner and a
// progress bar fed by the sampler's one-second ticks.
type StabilityModel struct {
	spinner  spinner.Model
	progress progress.Model
	theme    *styles.Theme

	ctx    context.Context
	cancel context.CancelFunc
	runner StabilityRunner

	ticks  chan stabilityTickMsg
	result chan stabilityDoneMsg

	label string
	tick  int
	total int

	record   entity.TestRecord
	err      error
	done     bool
	canceled bool
}

type stabilityTickMsg struct {
	tick  int
	total int
}

type stabilityDoneMsg struct {
	record entity.TestRecord
	err    error
}

// NewStabilityModel creates a new stability progress model. The cancel func
// is invoked when the user aborts the run; the runner is then expected to
// return with the partial record.
func NewStabilityModel(ctx context.Context, cancel context.CancelFunc, theme *styles.Theme, runner StabilityRunner) StabilityModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Accent)),
		progress.WithWidth(stabilityProgressWidth),
		progress.WithoutPercentage(),
	)

	return StabilityModel{
		spinner:  styles.NewDefaultSpinner(theme),
		progress: bar,
		theme:    theme,
		ctx:      ctx,
		cancel:   cancel,
		runner:   runner,
		ticks:    make(chan stabilityTickMsg, 64),
		result:   make(chan stabilityDoneMsg, 1),
		label:    "Sampling signal stability",
	}
}

// WithLabel overrides the label shown while the run is in flight.
func (m StabilityModel) WithLabel(label string) StabilityModel {
	m.label = label
	return m
}

// Init implements tea.Model.
func (m StabilityModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startRun, m.waitForEvent)
}

// startRun executes the sampling on its own goroutine via tea's command
// runner. Ticks are forwarded non-blocking so a stalled UI never stalls the
// sampler.
func (m StabilityModel) startRun() tea.Msg {
	record, err := m.runner(m.ctx, func(tick, total int) {
		select {
		case m.ticks <- stabilityTickMsg{tick: tick, total: total}:
		default:
		}
	})
	m.result <- stabilityDoneMsg{record: record, err: err}
	return nil
}

// waitForEvent relays the next tick or the final result into the program.
func (m StabilityModel) waitForEvent() tea.Msg {
	select {
	case t := <-m.ticks:
		return t
	case d := <-m.result:
		return d
	}
}

// Update implements tea.Model.
func (m StabilityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.canceled = true
			m.cancel()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stabilityTickMsg:
		m.tick = msg.tick
		m.total = msg.total
		return m, m.waitForEvent

	case stabilityDoneMsg:
		m.done = true
		m.record = msg.record
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m StabilityModel) View() string {
	if m.done {
		// Final output is rendered by the command after the program exits.
		return ""
	}

	t := m.theme
	label := m.label
	if m.canceled {
		label = "Stopping"
	}
	head := lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", t.Normal.Render(label))

	if m.total == 0 {
		return head + "\n"
	}

	pct := float64(m.tick) / float64(m.total)
	bar := m.progress.ViewAs(pct)
	count := t.Subtle.Render(fmt.Sprintf("%d/%ds", m.tick, m.total))
	hint := t.Subtle.Render("q to stop early")

	return lipgloss.JoinVertical(lipgloss.Left, head, "", bar+" "+count, "", hint) + "\n"
}

// Record returns the finished (possibly partial) test record.
func (m StabilityModel) Record() entity.TestRecord {
	return m.record
}

// Err returns the sampling error, nil after a clean run.
func (m StabilityModel) Err() error {
	return m.err
}

// Canceled reports whether the user aborted the run.
func (m StabilityModel) Canceled() bool {
	return m.canceled
}

// Ensure interface compliance.
var _ tea.Model = (*StabilityModel)(nil)
