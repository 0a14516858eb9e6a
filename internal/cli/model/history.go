package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

type historyView int

const (
	historyViewList historyView = iota
	historyViewDetail
)

const historyTableWidth = 68

// HistoryModel is the Bubble Tea model for the interactive report history
// browser: a table of stored runs, with a scrollable full-report detail view.
type HistoryModel struct {
	table    table.Model
	viewport viewport.Model
	help     help.Model
	keys     styles.HistoryKeyMap

	reports []*entity.StoredReport
	view    historyView
	loading bool
	err     error
	width   int
	height  int

	ctx       context.Context
	historyUC *usecase.BrowseHistoryUseCase
	renderer  *styles.ReportRenderer
	histStyle *styles.HistoryRenderer
	theme     *styles.Theme
	max       int
}

// NewHistoryModel creates a new history browser model.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, historyUC *usecase.BrowseHistoryUseCase, max int) HistoryModel {
	return HistoryModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultHistoryKeyMap(),
		loading:   true,
		width:     80,
		height:    24,
		ctx:       ctx,
		historyUC: historyUC,
		renderer:  styles.NewReportRenderer(theme),
		histStyle: styles.NewHistoryRenderer(theme),
		theme:     theme,
		max:       max,
	}
}

// reportsLoadedMsg is sent when stored reports are loaded.
type reportsLoadedMsg struct {
	reports []*entity.StoredReport
	err     error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.loadReports
}

// loadReports fetches recent stored reports.
func (m HistoryModel) loadReports() tea.Msg {
	out, err := m.historyUC.List(m.ctx, usecase.ListHistoryInput{Max: m.max})
	if err != nil {
		return reportsLoadedMsg{err: err}
	}
	return reportsLoadedMsg{reports: out.Reports}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateTable()
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 4

	case tea.KeyMsg:
		if m.view == historyViewDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)

	case reportsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.reports = msg.reports
			m.updateTable()
		}
	}

	return m, nil
}

func (m HistoryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		if report := m.selectedReport(); report != nil {
			m.view = historyViewDetail
			m.viewport = viewport.New(m.width-2, m.height-4)
			content := lipgloss.JoinVertical(
				lipgloss.Left,
				m.histStyle.RenderEntry(report),
				"",
				m.renderer.Render(report.Report),
			)
			m.viewport.SetContent(content)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m HistoryModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = historyViewList
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

// selectedReport returns the report under the table cursor.
func (m HistoryModel) selectedReport() *entity.StoredReport {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.reports) {
		return nil
	}
	return m.reports[idx]
}

// updateTable rebuilds the table from the loaded reports.
func (m *HistoryModel) updateTable() {
	if len(m.reports) == 0 {
		return
	}

	rows := make([]table.Row, len(m.reports))
	for i, r := range m.reports {
		rows[i] = styles.HistoryRow(r)
	}

	tableHeight := len(rows)
	if tableHeight > m.height-8 {
		tableHeight = m.height - 8
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = styles.NewStyledTable(m.theme, styles.HistoryTableColumns(), rows, historyTableWidth, tableHeight)
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(styles.NewLoading(t, "Loading history...").View())
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}

	if m.view == historyViewDetail {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewport.View(),
			m.help.View(detailKeys(m.keys)),
		)
	}

	if len(m.reports) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			t.Title.Render("Report History"),
			"",
			t.Subtle.Render("No reports recorded yet. Run a test with saving enabled first."),
		)
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Title.Render("Report History"),
		" ",
		t.CountBadge(len(m.reports), "report"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// detailKeyMap narrows the keymap to what the detail view answers to.
type detailKeyMap struct {
	styles.HistoryKeyMap
}

func detailKeys(keys styles.HistoryKeyMap) detailKeyMap {
	return detailKeyMap{keys}
}

// ShortHelp returns keybindings to show in compact help.
func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// Ensure interface compliance.
var _ tea.Model = (*HistoryModel)(nil)
