package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/hdmiprobe/internal/cli/styles"
)

// ConfirmPrompt runs the yes/no dialog as its own program, for commands that
// need a single confirmation before acting.
type ConfirmPrompt struct {
	dialog styles.ConfirmModel
}

// NewConfirmPrompt creates a standalone confirmation prompt.
func NewConfirmPrompt(theme *styles.Theme, message string) ConfirmPrompt {
	return ConfirmPrompt{dialog: styles.NewConfirm(theme, message)}
}

// Init implements tea.Model.
func (m ConfirmPrompt) Init() tea.Cmd {
	return m.dialog.Init()
}

// Update implements tea.Model.
func (m ConfirmPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.dialog.Canceled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m ConfirmPrompt) View() string {
	if m.dialog.Done() {
		return ""
	}
	return m.dialog.View()
}

// Confirmed reports whether the user selected Yes.
func (m ConfirmPrompt) Confirmed() bool {
	return m.dialog.Result()
}

var _ tea.Model = (*ConfirmPrompt)(nil)
