package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/hdmiprobe/internal/cli/styles"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete everything?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_YesThenConfirm(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete everything?")

	m, _ = m.Update(keyMsg('y'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.True(t, m.Result())
}

func TestConfirmModel_EscapeCancels(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete everything?")

	m, _ = m.Update(keyMsg('y'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_ViewShowsMessage(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Clear report history?")

	view := m.View()

	assert.Contains(t, view, "Clear report history?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
}
