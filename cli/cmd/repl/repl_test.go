package repl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/manifest"
)

func testModel(t *testing.T) model {
	t.Helper()

	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(context.Background(), manifest.Example(), history, log.Logger{})
}

func typeText(m model, s string) model {
	for _, r := range s {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func TestRunWithoutTemplates(t *testing.T) {
	require.ErrorIs(t, Run(context.Background(), nil, t.TempDir(), log.Logger{}), ErrNoTemplates)
}

func TestExecuteInputRecordsHistory(t *testing.T) {
	m := testModel(t)

	m = typeText(m, "build --target x86")
	m, cmd := m.executeInput()

	assert.NotNil(t, cmd)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, []HistoryEntry{{Line: "build --target x86", Mode: modeParse}}, m.history.Entries())
}

func TestToggleModePreservesInput(t *testing.T) {
	m := testModel(t)

	m = typeText(m, "run")
	m, _ = m.toggleMode()
	assert.Equal(t, modeCtrl, m.mode)
	assert.Empty(t, m.input.Value())

	m = typeText(m, "tree")
	m, _ = m.toggleMode()
	assert.Equal(t, modeParse, m.mode)
	assert.Equal(t, "run", m.input.Value())
}

func TestCompletionCycle(t *testing.T) {
	m := testModel(t)

	m = typeText(m, "build --j")
	require.NotEmpty(t, m.matches)
	assert.Equal(t, "--jobs", m.matches[0].Str)

	m, _ = m.cycle(1)
	assert.Equal(t, "build --jobs", m.input.Value())
}

func TestHelpView(t *testing.T) {
	m := testModel(t)

	assert.Contains(t, m.helpView(nil), "tree")
	assert.Contains(t, m.helpView([]string{"build"}), "--target")
	assert.Contains(t, m.helpView([]string{"deploy"}), "Unknown command: deploy")
}

func TestQuitCommand(t *testing.T) {
	m := testModel(t)

	m, _ = m.executeCommand("quit")
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestCycleBackwardAndRestore(t *testing.T) {
	m := testModel(t)

	m = typeText(m, "build --t")
	require.Greater(t, len(m.matches), 1)

	last := m.matches[len(m.matches)-1].Str

	m, _ = m.cycle(-1)
	assert.True(t, m.tabActive)
	assert.Equal(t, "build "+last, m.input.Value())

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.tabActive)
	assert.Equal(t, "build --t", m.input.Value())
	assert.Equal(t, modeParse, m.mode)
}

func TestRecallHistory(t *testing.T) {
	m := testModel(t)

	for _, e := range []HistoryEntry{
		{Line: "run", Mode: modeParse},
		{Line: "tree", Mode: modeCtrl},
		{Line: "build", Mode: modeParse},
	} {
		_, err := m.history.WriteWithMode(e.Line, e.Mode)
		require.NoError(t, err)
	}

	m.historyIdx = m.history.Len()

	steps := []struct {
		step     int
		sameMode bool
		line     string
		mode     inputMode
	}{
		{-1, false, "build", modeParse},
		{-1, false, "tree", modeCtrl},
		{-1, false, "run", modeParse},
		{1, true, "build", modeParse},
		{1, false, "", modeParse},
	}

	for _, s := range steps {
		m, _ = m.recall(s.step, s.sameMode)
		assert.Equal(t, s.line, m.input.Value())
		assert.Equal(t, s.mode, m.mode)
	}
}

func TestStatusLine(t *testing.T) {
	m := testModel(t)
	assert.Contains(t, m.statusLine(), "Type a command line")

	m = typeText(m, "run prog ")
	assert.Equal(t, "✔ valid → run", m.statusLine())
}
