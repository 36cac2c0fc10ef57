package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/inbetween/internal/deck"
	"github.com/palemoky/inbetween/internal/session"
)

func newTestModel() *CalculatorModel {
	return NewCalculatorModel(session.New(deck.New(), nil, session.Options{}))
}

// typeLine enters text and presses enter
func typeLine(m *CalculatorModel, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewCalculatorModel(t *testing.T) {
	t.Parallel()

	m := newTestModel()

	require.NotNil(t, m)
	assert.Contains(t, m.Transcript(), "Card format:")
	assert.Equal(t, "Seen card (DONE to stop): ", m.input.Prompt)
	assert.Equal(t, 16, m.input.CharLimit)
	assert.False(t, m.Done())
	assert.NotNil(t, m.Init())
}

func TestCalculatorModel_Round(t *testing.T) {
	t.Parallel()

	m := newTestModel()

	assert.Nil(t, typeLine(m, "DONE"))
	assert.Nil(t, typeLine(m, "5C"))
	assert.Nil(t, typeLine(m, "9D"))

	transcript := m.Transcript()
	assert.Contains(t, transcript, "Enter Gate Card 1: 5C")
	assert.Contains(t, transcript, "EV (per 1 unit bet): -0.6400")
	assert.Empty(t, m.input.Value(), "input is cleared after submit")

	assert.Nil(t, typeLine(m, "SKIP"))
	assert.True(t, isQuit(typeLine(m, "QUIT")))
	assert.True(t, m.Done())
	assert.Contains(t, m.Transcript(), "Done.")
}

func TestCalculatorModel_CtrlCEndsSession(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	typeLine(m, "DONE")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.Done())
	assert.Contains(t, m.Transcript(), "Done.")
}

func TestCalculatorModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 38, m.viewport.Height)
	assert.Contains(t, m.View(), "Seen card")
}

func TestCalculatorModel_ViewAfterDone(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	for _, line := range []string{"DONE", "5C", "9D", "SKIP", "Q"} {
		typeLine(m, line)
	}

	require.True(t, m.Done())
	assert.NotContains(t, m.View(), "Ctrl+C quit")
}
