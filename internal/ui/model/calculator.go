// Package model provides the full-screen bubbletea front end.
package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/inbetween/internal/session"
	"github.com/palemoky/inbetween/internal/ui/common"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	inputHeight   = 2 // input line plus the help hint
)

// CalculatorModel wraps a session: every submitted line goes to
// session.Handle and the replies accumulate in a scrollable transcript.
type CalculatorModel struct {
	session *session.Session

	transcript []string
	prompt     string // prompt for the line being typed
	done       bool

	// UI 组件
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewCalculatorModel starts s and prepares the input line.
func NewCalculatorModel(s *session.Session) *CalculatorModel {
	ti := textinput.New()
	ti.Placeholder = "AS, 10H, DONE, BIG, SKIP..."
	ti.CharLimit = 16
	ti.Width = 30
	ti.Focus()

	m := &CalculatorModel{
		session:  s,
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight-inputHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.apply(s.Start())
	return m
}

func (m *CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-inputHeight, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			// 与输入流关闭等价
			m.apply(m.session.Close())
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the typed line to the session
func (m *CalculatorModel) submit() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	line := m.input.Value()
	m.input.Reset()

	m.transcript = append(m.transcript, m.prompt+line)
	m.apply(m.session.Handle(line))
	if m.done {
		return tea.Quit
	}
	return nil
}

func (m *CalculatorModel) apply(r session.Reply) {
	if r.Output != "" {
		m.transcript = append(m.transcript, r.Output)
	}
	m.prompt = r.Prompt
	m.input.Prompt = r.Prompt
	m.done = r.Done
	m.refresh()
}

func (m *CalculatorModel) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m *CalculatorModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.done {
		return sb.String()
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(common.NoteStyle.Render("PgUp/PgDn scroll • Ctrl+C quit"))
	return sb.String()
}

// Transcript returns everything printed so far.
func (m *CalculatorModel) Transcript() string {
	return strings.Join(m.transcript, "\n")
}

// Done reports whether the session has ended.
func (m *CalculatorModel) Done() bool {
	return m.done
}
