// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/inbetween/internal/card"
)

// Separators used by the plain-text layout.
const (
	RoundRule   = "=========="
	CounterRule = "─"
)

// Lipgloss Styles - shared across console and full-screen modes
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	LoseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	NoteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	DisplayOrder = []card.Rank{card.RankA, card.Rank2, card.Rank3, card.Rank4, card.Rank5, card.Rank6, card.Rank7, card.Rank8, card.Rank9, card.Rank10, card.RankJ, card.RankQ, card.RankK}
)
