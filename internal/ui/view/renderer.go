// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/inbetween/internal/card"
	"github.com/palemoky/inbetween/internal/deck"
	"github.com/palemoky/inbetween/internal/odds"
	"github.com/palemoky/inbetween/internal/ui/common"
)

// Options controls how numbers and styles are rendered.
type Options struct {
	Color           bool
	PercentDecimals int
	EVDecimals      int
}

// Renderer turns deck snapshots and outcomes into printable blocks.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer. Non-positive precisions fall back to 2 and 4.
func NewRenderer(opts Options) *Renderer {
	if opts.PercentDecimals <= 0 {
		opts.PercentDecimals = 2
	}
	if opts.EVDecimals <= 0 {
		opts.EVDecimals = 4
	}
	return &Renderer{opts: opts}
}

// render applies style only when color output is enabled
func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) box(s string) string {
	if !r.opts.Color {
		return s
	}
	return common.BoxStyle.Render(s)
}

// Banner describes the card-token format.
func (r *Renderer) Banner() string {
	var sb strings.Builder
	sb.WriteString(r.render(common.TitleStyle, "In-Between Odds Calculator"))
	sb.WriteString("\n")
	sb.WriteString("Card format: AS, 10H, QD, KC (suits: C/D/H/S). 'T' also works for 10 (e.g., TS).")
	return sb.String()
}

// RoundHeader opens a new round.
func (r *Renderer) RoundHeader(remaining int) string {
	title := fmt.Sprintf("%s New Round %s", common.RoundRule, common.RoundRule)
	return "\n" + r.render(common.TitleStyle, title) + "\n" +
		fmt.Sprintf("Remaining drawable cards (before gate): %d", remaining)
}

// GateLine reports the two gate ranks after both have been removed.
func (r *Renderer) GateLine(r1, r2 card.Rank, remaining int) string {
	return fmt.Sprintf("Gate: %s and %s (Remaining after gate removed: %d)", r1, r2, remaining)
}

func (r *Renderer) share(n, total int, rate float64) string {
	return fmt.Sprintf("%d / %d = %.*f%%", n, total, r.opts.PercentDecimals, rate*100)
}

func (r *Renderer) ev(v float64) string {
	return fmt.Sprintf("EV (per 1 unit bet): %.*f", r.opts.EVDecimals, v)
}

// NonPairResult renders the in-between bet.
func (r *Renderer) NonPairResult(o odds.NonPairOutcome) string {
	var sb strings.Builder
	sb.WriteString(r.render(common.TitleStyle, "--- Result (Non-pair gate: bet IN-BETWEEN) ---"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Between range: (%s, %s)\n", o.Low, o.High)
	sb.WriteString(r.render(common.WinStyle, "Win (in-between):  "+r.share(o.Win, o.Total, o.WinRate())))
	sb.WriteString("\n")
	sb.WriteString(r.render(common.LoseStyle, "Edge (lose 2x):    "+r.share(o.Edge, o.Total, o.EdgeRate())))
	sb.WriteString("\n")
	sb.WriteString(r.render(common.LoseStyle, "Outside (lose 1x): "+r.share(o.Lose, o.Total, o.LoseRate())))
	sb.WriteString("\n")
	sb.WriteString(r.ev(o.EV()))
	if o.Adjacent() {
		sb.WriteString("\n")
		sb.WriteString(r.render(common.NoteStyle, "Note: Adjacent gate -> no ranks in-between, Win rate = 0%."))
	}
	return r.box(sb.String())
}

// PairResult renders the BIG/SMALL bet, both sides and the suggestion.
func (r *Renderer) PairResult(o odds.PairOutcome) string {
	var sb strings.Builder
	sb.WriteString(r.render(common.TitleStyle, "--- Result (Pair gate: bet BIG or SMALL) ---"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Gate rank: %s\n", o.Gate)
	sb.WriteString("If BIG (>):               " + r.share(o.BigWin, o.Total, o.BigWinRate()) + "\n")
	sb.WriteString("If SMALL (<):             " + r.share(o.SmallWin, o.Total, o.SmallWinRate()) + "\n")
	sb.WriteString("Triple same (=, lose 3x): " + r.share(o.Triple, o.Total, o.TripleRate()) + "\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "You chose: %s\n", o.Choice)
	sb.WriteString(r.render(common.WinStyle, "Win:               "+r.share(o.Win, o.Total, o.WinRate())))
	sb.WriteString("\n")
	sb.WriteString(r.render(common.LoseStyle, "Normal lose (1x):  "+r.share(o.Lose, o.Total, o.LoseRate())))
	sb.WriteString("\n")
	sb.WriteString(r.render(common.LoseStyle, "Triple lose (3x):  "+r.share(o.Triple, o.Total, o.TripleRate())))
	sb.WriteString("\n")
	sb.WriteString(r.ev(o.EV()))
	sb.WriteString("\n")
	sb.WriteString(r.render(common.NoteStyle, Suggestion(o.Suggestion())))
	return r.box(sb.String())
}

// Suggestion phrases which side of a pair gate has the better win rate.
func Suggestion(s odds.Suggestion) string {
	switch s {
	case odds.SuggestBig:
		return "Suggestion: BIG has higher win rate."
	case odds.SuggestSmall:
		return "Suggestion: SMALL has higher win rate."
	default:
		return "Suggestion: BIG and SMALL have the same win rate."
	}
}

// CardCounter renders the remaining count of every rank.
func (r *Renderer) CardCounter(h deck.Histogram) string {
	var sb strings.Builder

	var names []string
	for _, rank := range common.DisplayOrder {
		names = append(names, fmt.Sprintf("%-2s", rank.String()))
	}
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat(common.CounterRule, 3*len(common.DisplayOrder)-1) + "\n")

	var counts []string
	for _, rank := range common.DisplayOrder {
		counts = append(counts, fmt.Sprintf("%-2d", h.Count(rank)))
	}
	sb.WriteString(strings.Join(counts, "│") + "\n")
	fmt.Fprintf(&sb, "Remaining: %d", h.Total())

	return r.box(sb.String())
}

// Warning renders a recoverable input problem.
func (r *Renderer) Warning(msg string) string {
	return "  " + r.render(common.ErrorStyle, msg)
}

// Note renders a neutral hint.
func (r *Renderer) Note(msg string) string {
	return r.render(common.NoteStyle, msg)
}

// Prompt renders a prompt label.
func (r *Renderer) Prompt(label string) string {
	return r.render(common.PromptStyle, label)
}

// MenuHelp lists the post-round commands.
func (r *Renderer) MenuHelp() string {
	var sb strings.Builder
	sb.WriteString("ENTER  start the next round\n")
	sb.WriteString("ADD    add more seen cards\n")
	sb.WriteString("NEW    reset to a full deck, then add seen cards\n")
	sb.WriteString("COUNT  show the remaining cards per rank\n")
	sb.WriteString("QUIT   exit (Q also works)")
	return r.box(sb.String())
}
