// Package session drives the interactive calculator: seen-card entry, the
// gate round and the post-round menu, one input line at a time.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/palemoky/inbetween/internal/apperrors"
	"github.com/palemoky/inbetween/internal/card"
	"github.com/palemoky/inbetween/internal/deck"
	"github.com/palemoky/inbetween/internal/logger"
	"github.com/palemoky/inbetween/internal/ui/common"
	"github.com/palemoky/inbetween/internal/ui/view"
)

// Options 会话配置
type Options struct {
	StrictMenu  bool // reject unrecognised menu commands instead of continuing
	ShowCounter bool // print the remaining-rank table before every round
}

// Session owns the deck for the lifetime of the process.
type Session struct {
	id       string
	deck     *deck.Deck
	renderer *view.Renderer
	opts     Options

	phase  Phase
	round  round
	rounds int
}

// round holds the state of one play cycle; it is zeroed when a round starts.
type round struct {
	gate1 card.Card
	gate2 card.Card
}

// New creates a session over d. A nil renderer uses plain output.
func New(d *deck.Deck, renderer *view.Renderer, opts Options) *Session {
	if renderer == nil {
		renderer = view.NewRenderer(view.Options{})
	}
	return &Session{
		id:       uuid.NewString(),
		deck:     d,
		renderer: renderer,
		opts:     opts,
		phase:    PhaseSeenCards,
	}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Rounds returns how many rounds have been started.
func (s *Session) Rounds() int { return s.rounds }

// Deck returns the deck owned by the session.
func (s *Session) Deck() *deck.Deck { return s.deck }

// Start prints the banner and asks for the cards already seen.
func (s *Session) Start() Reply {
	logger.LogInfo("[%s] session started, %d cards in deck", s.id, s.deck.Remaining())
	s.phase = PhaseSeenCards
	return s.reply(s.renderer.Banner())
}

// Close handles end of input: the session ends gracefully at any phase.
func (s *Session) Close() Reply {
	if s.phase == PhaseDone {
		return Reply{Done: true}
	}
	logger.LogInfo("[%s] input closed in phase %s after %d rounds", s.id, s.phase, s.rounds)
	return s.finish()
}

// Handle consumes one line of user input.
func (s *Session) Handle(line string) Reply {
	line = strings.TrimSpace(line)

	switch s.phase {
	case PhaseSeenCards:
		return s.handleSeenCard(line)
	case PhaseGate1, PhaseGate2:
		return s.handleGate(line)
	case PhaseChoice:
		return s.handleChoice(line)
	case PhaseThirdCard:
		return s.handleThirdCard(line)
	case PhaseMenu:
		return s.handleMenu(line)
	default:
		return Reply{Done: true}
	}
}

// prompt returns the label for the current phase
func (s *Session) prompt() string {
	switch s.phase {
	case PhaseSeenCards:
		return promptSeenCard
	case PhaseGate1:
		return promptGate1
	case PhaseGate2:
		return promptGate2
	case PhaseChoice:
		return promptChoice
	case PhaseThirdCard:
		return promptThirdCard
	case PhaseMenu:
		return promptMenu
	default:
		return ""
	}
}

func (s *Session) reply(lines ...string) Reply {
	return Reply{
		Output: strings.Join(lines, "\n"),
		Prompt: s.renderer.Prompt(s.prompt()),
		Done:   s.phase == PhaseDone,
	}
}

func (s *Session) finish(lines ...string) Reply {
	s.phase = PhaseDone
	logger.LogInfo("[%s] session finished, %d cards left", s.id, s.deck.Remaining())
	return Reply{
		Output: strings.Join(append(lines, msgFarewell), "\n"),
		Done:   true,
	}
}

// removeCard parses token and removes it from the deck. The returned error is
// apperrors.ErrInvalidFormat or apperrors.ErrAlreadyAbsent.
func (s *Session) removeCard(token string) (card.Card, error) {
	c, err := card.Parse(token)
	if err != nil {
		return card.Card{}, err
	}
	if s.deck.Remove(c) == deck.AlreadyAbsent {
		return c, fmt.Errorf("%w: %s", apperrors.ErrAlreadyAbsent, c)
	}
	return c, nil
}

func (s *Session) handleSeenCard(line string) Reply {
	if line == "" {
		return s.reply()
	}
	if common.IsAny(line, "DONE", "END") {
		return s.startRound()
	}

	c, err := s.removeCard(line)
	switch {
	case errors.Is(err, apperrors.ErrInvalidFormat):
		return s.reply(s.renderer.Warning(msgInvalidSeen))
	case errors.Is(err, apperrors.ErrAlreadyAbsent):
		return s.reply(s.renderer.Warning(msgDuplicateSeen))
	}
	logger.LogInfo("[%s] seen card %s removed, %d left", s.id, c, s.deck.Remaining())
	return s.reply()
}

// canDeal checks there are enough cards for two gate cards.
func (s *Session) canDeal() error {
	if s.deck.Remaining() < 2 {
		return apperrors.ErrNotEnoughCards
	}
	return nil
}
