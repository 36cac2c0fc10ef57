package session

import (
	"errors"
	"fmt"

	"github.com/palemoky/inbetween/internal/apperrors"
	"github.com/palemoky/inbetween/internal/logger"
	"github.com/palemoky/inbetween/internal/odds"
	"github.com/palemoky/inbetween/internal/ui/common"
)

// startRound opens a new round, or ends the session when fewer than two cards remain.
func (s *Session) startRound() Reply {
	if err := s.canDeal(); err != nil {
		logger.LogInfo("[%s] %v (%d left)", s.id, err, s.deck.Remaining())
		return s.finish(s.renderer.Warning(msgNoGate), msgNoContinue)
	}

	s.round = round{}
	s.rounds++
	s.phase = PhaseGate1

	var lines []string
	if s.opts.ShowCounter {
		lines = append(lines, s.renderer.CardCounter(s.deck.Histogram()))
	}
	lines = append(lines, s.renderer.RoundHeader(s.deck.Remaining()))
	logger.LogInfo("[%s] round %d started, %d cards left", s.id, s.rounds, s.deck.Remaining())
	return s.reply(lines...)
}

func (s *Session) handleGate(line string) Reply {
	if line == "" {
		return s.reply()
	}

	c, err := s.removeCard(line)
	switch {
	case errors.Is(err, apperrors.ErrInvalidFormat):
		return s.reply(s.renderer.Warning(msgInvalidGate))
	case errors.Is(err, apperrors.ErrAlreadyAbsent):
		return s.reply(s.renderer.Warning(msgDuplicateGate))
	}

	if s.phase == PhaseGate1 {
		s.round.gate1 = c
		s.phase = PhaseGate2
		return s.reply()
	}
	s.round.gate2 = c
	return s.dispatch()
}

// dispatch selects the game mode once both gate cards are out of the deck.
func (s *Session) dispatch() Reply {
	r1, r2 := s.round.gate1.Rank, s.round.gate2.Rank
	remaining := s.deck.Remaining()
	gateLine := s.renderer.GateLine(r1, r2, remaining)
	logger.LogInfo("[%s] round %d gate %s %s, %d left", s.id, s.rounds, s.round.gate1, s.round.gate2, remaining)

	if remaining == 0 {
		s.phase = PhaseMenu
		return s.reply(gateLine, msgNothingToDraw)
	}

	if odds.ModeOf(r1, r2) == odds.PairGate {
		s.phase = PhaseChoice
		return s.reply(gateLine)
	}

	o, err := odds.EvaluateNonPair(s.deck.Histogram(), r1, r2)
	if err != nil {
		return s.engineFailure(err, gateLine)
	}
	logger.LogInfo("[%s] round %d non-pair win=%d edge=%d lose=%d total=%d ev=%.4f",
		s.id, s.rounds, o.Win, o.Edge, o.Lose, o.Total, o.EV())
	s.phase = PhaseThirdCard
	return s.reply(gateLine, "", s.renderer.NonPairResult(o), "", msgThirdIntro)
}

// parseChoice accepts BIG/B and SMALL/S in any case.
func parseChoice(line string) (odds.Choice, error) {
	switch common.Normalize(line) {
	case "BIG", "B":
		return odds.Big, nil
	case "SMALL", "S":
		return odds.Small, nil
	default:
		return odds.Big, fmt.Errorf("%w: %q", apperrors.ErrInvalidChoice, line)
	}
}

func (s *Session) handleChoice(line string) Reply {
	if line == "" {
		return s.reply()
	}
	choice, err := parseChoice(line)
	if err != nil {
		return s.reply(s.renderer.Warning(msgInvalidChoice))
	}

	o, err := odds.EvaluatePair(s.deck.Histogram(), s.round.gate1.Rank, choice)
	if err != nil {
		return s.engineFailure(err)
	}
	logger.LogInfo("[%s] round %d pair %s big=%d small=%d triple=%d total=%d ev=%.4f",
		s.id, s.rounds, choice, o.BigWin, o.SmallWin, o.Triple, o.Total, o.EV())
	s.phase = PhaseThirdCard
	return s.reply("", s.renderer.PairResult(o), "", msgThirdIntro)
}

// engineFailure reports a broken precondition; the round is abandoned.
func (s *Session) engineFailure(err error, lines ...string) Reply {
	logger.LogError("[%s] round %d: %v", s.id, s.rounds, err)
	s.phase = PhaseMenu
	return s.reply(append(lines, s.renderer.Warning(msgInternalFailure))...)
}

func (s *Session) handleThirdCard(line string) Reply {
	if line == "" {
		return s.reply()
	}
	if common.IsAny(line, "SKIP") {
		return s.endRound(msgSkip)
	}

	c, err := s.removeCard(line)
	switch {
	case errors.Is(err, apperrors.ErrInvalidFormat):
		return s.reply(s.renderer.Warning(msgInvalidThird))
	case errors.Is(err, apperrors.ErrAlreadyAbsent):
		return s.reply(s.renderer.Warning(msgUnavailable))
	}
	logger.LogInfo("[%s] round %d third card %s", s.id, s.rounds, c)
	return s.endRound(fmt.Sprintf("  Updated: 3rd card %s removed from deck.", c.Token()))
}

func (s *Session) endRound(msg string) Reply {
	s.phase = PhaseMenu
	return s.reply(msg, fmt.Sprintf("Deck updated. Remaining drawable cards now: %d", s.deck.Remaining()))
}
