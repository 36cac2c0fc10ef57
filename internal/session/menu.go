package session

import (
	"github.com/palemoky/inbetween/internal/logger"
	"github.com/palemoky/inbetween/internal/ui/common"
)

// handleMenu 处理每局结束后的命令
func (s *Session) handleMenu(line string) Reply {
	switch common.Normalize(line) {
	case "":
		return s.startRound()
	case "QUIT", "Q":
		return s.finish()
	case "ADD":
		s.phase = PhaseSeenCards
		return s.reply()
	case "NEW":
		s.deck.Reset()
		logger.LogInfo("[%s] deck reset", s.id)
		s.phase = PhaseSeenCards
		return s.reply("New deck: all 52 cards are back.")
	case "COUNT":
		return s.reply(s.renderer.CardCounter(s.deck.Histogram()))
	case "HELP", "?":
		return s.reply(s.renderer.MenuHelp())
	}

	if s.opts.StrictMenu {
		return s.reply(s.renderer.Warning(msgUnknownCommand))
	}
	logger.LogInfo("[%s] unrecognised menu input %q, continuing", s.id, line)
	return s.startRound()
}
