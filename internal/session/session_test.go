package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/inbetween/internal/card"
	"github.com/palemoky/inbetween/internal/deck"
)

func newTestSession(opts Options) *Session {
	return New(deck.New(), nil, opts)
}

// feed sends each line in order and returns the last reply
func feed(t *testing.T, s *Session, lines ...string) Reply {
	t.Helper()
	var r Reply
	for _, line := range lines {
		r = s.Handle(line)
	}
	return r
}

func TestStart(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	r := s.Start()

	assert.Contains(t, r.Output, "Card format: AS, 10H, QD, KC")
	assert.Equal(t, promptSeenCard, r.Prompt)
	assert.False(t, r.Done)
	assert.Equal(t, PhaseSeenCards, s.Phase())
	assert.NotEmpty(t, s.ID())
}

func TestSeenCards(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()

	r := s.Handle("1Z")
	assert.Contains(t, r.Output, msgInvalidSeen)
	assert.Equal(t, 52, s.Deck().Remaining(), "malformed token must not change the deck")

	r = s.Handle("AS")
	assert.Empty(t, r.Output)
	assert.Equal(t, 51, s.Deck().Remaining())

	r = s.Handle(" as ")
	assert.Contains(t, r.Output, msgDuplicateSeen)
	assert.NotContains(t, r.Output, msgInvalidSeen)
	assert.Equal(t, 51, s.Deck().Remaining())

	r = s.Handle("")
	assert.Empty(t, r.Output)
	assert.Equal(t, promptSeenCard, r.Prompt)

	r = s.Handle("end")
	assert.Equal(t, PhaseGate1, s.Phase())
	assert.Contains(t, r.Output, "Remaining drawable cards (before gate): 51")
	assert.Equal(t, promptGate1, r.Prompt)
	assert.Equal(t, 1, s.Rounds())
}

func TestRound_NonPair(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()
	feed(t, s, "DONE")

	r := s.Handle("5C")
	assert.Equal(t, PhaseGate2, s.Phase())
	assert.Equal(t, promptGate2, r.Prompt)

	r = s.Handle("5C")
	assert.Contains(t, r.Output, msgDuplicateGate)
	assert.Equal(t, PhaseGate2, s.Phase())

	r = s.Handle("9D")
	assert.Equal(t, PhaseThirdCard, s.Phase())
	assert.Contains(t, r.Output, "Gate: 5 and 9 (Remaining after gate removed: 50)")
	assert.Contains(t, r.Output, "Win (in-between):  12 / 50 = 24.00%")
	assert.Contains(t, r.Output, "EV (per 1 unit bet): -0.6400")
	assert.Contains(t, r.Output, msgThirdIntro)
	assert.Equal(t, promptThirdCard, r.Prompt)

	r = s.Handle("skip")
	assert.Contains(t, r.Output, msgSkip)
	assert.Contains(t, r.Output, "Remaining drawable cards now: 50")
	assert.Equal(t, PhaseMenu, s.Phase())
	assert.Equal(t, promptMenu, r.Prompt)
}

func TestRound_AdjacentGate(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()

	r := feed(t, s, "DONE", "JH", "QH")
	assert.Contains(t, r.Output, "Note: Adjacent gate")
	assert.Contains(t, r.Output, "Win (in-between):  0 / 50")
}

func TestRound_Pair(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()

	r := feed(t, s, "DONE", "7C", "7s")
	assert.Equal(t, PhaseChoice, s.Phase())
	assert.Equal(t, promptChoice, r.Prompt)

	r = s.Handle("maybe")
	assert.Contains(t, r.Output, msgInvalidChoice)
	assert.Equal(t, PhaseChoice, s.Phase())

	r = s.Handle("b")
	assert.Equal(t, PhaseThirdCard, s.Phase())
	assert.Contains(t, r.Output, "You chose: BIG")
	assert.Contains(t, r.Output, "If BIG (>):               24 / 50")
	assert.Contains(t, r.Output, "Suggestion: BIG and SMALL have the same win rate.")

	r = s.Handle("7C")
	assert.Contains(t, r.Output, msgUnavailable)
	assert.Equal(t, PhaseThirdCard, s.Phase())

	r = s.Handle("8X")
	assert.Contains(t, r.Output, msgInvalidThird)

	r = s.Handle("8h")
	assert.Contains(t, r.Output, "Updated: 3rd card 8H removed from deck.")
	assert.Contains(t, r.Output, "Remaining drawable cards now: 49")
	assert.Equal(t, PhaseMenu, s.Phase())
}

func TestRound_PairSmallOnAce(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()

	r := feed(t, s, "DONE", "AC", "AD", "small")
	assert.Contains(t, r.Output, "You chose: SMALL")
	assert.Contains(t, r.Output, "Win:               0 / 50")
	assert.Contains(t, r.Output, "Suggestion: BIG has higher win rate.")
}

func TestMenu(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      Options
		command   string
		wantPhase Phase
		wantText  string
		wantDone  bool
	}{
		{"enter continues", Options{}, "", PhaseGate1, "New Round", false},
		{"add collects seen cards", Options{}, "add", PhaseSeenCards, "", false},
		{"new resets deck", Options{}, "NEW", PhaseSeenCards, "all 52 cards", false},
		{"count shows deck", Options{}, "count", PhaseMenu, "Remaining: 50", false},
		{"help lists commands", Options{}, "help", PhaseMenu, "COUNT", false},
		{"quit exits", Options{}, "QUIT", PhaseDone, msgFarewell, true},
		{"q exits", Options{}, "q", PhaseDone, msgFarewell, true},
		{"unknown continues", Options{}, "whatever", PhaseGate1, "New Round", false},
		{"unknown rejected when strict", Options{StrictMenu: true}, "whatever", PhaseMenu, msgUnknownCommand, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession(tt.opts)
			s.Start()
			feed(t, s, "DONE", "5C", "9D", "SKIP")
			require.Equal(t, PhaseMenu, s.Phase())

			r := s.Handle(tt.command)
			assert.Equal(t, tt.wantPhase, s.Phase())
			assert.Equal(t, tt.wantDone, r.Done)
			if tt.wantText != "" {
				assert.Contains(t, r.Output, tt.wantText)
			}
		})
	}
}

func TestMenu_NewRestoresFullDeck(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()
	feed(t, s, "DONE", "5C", "9D", "KS", "NEW")

	assert.Equal(t, 52, s.Deck().Remaining())
	assert.True(t, s.Deck().Contains(card.Card{Suit: card.Club, Rank: card.Rank5}))
}

func TestShowCounter(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{ShowCounter: true})
	s.Start()

	r := feed(t, s, "AS", "DONE")
	assert.Contains(t, r.Output, "Remaining: 51")
	assert.Contains(t, r.Output, "New Round")
}

func TestClose(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()
	feed(t, s, "DONE", "7C", "7D")
	require.Equal(t, PhaseChoice, s.Phase())

	r := s.Close()
	assert.True(t, r.Done)
	assert.Contains(t, r.Output, msgFarewell)
	assert.Empty(t, r.Prompt)
	assert.Equal(t, PhaseDone, s.Phase())

	// 会话结束后不再响应输入
	assert.True(t, s.Handle("AS").Done)
	assert.True(t, s.Close().Done)
	assert.Equal(t, 50, s.Deck().Remaining())
}

func TestNotEnoughCardsToContinue(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()
	for id := 0; id < card.DeckSize-1; id++ {
		s.Handle(card.FromID(id).Token())
	}
	require.Equal(t, 1, s.Deck().Remaining())

	r := s.Handle("DONE")
	assert.True(t, r.Done)
	assert.Contains(t, r.Output, msgNoGate)
	assert.Contains(t, r.Output, msgNoContinue)
	assert.Contains(t, r.Output, msgFarewell)
}

func TestNothingLeftToDraw(t *testing.T) {
	t.Parallel()

	s := newTestSession(Options{})
	s.Start()
	for id := 0; id < card.DeckSize-2; id++ {
		s.Handle(card.FromID(id).Token())
	}
	require.Equal(t, 2, s.Deck().Remaining())

	last := card.FromID(card.DeckSize - 1).Token()
	prev := card.FromID(card.DeckSize - 2).Token()
	r := feed(t, s, "DONE", prev, last)

	assert.Contains(t, r.Output, "Remaining after gate removed: 0")
	assert.Contains(t, r.Output, msgNothingToDraw)
	assert.Equal(t, PhaseMenu, s.Phase())

	r = s.Handle("")
	assert.True(t, r.Done)
	assert.Contains(t, r.Output, msgNoContinue)
}

func TestParseChoice(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"BIG", "big", "B", " b "} {
		_, err := parseChoice(in)
		assert.NoError(t, err, in)
	}
	for _, in := range []string{"SMALL", "s", "Small"} {
		_, err := parseChoice(in)
		assert.NoError(t, err, in)
	}
	_, err := parseChoice("bigger")
	assert.Error(t, err)
}
