// Package odds computes the exact outcome distribution and expected value of
// the third card in an In-Between round from a remaining-rank histogram.
package odds

import (
	"github.com/palemoky/inbetween/internal/apperrors"
	"github.com/palemoky/inbetween/internal/card"
	"github.com/palemoky/inbetween/internal/deck"
)

// Mode is the game mode selected by the two gate ranks.
type Mode int

const (
	NonPairGate Mode = iota
	PairGate
)

func (m Mode) String() string {
	if m == PairGate {
		return "pair gate"
	}
	return "non-pair gate"
}

// ModeOf selects PairGate when both gate ranks are equal.
func ModeOf(r1, r2 card.Rank) Mode {
	if r1 == r2 {
		return PairGate
	}
	return NonPairGate
}

// Payout multipliers per unit stake.
const (
	payoutWin    = 1
	payoutLose   = -1
	payoutEdge   = -2
	payoutTriple = -3
)

// NonPairOutcome is the third-card distribution for two different gate ranks.
// Win + Edge + Lose == Total.
type NonPairOutcome struct {
	Low   card.Rank
	High  card.Rank
	Win   int // strictly between the gates
	Edge  int // equals either gate rank, loses 2x
	Lose  int // outside the gates, loses 1x
	Total int
}

// EvaluateNonPair computes the outcome for gate ranks r1 != r2. The gate cards
// must already be removed from the histogram snapshot.
func EvaluateNonPair(h deck.Histogram, r1, r2 card.Rank) (NonPairOutcome, error) {
	if r1 == r2 {
		return NonPairOutcome{}, apperrors.ErrSameRankGate
	}
	if h.Total() == 0 {
		return NonPairOutcome{}, apperrors.ErrDivisionUndefined
	}

	low, high := min(r1, r2), max(r1, r2)
	o := NonPairOutcome{
		Low:   low,
		High:  high,
		Win:   h.Sum(low+1, high-1),
		Edge:  h.Count(low) + h.Count(high),
		Total: h.Total(),
	}
	o.Lose = o.Total - o.Win - o.Edge
	return o, nil
}

// Adjacent reports the degenerate case where no rank lies between the gates,
// so Win is always 0.
func (o NonPairOutcome) Adjacent() bool {
	return o.High == o.Low+1
}

// EV returns the expected value per unit stake.
func (o NonPairOutcome) EV() float64 {
	return expected(o.Total, o.Win*payoutWin, o.Lose*payoutLose, o.Edge*payoutEdge)
}

// WinRate, EdgeRate and LoseRate return the probability of each outcome.
func (o NonPairOutcome) WinRate() float64 { return rate(o.Win, o.Total) }
func (o NonPairOutcome) EdgeRate() float64 { return rate(o.Edge, o.Total) }
func (o NonPairOutcome) LoseRate() float64 { return rate(o.Lose, o.Total) }

// Choice is the bettor's pre-declared side in a pair gate.
type Choice int

const (
	Big Choice = iota
	Small
)

func (c Choice) String() string {
	if c == Small {
		return "SMALL"
	}
	return "BIG"
}

// Suggestion names the side with the better win rate in a pair gate.
type Suggestion int

const (
	SuggestTie Suggestion = iota
	SuggestBig
	SuggestSmall
)

// PairOutcome is the third-card distribution for a pair gate.
// Win + Lose + Triple == Total, where Win is BigWin or SmallWin per Choice.
type PairOutcome struct {
	Gate     card.Rank
	Choice   Choice
	BigWin   int // ranks above the gate
	SmallWin int // ranks below the gate
	Triple   int // equals the gate rank, loses 3x
	Win      int
	Lose     int
	Total    int
}

// EvaluatePair computes the outcome for a pair gate and the declared choice.
// Both gate cards must already be removed from the histogram snapshot.
func EvaluatePair(h deck.Histogram, gate card.Rank, choice Choice) (PairOutcome, error) {
	if h.Total() == 0 {
		return PairOutcome{}, apperrors.ErrDivisionUndefined
	}

	o := PairOutcome{
		Gate:     gate,
		Choice:   choice,
		BigWin:   h.Sum(gate+1, card.MaxRank),
		SmallWin: h.Sum(card.MinRank, gate-1),
		Triple:   h.Count(gate),
		Total:    h.Total(),
	}
	o.Win = o.BigWin
	if choice == Small {
		o.Win = o.SmallWin
	}
	o.Lose = o.Total - o.Win - o.Triple
	return o, nil
}

// EV returns the expected value per unit stake for the declared choice.
func (o PairOutcome) EV() float64 {
	return expected(o.Total, o.Win*payoutWin, o.Lose*payoutLose, o.Triple*payoutTriple)
}

func (o PairOutcome) WinRate() float64 { return rate(o.Win, o.Total) }
func (o PairOutcome) LoseRate() float64 { return rate(o.Lose, o.Total) }
func (o PairOutcome) TripleRate() float64 { return rate(o.Triple, o.Total) }
func (o PairOutcome) BigWinRate() float64 { return rate(o.BigWin, o.Total) }
func (o PairOutcome) SmallWinRate() float64 { return rate(o.SmallWin, o.Total) }

// Suggestion compares BIG and SMALL regardless of the declared choice.
func (o PairOutcome) Suggestion() Suggestion {
	switch {
	case o.BigWin > o.SmallWin:
		return SuggestBig
	case o.SmallWin > o.BigWin:
		return SuggestSmall
	default:
		return SuggestTie
	}
}

// rate is only called on outcomes built by the Evaluate functions, which
// reject a zero total.
func rate(n, total int) float64 {
	return float64(n) / float64(total)
}

func expected(total int, weighted ...int) float64 {
	sum := 0
	for _, w := range weighted {
		sum += w
	}
	return float64(sum) / float64(total)
}
