package deck

import "github.com/palemoky/inbetween/internal/card"

// RemoveResult tells a fresh removal apart from a duplicate entry.
type RemoveResult int

const (
	Removed RemoveResult = iota
	AlreadyAbsent
)

func (r RemoveResult) String() string {
	if r == Removed {
		return "removed"
	}
	return "already absent"
}

// Deck tracks which of the 52 cards are still unseen and undrawn.
type Deck struct {
	inPlay [card.DeckSize]bool
}

// New creates a full deck.
func New() *Deck {
	d := &Deck{}
	d.Reset()
	return d
}

// Reset puts all 52 cards back in play.
func (d *Deck) Reset() {
	for id := range d.inPlay {
		d.inPlay[id] = true
	}
}

// Remove marks c as seen. Removing a card that is already gone changes nothing
// and reports AlreadyAbsent.
func (d *Deck) Remove(c card.Card) RemoveResult {
	id := c.ID()
	if !d.inPlay[id] {
		return AlreadyAbsent
	}
	d.inPlay[id] = false
	return Removed
}

// Contains reports whether c is still in play.
func (d *Deck) Contains(c card.Card) bool {
	return d.inPlay[c.ID()]
}

// Remaining returns the number of cards still in play.
func (d *Deck) Remaining() int {
	n := 0
	for _, ok := range d.inPlay {
		if ok {
			n++
		}
	}
	return n
}

// Histogram scans the deck and returns the remaining count per rank.
func (d *Deck) Histogram() Histogram {
	var h Histogram
	for id, ok := range d.inPlay {
		if !ok {
			continue
		}
		h.counts[card.FromID(id).Rank]++
		h.total++
	}
	return h
}
