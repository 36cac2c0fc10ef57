package deck

import "github.com/palemoky/inbetween/internal/card"

// Histogram is a snapshot of the remaining cards per rank.
// Buckets are indexed by rank; index 0 is unused.
type Histogram struct {
	counts [card.MaxRank + 1]int
	total  int
}

// HistogramOf builds a snapshot from explicit per-rank counts, mainly for tests
// and what-if calculations. Ranks outside the domain are ignored.
func HistogramOf(counts map[card.Rank]int) Histogram {
	var h Histogram
	for r, n := range counts {
		if !r.Valid() || n <= 0 {
			continue
		}
		h.counts[r] = n
		h.total += n
	}
	return h
}

// Count returns the remaining cards of rank r, or 0 outside the rank domain.
func (h Histogram) Count(r card.Rank) int {
	if !r.Valid() {
		return 0
	}
	return h.counts[r]
}

// Total returns the number of remaining cards.
func (h Histogram) Total() int {
	return h.total
}

// Sum adds up the counts for ranks in [from, to]. An empty range yields 0.
func (h Histogram) Sum(from, to card.Rank) int {
	from = max(from, card.MinRank)
	to = min(to, card.MaxRank)
	n := 0
	for r := from; r <= to; r++ {
		n += h.counts[r]
	}
	return n
}
