package card

// Counter tracks the ranks still in the deck. Every dealt card is face up
// in Eleven, so deducting each dealt card leaves the exact deck makeup.
type Counter struct {
	remaining map[Rank]int
}

// NewCounter creates a counter for a full 54-card deck.
func NewCounter() *Counter {
	cc := &Counter{
		remaining: make(map[Rank]int, len(Ranks)+1),
	}
	cc.Reset()
	return cc
}

// Reset restores a full deck: four of each suited rank and two jokers.
func (cc *Counter) Reset() {
	for _, rank := range Ranks {
		cc.remaining[rank] = len(Suits)
	}
	cc.remaining[RankJoker] = 2
}

// Deduct removes dealt cards from the counter.
func (cc *Counter) Deduct(cards ...Card) {
	for _, c := range cards {
		if cc.remaining[c.Rank()] > 0 {
			cc.remaining[c.Rank()]--
		}
	}
}

// Remaining returns a copy of the per-rank counts.
func (cc *Counter) Remaining() map[Rank]int {
	out := make(map[Rank]int, len(cc.remaining))
	for r, n := range cc.remaining {
		out[r] = n
	}
	return out
}

// Left is the number of cards still in the deck.
func (cc *Counter) Left() int {
	n := 0
	for _, count := range cc.remaining {
		n += count
	}
	return n
}

// BustChance is the probability that the next card takes score strictly
// above limit. It is 0 when the deck is empty.
func (cc *Counter) BustChance(score, limit float64) float64 {
	left := cc.Left()
	if left == 0 {
		return 0
	}
	busting := 0
	for r, count := range cc.remaining {
		if score+r.Value() > limit {
			busting += count
		}
	}
	return float64(busting) / float64(left)
}
