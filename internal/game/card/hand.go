package card

import "strings"

// Hand is the ordered sequence of cards a player holds.
type Hand []Card

// Total sums the values of every card in the hand.
func (h Hand) Total() float64 {
	var total float64
	for _, c := range h {
		total += c.Value()
	}
	return total
}

// Clone returns a copy that does not share storage with h.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) String() string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// Short renders the hand with Card.Short separated by spaces.
func (h Hand) Short() string {
	var sb strings.Builder
	for i, c := range h {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(c.Short())
	}
	return sb.String()
}
