package card

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/eleven/internal/apperrors"
)

// DeckSize is the number of cards in a full deck: 4 suits × 13 ranks + 2 jokers.
const DeckSize = 54

// Deck 定义一副牌. Cards are dealt from the top, index 0.
type Deck struct {
	cards []Card
}

// NewDeck populates a full deck and shuffles it once with r.
// A nil r uses the global generator.
func NewDeck(r *rand.Rand) *Deck {
	d := &Deck{cards: populate()}
	d.shuffle(r)
	return d
}

// NewOrderedDeck returns an unshuffled deck whose first cards are top, in order,
// followed by every remaining card in populate order.
func NewOrderedDeck(top ...Card) (*Deck, error) {
	rest := populate()
	cards := make([]Card, 0, DeckSize)
	for _, c := range top {
		idx := slices.Index(rest, c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s is not in the deck or is repeated", apperrors.ErrInvalidAttribute, c)
		}
		cards = append(cards, c)
		rest = slices.Delete(rest, idx, idx+1)
	}
	return &Deck{cards: append(cards, rest...)}, nil
}

// populate builds the 52-card cross product followed by the red and black jokers.
func populate() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return append(cards,
		Card{suit: NoSuit, rank: RankJoker, colour: Red},
		Card{suit: NoSuit, rank: RankJoker, colour: Black},
	)
}

func (d *Deck) shuffle(r *rand.Rand) {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if r == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	r.Shuffle(len(d.cards), swap)
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, apperrors.ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Len reports how many cards remain.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains reports whether c is still in the deck.
func (d *Deck) Contains(c Card) bool {
	return slices.Contains(d.cards, c)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck(%d cards)", len(d.cards))
}
