package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/eleven/internal/apperrors"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Colour is carried by jokers only.
type Colour int

const (
	NoColour Colour = iota
	Red
	Black
)

const (
	NoSuit Suit = iota // jokers have no suit
	Diamonds
	Clubs
	Hearts
	Spades
)

// Suits lists the four playing suits in populate order.
var Suits = []Suit{Diamonds, Clubs, Hearts, Spades}

var suitNames = map[Suit]string{
	NoSuit:   "",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	NoSuit:   "",
	Diamonds: "♦",
	Clubs:    "♣",
	Hearts:   "♥",
	Spades:   "♠",
}

func (s Suit) String() string {
	return suitNames[s]
}

// Symbol returns the suit glyph, empty for jokers.
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) valid() bool {
	_, ok := suitNames[s]
	return ok
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	RankJoker
)

// Ranks lists the thirteen suited ranks in populate order.
var Ranks = []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankJ:     "J",
	RankQ:     "Q",
	RankK:     "K",
	RankA:     "A",
	RankJoker: "Joker",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

func (r Rank) valid() bool {
	return r >= Rank2 && r <= RankJoker
}

// Value is the score a card of this rank contributes to a hand.
func (r Rank) Value() float64 {
	switch r {
	case RankJ, RankQ, RankK, RankJoker:
		return 0.5
	case RankA:
		return 1
	default:
		return float64(r)
	}
}

func (c Colour) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return ""
	}
}

// Card 定义一张牌. The zero value is not a valid card; build cards with New or NewJoker.
type Card struct {
	suit   Suit
	rank   Rank
	colour Colour
}

// New validates suit and rank together and returns a suited card.
func New(suit Suit, rank Rank) (Card, error) {
	if !suit.valid() || suit == NoSuit {
		return Card{}, fmt.Errorf("%w: suit %d", apperrors.ErrInvalidAttribute, int(suit))
	}
	if !rank.valid() || rank == RankJoker {
		return Card{}, fmt.Errorf("%w: rank %d with suit %s", apperrors.ErrInvalidAttribute, int(rank), suit)
	}
	return Card{suit: suit, rank: rank}, nil
}

// NewJoker returns the joker of the given colour.
func NewJoker(colour Colour) (Card, error) {
	if colour != Red && colour != Black {
		return Card{}, fmt.Errorf("%w: joker colour %d", apperrors.ErrInvalidAttribute, int(colour))
	}
	return Card{suit: NoSuit, rank: RankJoker, colour: colour}, nil
}

// MustNew is New for package-level fixtures; it panics on invalid input.
func MustNew(suit Suit, rank Rank) Card {
	c, err := New(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit     { return c.suit }
func (c Card) Rank() Rank     { return c.rank }
func (c Card) Colour() Colour { return c.colour }
func (c Card) IsJoker() bool  { return c.rank == RankJoker }
func (c Card) Value() float64 { return c.rank.Value() }

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker " + c.colour.String()
	}
	return c.suit.String() + " " + c.rank.String()
}

// Short renders the card compactly, e.g. "♥10" or "🃏R".
func (c Card) Short() string {
	if c.IsJoker() {
		return "🃏" + c.colour.String()[:1]
	}
	return c.suit.Symbol() + c.rank.String()
}

// nameToSuit 用于快速查找花色
var nameToSuit = map[string]Suit{
	"":         NoSuit,
	"diamonds": Diamonds,
	"clubs":    Clubs,
	"hearts":   Hearts,
	"spades":   Spades,
}

var nameToRank = map[string]Rank{
	"j":     RankJ,
	"q":     RankQ,
	"k":     RankK,
	"a":     RankA,
	"joker": RankJoker,
}

// ParseSuit accepts a case-insensitive suit name. The empty string is the joker suit.
func ParseSuit(s string) (Suit, error) {
	if suit, ok := nameToSuit[strings.ToLower(strings.TrimSpace(s))]; ok {
		return suit, nil
	}
	return NoSuit, fmt.Errorf("%w: suit %q", apperrors.ErrInvalidAttribute, s)
}

// ParseRank accepts "2".."10", "J", "Q", "K", "A" or "Joker", case-insensitively.
func ParseRank(s string) (Rank, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rank, ok := nameToRank[s]; ok {
		return rank, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Rank2) || n > int(Rank10) {
		return 0, fmt.Errorf("%w: rank %q", apperrors.ErrInvalidAttribute, s)
	}
	return Rank(n), nil
}

// ParseColour accepts "red" or "black", case-insensitively.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "black":
		return Black, nil
	}
	return NoColour, fmt.Errorf("%w: colour %q", apperrors.ErrInvalidAttribute, s)
}

// Parse builds a suited card from its names. Jokers carry a colour rather
// than a suit; build them with ParseJoker.
func Parse(suit, rank string) (Card, error) {
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	if r == RankJoker {
		return Card{}, fmt.Errorf("%w: joker has a colour, not suit %q", apperrors.ErrInvalidAttribute, suit)
	}
	return New(s, r)
}

// ParseJoker builds the joker named by colour, e.g. "red".
func ParseJoker(colour string) (Card, error) {
	c, err := ParseColour(colour)
	if err != nil {
		return Card{}, err
	}
	return NewJoker(c)
}
