package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	require.NotNil(t, cc, "NewCounter should not return nil")

	remaining := cc.Remaining()
	for _, rank := range Ranks {
		assert.Equal(t, 4, remaining[rank], "Rank %v should have 4 cards", rank)
	}
	assert.Equal(t, 2, remaining[RankJoker], "Both jokers should be counted")
	assert.Equal(t, DeckSize, cc.Left(), "Total cards should be 54")
}

func TestCounter_Reset(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	cc.Deduct(MustNew(Hearts, Rank3), MustNew(Spades, Rank3), MustNew(Clubs, RankA))
	assert.Equal(t, 2, cc.Remaining()[Rank3], "After deducting 2 Rank3, should have 2 left")

	cc.Reset()
	assert.Equal(t, 4, cc.Remaining()[Rank3], "After reset, Rank3 should have 4 cards")
	assert.Equal(t, 4, cc.Remaining()[RankA], "After reset, RankA should have 4 cards")
}

func TestCounter_Deduct(t *testing.T) {
	t.Parallel()

	red, err := NewJoker(Red)
	require.NoError(t, err)
	black, err := NewJoker(Black)
	require.NoError(t, err)

	tests := []struct {
		name      string
		cards     []Card
		wantRank  Rank
		wantCount int
		wantLeft  int
	}{
		{
			name:      "deduct nothing",
			wantRank:  Rank10,
			wantCount: 4,
			wantLeft:  54,
		},
		{
			name:      "deduct single card",
			cards:     []Card{MustNew(Hearts, Rank10)},
			wantRank:  Rank10,
			wantCount: 3,
			wantLeft:  53,
		},
		{
			name:      "deduct both jokers",
			cards:     []Card{red, black},
			wantRank:  RankJoker,
			wantCount: 0,
			wantLeft:  52,
		},
		{
			name: "never below zero",
			cards: []Card{
				MustNew(Hearts, RankK), MustNew(Spades, RankK), MustNew(Clubs, RankK),
				MustNew(Diamonds, RankK), MustNew(Hearts, RankK),
			},
			wantRank:  RankK,
			wantCount: 0,
			wantLeft:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cc := NewCounter()
			cc.Deduct(tt.cards...)
			assert.Equal(t, tt.wantCount, cc.Remaining()[tt.wantRank])
			assert.Equal(t, tt.wantLeft, cc.Left())
		})
	}
}

func TestCounter_RemainingIsACopy(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	cc.Remaining()[Rank2] = 0
	assert.Equal(t, 4, cc.Remaining()[Rank2])
}

func TestCounter_BustChance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		// from 10 an ace lands exactly on 11, a picture card or joker below it
		{name: "safe with a low score", score: 1, want: 0},
		{name: "ten busts on any numeric card", score: 10, want: 36.0 / 54},
		{name: "sitting on 11", score: 11, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cc := NewCounter()
			assert.InDelta(t, tt.want, cc.BustChance(tt.score, 11), 1e-9)
		})
	}
}

func TestCounter_BustChanceEmptyDeck(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	deck, err := NewOrderedDeck()
	require.NoError(t, err)
	cc.Deduct(deck.Cards()...)

	assert.Zero(t, cc.Left())
	assert.Zero(t, cc.BustChance(10, 11))
}
