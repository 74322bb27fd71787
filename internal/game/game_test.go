package game_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/eleven/internal/apperrors"
	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/game/card"
	"github.com/palemoky/eleven/internal/testutil"
)

// stacked returns a deck factory whose deck deals top first.
func stacked(t *testing.T, top ...card.Card) game.Option {
	t.Helper()
	return game.WithDeckFactory(func(*rand.Rand) (*card.Deck, error) {
		return card.NewOrderedDeck(top...)
	})
}

func names(board []game.Standing) []string {
	out := make([]string, len(board))
	for i, s := range board {
		out[i] = s.Name
	}
	return out
}

func TestPlay_InvalidPlayerCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []string
	}{
		{"none", nil},
		{"single", []string{"A"}},
		{"seven", []string{"A", "B", "C", "D", "E", "F", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decider := &testutil.MockDecider{}
			built := false
			e := game.NewEngine(decider, game.WithDeckFactory(func(r *rand.Rand) (*card.Deck, error) {
				built = true
				return card.NewDeck(r), nil
			}))

			res, err := e.Play(context.Background(), tt.players)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPlayerCount)
			assert.Nil(t, res)
			assert.False(t, built, "no deck may exist before the count is checked")
			decider.AssertNotCalled(t, "WantsCard", mock.Anything, mock.Anything)
		})
	}
}

func TestPlay_InvalidPlayerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []string
	}{
		{"duplicate", []string{"Alex", "Bob", "Alex"}},
		{"blank", []string{"Alex", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := game.NewEngine(game.Threshold(8))
			_, err := e.Play(context.Background(), tt.players)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPlayerName)
		})
	}
}

func TestPlay_TieProducesJointWinners(t *testing.T) {
	t.Parallel()

	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {false}, "Bob": {false}}),
		stacked(t, card.MustNew(card.Hearts, card.Rank10), card.MustNew(card.Spades, card.Rank10)),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex", "Bob"}, res.Winners)
	assert.True(t, res.IsWinner("Alex"))
	assert.True(t, res.IsWinner("Bob"))
	assert.InDelta(t, 10.0, res.TopScore(), 1e-9)
	assert.Equal(t, 1, res.Rounds)
}

func TestPlay_SingleWinner(t *testing.T) {
	t.Parallel()

	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {false}, "Bob": {false}}),
		stacked(t, card.MustNew(card.Hearts, card.Rank10), card.MustNew(card.Spades, card.Rank8)),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex"}, res.Winners)
	assert.False(t, res.IsWinner("Bob"))
	assert.Equal(t, []string{"Alex", "Bob"}, names(res.Leaderboard))
	assert.InDelta(t, 8.0, res.Leaderboard[1].Score, 1e-9)
}

func TestPlay_BustScoresZero(t *testing.T) {
	t.Parallel()

	// Alex: 10 then 5 busts. Bob: 3 and stands.
	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {true}, "Bob": {false}}),
		stacked(t,
			card.MustNew(card.Hearts, card.Rank10),
			card.MustNew(card.Spades, card.Rank3),
			card.MustNew(card.Hearts, card.Rank5),
		),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Alex"}, names(res.Leaderboard))
	assert.Equal(t, []string{"Alex", "Bob"}, res.Eliminated)
	assert.Equal(t, []string{"Bob"}, res.Winners)

	alex := res.Leaderboard[1]
	assert.Equal(t, game.StatusBusted, alex.Status)
	assert.InDelta(t, 0.0, alex.Score, 1e-9)
	assert.Len(t, alex.Hand, 2)
}

func TestPlay_ElevenStands(t *testing.T) {
	t.Parallel()

	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {true, false}, "Bob": {false}}),
		stacked(t,
			card.MustNew(card.Hearts, card.Rank10),
			card.MustNew(card.Spades, card.Rank9),
			card.MustNew(card.Clubs, card.RankA),
		),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex"}, res.Winners)
	assert.InDelta(t, 11.0, res.TopScore(), 1e-9)
	assert.Equal(t, game.StatusStood, res.Leaderboard[0].Status)
	assert.Equal(t, []string{"Bob", "Alex"}, res.Eliminated)
	assert.Equal(t, 2, res.Rounds)
}

func TestPlay_TieOrderFollowsElimination(t *testing.T) {
	t.Parallel()

	// Bob stands on 5 in round 1; Alex reaches 5 and stands in round 2.
	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {true, false}, "Bob": {false}}),
		stacked(t,
			card.MustNew(card.Hearts, card.Rank3),
			card.MustNew(card.Spades, card.Rank5),
			card.MustNew(card.Clubs, card.Rank2),
		),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Alex"}, names(res.Leaderboard))
	assert.Equal(t, []string{"Bob", "Alex"}, res.Winners)
}

func TestPlay_AskOncePerActivePlayerPerRound(t *testing.T) {
	t.Parallel()

	decider := &testutil.MockDecider{}
	decider.OnTurn("Alex").Return(true, nil).Once()
	decider.OnTurn("Alex").Return(false, nil).Once()
	decider.OnTurn("Bob").Return(false, nil).Once()
	decider.OnTurn("Cat").Return(true, nil).Once()
	decider.OnTurn("Cat").Return(true, nil).Once()

	// Opening: Alex 2, Bob 4, Cat 9. Round 1: Alex +3, Cat +A. Round 2: Cat +4 busts.
	e := game.NewEngine(decider, stacked(t,
		card.MustNew(card.Hearts, card.Rank2),
		card.MustNew(card.Hearts, card.Rank4),
		card.MustNew(card.Hearts, card.Rank9),
		card.MustNew(card.Clubs, card.Rank3),
		card.MustNew(card.Clubs, card.RankA),
		card.MustNew(card.Clubs, card.Rank4),
	))

	res, err := e.Play(context.Background(), []string{"Alex", "Bob", "Cat"})
	require.NoError(t, err)
	decider.AssertExpectations(t)
	decider.AssertNumberOfCalls(t, "WantsCard", 5)

	assert.Equal(t, []string{"Bob", "Alex", "Cat"}, res.Eliminated)
	assert.Equal(t, []string{"Alex", "Bob", "Cat"}, names(res.Leaderboard))
	assert.Equal(t, 2, res.Rounds)

	first := decider.Calls[0].Arguments.Get(1).(game.Turn)
	assert.Equal(t, 1, first.Round)
	assert.Equal(t, "Alex", first.Name)
	assert.InDelta(t, 2.0, first.Score, 1e-9)
	assert.Equal(t, card.DeckSize-3, first.CardsLeft)
}

func TestPlay_Events(t *testing.T) {
	t.Parallel()

	observer := &testutil.MockObserver{}
	observer.On("OnEvent", mock.Anything).Return()

	e := game.NewEngine(
		game.NewScript(map[string][]bool{"Alex": {true}, "Bob": {false}}),
		stacked(t,
			card.MustNew(card.Hearts, card.Rank10),
			card.MustNew(card.Spades, card.Rank3),
			card.MustNew(card.Hearts, card.Rank5),
		),
		game.WithObserver(observer),
	)

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)

	assert.Equal(t, []game.EventType{
		game.EventGameStarted,
		game.EventCardDrawn,
		game.EventCardDrawn,
		game.EventRoundStarted,
		game.EventCardDrawn,
		game.EventPlayerBusted,
		game.EventPlayerStood,
		game.EventGameEnded,
	}, observer.EventTypes())

	last := observer.Calls[len(observer.Calls)-1].Arguments.Get(0).(game.Event)
	assert.Same(t, res, last.Result)
	assert.Equal(t, res.GameID, last.GameID)
}

func TestPlay_DecisionError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection lost")
	decider := &testutil.MockDecider{}
	decider.OnTurn("Alex").Return(false, boom)

	res, err := game.NewEngine(decider).Play(context.Background(), []string{"Alex", "Bob"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDecisionFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperrors.CodeDecisionFailed, apperrors.Code(err))
}

func TestPlay_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waiting := game.DeciderFunc(func(ctx context.Context, _ game.Turn) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	})

	_, err := game.NewEngine(waiting).Play(ctx, []string{"Alex", "Bob"})
	assert.ErrorIs(t, err, apperrors.ErrDecisionFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlay_DeckExhausted(t *testing.T) {
	t.Parallel()

	// Leave only the two jokers: the opening deal takes both.
	short := game.WithDeckFactory(func(*rand.Rand) (*card.Deck, error) {
		d, err := card.NewOrderedDeck()
		if err != nil {
			return nil, err
		}
		for d.Len() > 2 {
			if _, err := d.Deal(); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	res, err := game.NewEngine(game.Threshold(11), short).Play(context.Background(), []string{"Alex", "Bob"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDeckExhausted)
	assert.ErrorIs(t, err, apperrors.ErrEmptyDeck)
	assert.Equal(t, apperrors.CodeDeckExhausted, apperrors.Code(err))
}

func TestPlay_DeckFactoryError(t *testing.T) {
	t.Parallel()

	broken := game.WithDeckFactory(func(*rand.Rand) (*card.Deck, error) {
		return card.NewOrderedDeck(card.Card{})
	})
	_, err := game.NewEngine(game.Threshold(5), broken).Play(context.Background(), []string{"Alex", "Bob"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAttribute)
}

func TestPlay_NilDeckFromFactory(t *testing.T) {
	t.Parallel()

	empty := game.WithDeckFactory(func(*rand.Rand) (*card.Deck, error) {
		return nil, nil
	})
	res, err := game.NewEngine(game.Threshold(5), empty).Play(context.Background(), []string{"Alex", "Bob"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrEmptyDeck)
}

func TestPlay_NilDecider(t *testing.T) {
	t.Parallel()

	built := false
	e := game.NewEngine(nil, game.WithDeckFactory(func(r *rand.Rand) (*card.Deck, error) {
		built = true
		return card.NewDeck(r), nil
	}))

	res, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrDecisionFailed)
	assert.False(t, built, "no deck is built without a decider")
}

func TestPlay_RandomGamesTerminate(t *testing.T) {
	t.Parallel()

	roster := []string{"Alex", "Bob", "Cat", "Dee", "Eve", "Fay"}
	for seed := uint64(1); seed <= 40; seed++ {
		for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
			rng := rand.New(rand.NewPCG(seed, uint64(n)))
			limit := game.Threshold(float64(seed%12) + 0.5)
			res, err := game.NewEngine(limit, game.WithRand(rng)).Play(context.Background(), roster[:n])
			require.NoError(t, err)

			assert.Len(t, res.Leaderboard, n)
			assert.Len(t, res.Eliminated, n)
			assert.NotEqual(t, uuid.Nil, res.GameID)
			assert.True(t, slices.IsSortedFunc(res.Leaderboard, func(a, b game.Standing) int {
				switch {
				case a.Score > b.Score:
					return -1
				case a.Score < b.Score:
					return 1
				}
				return 0
			}))

			require.NotEmpty(t, res.Winners)
			for _, s := range res.Leaderboard {
				assert.True(t, s.Status.Terminal())
				assert.LessOrEqual(t, s.Score, game.BustThreshold)
				if s.Status == game.StatusBusted {
					assert.InDelta(t, 0.0, s.Score, 1e-9)
				} else {
					assert.InDelta(t, s.Hand.Total(), s.Score, 1e-9)
				}
				assert.Equal(t, s.Score == res.TopScore(), res.IsWinner(s.Name))
			}
		}
	}
}

func TestPlay_EachGameGetsItsOwnState(t *testing.T) {
	t.Parallel()

	e := game.NewEngine(game.Threshold(9), game.WithRand(rand.New(rand.NewPCG(5, 5))))
	first, err := e.Play(context.Background(), []string{"Alex", "Bob"})
	require.NoError(t, err)
	second, err := e.Play(context.Background(), []string{"Alex", "Bob", "Cat"})
	require.NoError(t, err)

	assert.NotEqual(t, first.GameID, second.GameID)
	assert.Len(t, first.Leaderboard, 2)
	assert.Len(t, second.Leaderboard, 3)
}
