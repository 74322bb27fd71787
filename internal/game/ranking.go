package game

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/palemoky/eleven/internal/game/card"
)

// Standing is one leaderboard row.
type Standing struct {
	Name   string
	Score  float64
	Status Status
	Hand   card.Hand
}

// Result is what a finished game returns: the leaderboard, score descending,
// and every player tied at the top score.
type Result struct {
	GameID      uuid.UUID
	Leaderboard []Standing
	Winners     []string
	Eliminated  []string
	Rounds      int
}

// IsWinner reports whether name is among the joint winners.
func (r *Result) IsWinner(name string) bool {
	return slices.Contains(r.Winners, name)
}

// TopScore is the winning score, 0 when the leaderboard is empty.
func (r *Result) TopScore() float64 {
	if len(r.Leaderboard) == 0 {
		return 0
	}
	return r.Leaderboard[0].Score
}

// Rank orders players by score descending, keeping the given order among
// equal scores, and collects every player sharing the top score.
func Rank(players []*Player) ([]Standing, []string) {
	board := make([]Standing, 0, len(players))
	for _, p := range players {
		board = append(board, Standing{Name: p.Name(), Score: p.Score(), Status: p.Status(), Hand: p.Hand()})
	}
	slices.SortStableFunc(board, func(a, b Standing) int {
		return cmp.Compare(b.Score, a.Score)
	})

	var winners []string
	for _, s := range board {
		if s.Score != board[0].Score {
			break
		}
		winners = append(winners, s.Name)
	}
	return board, winners
}
