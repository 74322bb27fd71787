package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/palemoky/eleven/internal/apperrors"
	"github.com/palemoky/eleven/internal/game/card"
)

// Turn is the snapshot a Decider sees when asked for one decision.
type Turn struct {
	Round     int
	Name      string
	Hand      card.Hand
	Score     float64
	CardsLeft int
}

// Decider supplies the per-turn "wants another card" decision.
type Decider interface {
	WantsCard(ctx context.Context, t Turn) (bool, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, t Turn) (bool, error)

func (f DeciderFunc) WantsCard(ctx context.Context, t Turn) (bool, error) {
	return f(ctx, t)
}

// Script replays fixed decisions per player, in the order they are requested.
type Script struct {
	mu        sync.Mutex
	decisions map[string][]bool
}

// NewScript copies decisions so the caller's slices are left untouched.
func NewScript(decisions map[string][]bool) *Script {
	s := &Script{decisions: make(map[string][]bool, len(decisions))}
	for name, d := range decisions {
		s.decisions[name] = append([]bool(nil), d...)
	}
	return s
}

func (s *Script) WantsCard(_ context.Context, t Turn) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.decisions[t.Name]
	if len(queue) == 0 {
		return false, fmt.Errorf("%w: no decision left for %s in round %d", apperrors.ErrScriptExhausted, t.Name, t.Round)
	}
	s.decisions[t.Name] = queue[1:]
	return queue[0], nil
}

// remaining reports how many scripted decisions are left for name.
func (s *Script) remaining(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decisions[name])
}

// Threshold is a bot that keeps drawing while its score is below the limit.
type Threshold float64

func (l Threshold) WantsCard(_ context.Context, t Turn) (bool, error) {
	return t.Score < float64(l), nil
}

// Seats routes each decision to the decider registered for the player's
// name, falling back to a default for unregistered seats.
type Seats struct {
	fallback Decider
	seats    map[string]Decider
}

// NewSeats returns a router that sends every unregistered seat to fallback.
func NewSeats(fallback Decider) *Seats {
	return &Seats{fallback: fallback, seats: make(map[string]Decider)}
}

// With registers d for the named seat and returns s for chaining.
func (s *Seats) With(name string, d Decider) *Seats {
	s.seats[name] = d
	return s
}

func (s *Seats) WantsCard(ctx context.Context, t Turn) (bool, error) {
	if d, ok := s.seats[t.Name]; ok {
		return d.WantsCard(ctx, t)
	}
	if s.fallback == nil {
		return false, fmt.Errorf("no decider seated for %s", t.Name)
	}
	return s.fallback.WantsCard(ctx, t)
}
