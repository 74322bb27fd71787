// Package game runs a game of Eleven: players take cards in turn, anyone whose
// hand totals more than 11 busts with a score of 0, and the game ends once
// every player has busted or stood.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/palemoky/eleven/internal/apperrors"
	"github.com/palemoky/eleven/internal/game/card"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Option configures an Engine.
type Option func(*Engine)

// WithObserver sets the observer that receives presentation events.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithRand sets the generator used to shuffle each new deck.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithDeckFactory replaces how the engine builds the deck for each game.
func WithDeckFactory(f func(r *rand.Rand) (*card.Deck, error)) Option {
	return func(e *Engine) {
		if f != nil {
			e.newDeck = f
		}
	}
}

// WithLogger sets the logger for engine diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine plays games. It holds no per-game state; each Play call owns the deck
// and players it creates.
type Engine struct {
	decider  Decider
	observer Observer
	rng      *rand.Rand
	newDeck  func(r *rand.Rand) (*card.Deck, error)
	log      logrus.FieldLogger
}

// NewEngine returns an engine that asks d for every decision. Play fails
// with ErrDecisionFailed when d is nil.
func NewEngine(d Decider, opts ...Option) *Engine {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	e := &Engine{
		decider:  d,
		observer: nopObserver{},
		newDeck:  func(r *rand.Rand) (*card.Deck, error) { return card.NewDeck(r), nil },
		log:      quiet,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// session 一局游戏的状态
type session struct {
	id         uuid.UUID
	deck       *card.Deck
	players    []*Player
	active     []*Player
	eliminated []*Player
	round      int
	log        logrus.FieldLogger
}

// Play runs one full game for the given names, in turn order.
func (e *Engine) Play(ctx context.Context, names []string) (*Result, error) {
	if err := validateNames(names); err != nil {
		return nil, err
	}
	if e.decider == nil {
		return nil, fmt.Errorf("%w: no decider configured", apperrors.ErrDecisionFailed)
	}

	deck, err := e.newDeck(e.rng)
	if err != nil {
		return nil, fmt.Errorf("building deck: %w", err)
	}
	if deck == nil {
		return nil, fmt.Errorf("building deck: factory returned no deck: %w", apperrors.ErrEmptyDeck)
	}

	s := &session{
		id:   uuid.New(),
		deck: deck,
	}
	s.log = e.log.WithField("game_id", s.id.String())
	for _, name := range names {
		s.players = append(s.players, NewPlayer(name))
	}
	s.active = slices.Clone(s.players)

	s.log.WithField("players", strings.Join(names, ",")).Info("game started")
	e.observer.OnEvent(Event{Type: EventGameStarted, GameID: s.id, Players: slices.Clone(names)})

	if err := e.openingDeal(s); err != nil {
		return nil, err
	}

	for len(s.active) > 0 {
		s.round++
		e.observer.OnEvent(Event{Type: EventRoundStarted, GameID: s.id, Round: s.round, Players: namesOf(s.active)})
		if err := e.playRound(ctx, s); err != nil {
			return nil, err
		}
	}

	board, winners := Rank(append(slices.Clone(s.eliminated), s.active...))
	res := &Result{
		GameID:      s.id,
		Leaderboard: board,
		Winners:     winners,
		Eliminated:  namesOf(s.eliminated),
		Rounds:      s.round,
	}
	s.log.WithFields(logrus.Fields{
		"rounds":  res.Rounds,
		"winners": strings.Join(winners, ","),
		"score":   res.TopScore(),
	}).Info("game ended")
	e.observer.OnEvent(Event{Type: EventGameEnded, GameID: s.id, Round: s.round, Result: res})
	return res, nil
}

func validateNames(names []string) error {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidPlayerCount, len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: blank name", apperrors.ErrInvalidPlayerName)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q appears twice", apperrors.ErrInvalidPlayerName, name)
		}
		seen[name] = true
	}
	return nil
}

// openingDeal gives every player one card in turn order. A single card is
// worth at most 10, so nobody can bust here.
func (e *Engine) openingDeal(s *session) error {
	for _, p := range s.players {
		if err := e.draw(s, p); err != nil {
			return err
		}
	}
	return nil
}

// playRound asks each still-active player once, in turn order.
func (e *Engine) playRound(ctx context.Context, s *session) error {
	for _, p := range slices.Clone(s.active) {
		wants, err := e.decider.WantsCard(ctx, Turn{
			Round:     s.round,
			Name:      p.Name(),
			Hand:      p.Hand(),
			Score:     p.Score(),
			CardsLeft: s.deck.Len(),
		})
		if err != nil {
			return fmt.Errorf("%w: %s in round %d: %w", apperrors.ErrDecisionFailed, p.Name(), s.round, err)
		}

		if wants {
			err = e.draw(s, p)
		} else {
			err = e.stand(s, p)
		}
		if err != nil {
			return err
		}

		if !p.IsActive() {
			s.eliminate(p)
		}
	}
	return nil
}

func (e *Engine) draw(s *session, p *Player) error {
	c, err := p.Draw(s.deck)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyDeck) {
			s.log.WithField("player", p.Name()).Error("deck exhausted")
			return fmt.Errorf("%w: %s drew in round %d: %w", apperrors.ErrDeckExhausted, p.Name(), s.round, err)
		}
		return err
	}

	log := s.log.WithFields(logrus.Fields{"player": p.Name(), "round": s.round, "card": c.String()})
	e.observer.OnEvent(Event{Type: EventCardDrawn, GameID: s.id, Round: s.round, Player: p.Name(), Card: c, Hand: p.Hand(), Score: p.Score()})
	if p.Status() == StatusBusted {
		log.WithField("hand", p.Hand().String()).Info("player busted")
		e.observer.OnEvent(Event{Type: EventPlayerBusted, GameID: s.id, Round: s.round, Player: p.Name(), Hand: p.Hand()})
		return nil
	}
	log.WithField("score", p.Score()).Debug("card drawn")
	return nil
}

func (e *Engine) stand(s *session, p *Player) error {
	if err := p.Decline(); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"player": p.Name(), "round": s.round, "score": p.Score()}).Info("player stood")
	e.observer.OnEvent(Event{Type: EventPlayerStood, GameID: s.id, Round: s.round, Player: p.Name(), Hand: p.Hand(), Score: p.Score()})
	return nil
}

// eliminate moves p from the active list to the end of the eliminated list.
func (s *session) eliminate(p *Player) {
	s.active = slices.DeleteFunc(s.active, func(q *Player) bool { return q == p })
	s.eliminated = append(s.eliminated, p)
}

func namesOf(players []*Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}
	return names
}
