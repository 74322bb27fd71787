package game

import (
	"fmt"

	"github.com/palemoky/eleven/internal/apperrors"
	"github.com/palemoky/eleven/internal/game/card"
)

// BustThreshold is the highest score a hand may reach without busting.
const BustThreshold = 11.0

// Player holds one seat's hand and lifecycle. Score is derived from the hand
// on every transition and is forced to 0 on bust.
type Player struct {
	name   string
	hand   card.Hand
	status Status
	score  float64
}

// NewPlayer returns an active player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{name: name, status: StatusActive}
}

// Draw deals one card from d into the hand. A hand totalling more than
// BustThreshold busts the player.
func (p *Player) Draw(d *card.Deck) (card.Card, error) {
	if p.status != StatusActive {
		return card.Card{}, fmt.Errorf("%w: %s has %s", apperrors.ErrPlayerNotActive, p.Name(), p.status)
	}
	c, err := d.Deal()
	if err != nil {
		return card.Card{}, err
	}
	p.hand = append(p.hand, c)
	p.score = p.hand.Total()
	if p.score > BustThreshold {
		p.status = StatusBusted
		p.score = 0
	}
	return c, nil
}

// Decline stands on the current hand.
func (p *Player) Decline() error {
	if p.status != StatusActive {
		return fmt.Errorf("%w: %s has %s", apperrors.ErrPlayerNotActive, p.Name(), p.status)
	}
	p.score = p.hand.Total()
	p.status = StatusStood
	return nil
}

// Hand returns a copy of the cards held. A busted hand is kept for display only.
func (p *Player) Hand() card.Hand { return p.hand.Clone() }

// Name is the player's unique reporting key.
func (p *Player) Name() string { return p.name }

func (p *Player) Score() float64 { return p.score }
func (p *Player) Status() Status { return p.status }
func (p *Player) IsActive() bool { return p.status == StatusActive }
func (p *Player) String() string { return fmt.Sprintf("%s (%d cards)", p.Name(), len(p.hand)) }
