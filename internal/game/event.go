package game

import (
	"github.com/google/uuid"

	"github.com/palemoky/eleven/internal/game/card"
)

// EventType names a presentation event raised by the engine.
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventRoundStarted EventType = "round_started"
	EventCardDrawn    EventType = "card_drawn"
	EventPlayerBusted EventType = "player_busted"
	EventPlayerStood  EventType = "player_stood"
	EventGameEnded    EventType = "game_ended"
)

// Event carries whatever a front end needs to render one step of the game.
// Fields not relevant to Type are left zero.
type Event struct {
	Type    EventType
	GameID  uuid.UUID
	Round   int
	Player  string
	Players []string
	Card    card.Card
	Hand    card.Hand
	Score   float64
	Result  *Result
}

// Observer receives engine events. Implementations must not block for long;
// the engine waits for OnEvent to return.
type Observer interface {
	OnEvent(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnEvent(ev Event) { f(ev) }

type multiObserver []Observer

func (m multiObserver) OnEvent(ev Event) {
	for _, o := range m {
		o.OnEvent(ev)
	}
}

// Observers fans every event out to each non-nil observer, in order.
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type nopObserver struct{}

func (nopObserver) OnEvent(Event) {}
