package sound

import "github.com/palemoky/eleven/internal/game"

// Effect names, matching file base names in the sound directory.
const (
	EffectDraw  = "draw"
	EffectBust  = "bust"
	EffectStand = "stand"
	EffectWin   = "win"
)

// Effects lists every effect the manager looks for.
var Effects = []string{EffectDraw, EffectBust, EffectStand, EffectWin}

// effectFor maps an engine event to the effect it triggers, if any.
func effectFor(ev game.Event) (string, bool) {
	switch ev.Type {
	case game.EventCardDrawn:
		return EffectDraw, true
	case game.EventPlayerBusted:
		return EffectBust, true
	case game.EventPlayerStood:
		return EffectStand, true
	case game.EventGameEnded:
		return EffectWin, true
	}
	return "", false
}

// OnEvent makes the manager a game.Observer.
func (sm *SoundManager) OnEvent(ev game.Event) {
	if name, ok := effectFor(ev); ok {
		sm.Play(name)
	}
}
