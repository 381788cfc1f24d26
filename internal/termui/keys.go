package termui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/circle-siege/internal/game"
)

// DefaultHold is how long a key counts as held after its last press.
// Terminals only report presses and auto-repeat, so release is inferred.
const DefaultHold = 120 * time.Millisecond

type action int

const (
	actNone action = iota
	actHold        // key maps to a held game key
	actRestart
	actCopy
	actQuit
)

// translateKey maps a terminal key event to an action and, for actHold,
// the game key it holds.
func translateKey(ev *tcell.EventKey) (action, game.Key) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, ""
	case tcell.KeyEnter:
		return actRestart, ""
	case tcell.KeyUp:
		return actHold, game.KeyArrowUp
	case tcell.KeyDown:
		return actHold, game.KeyArrowDown
	case tcell.KeyLeft:
		return actHold, game.KeyArrowLeft
	case tcell.KeyRight:
		return actHold, game.KeyArrowRight
	case tcell.KeyRune:
	default:
		return actNone, ""
	}

	switch ev.Rune() {
	case 'w', 'W':
		return actHold, game.KeyW
	case 'a', 'A':
		return actHold, game.KeyA
	case 's', 'S':
		return actHold, game.KeyS
	case 'd', 'D':
		return actHold, game.KeyD
	case ' ':
		return actHold, game.KeySpace
	case 'c', 'C':
		return actCopy, ""
	case 'q', 'Q':
		return actQuit, ""
	}
	return actNone, ""
}

// holdTracker synthesizes key releases for terminals.
type holdTracker struct {
	hold    time.Duration
	pressed map[game.Key]time.Time
}

func newHoldTracker(hold time.Duration) *holdTracker {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &holdTracker{hold: hold, pressed: make(map[game.Key]time.Time)}
}

func (h *holdTracker) press(k game.Key, now time.Time, in *game.Sampler) {
	h.pressed[k] = now
	in.KeyDown(k)
}

// expire releases every key not pressed within the hold window.
func (h *holdTracker) expire(now time.Time, in *game.Sampler) {
	for k, at := range h.pressed {
		if now.Sub(at) >= h.hold {
			delete(h.pressed, k)
			in.KeyUp(k)
		}
	}
}
