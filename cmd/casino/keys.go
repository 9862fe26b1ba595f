package main

import (
	"time"

	"casino-go/input"
)

const keyCtrlC = 0x03

// Terminals report key repeats, not key state. A lone event is a tap: fresh
// for one frame, then released. Events closer than repeatGap are the
// terminal's autorepeat, and the key stays held until no event arrives for
// holdWindow.
const (
	repeatGap  = 150 * time.Millisecond
	holdWindow = 200 * time.Millisecond
)

var keyActions = map[byte]input.Action{
	'\r': input.ACTION_CONFIRM,
	'\n': input.ACTION_CONFIRM,
	' ':  input.ACTION_CONFIRM,
	'\t': input.ACTION_CYCLE,
	'q':  input.ACTION_QUIT,
	'Q':  input.ACTION_QUIT,
	'h':  input.ACTION_HIT,
	'H':  input.ACTION_HIT,
	's':  input.ACTION_STAND,
	'S':  input.ACTION_STAND,
}

var arrowActions = map[byte]input.Action{
	'A': input.ACTION_UP,
	'B': input.ACTION_DOWN,
	'C': input.ACTION_RIGHT,
	'D': input.ACTION_LEFT,
}

// decodeKeys turns raw terminal bytes into actions. It reports interrupt
// when Ctrl-C is among them.
func decodeKeys(buf []byte) (actions []input.Action, interrupt bool) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == keyCtrlC:
			interrupt = true
		case b == 0x1b && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O'):
			if a, ok := arrowActions[buf[i+2]]; ok {
				actions = append(actions, a)
			}
			i += 2
		default:
			if a, ok := keyActions[b]; ok {
				actions = append(actions, a)
			}
		}
	}
	return actions, interrupt
}

type keyState struct {
	last      time.Time
	repeating bool
}

// keyboard folds timed key events into per-frame input.
type keyboard struct {
	keys    [input.ACTION_STAND + 1]keyState
	held    input.ActionSet
	pending input.ActionSet
}

func (h *keyboard) Press(a input.Action, at time.Time) {
	k := &h.keys[a]
	k.repeating = !k.last.IsZero() && at.Sub(k.last) <= repeatGap
	k.last = at
	h.pending = h.pending.With(a)
}

// Frame closes the frame ending at now.
func (h *keyboard) Frame(now time.Time) input.Frame {
	var f input.Frame
	for i := range h.keys {
		act := input.Action(i)
		k := &h.keys[i]
		switch {
		case h.pending.Has(act):
			f.Held = f.Held.With(act)
			if !k.repeating || !h.held.Has(act) {
				f.Pressed = f.Pressed.With(act)
			}
		case k.repeating && now.Sub(k.last) <= holdWindow:
			f.Held = f.Held.With(act)
		default:
			k.repeating = false
		}
	}
	h.held = f.Held
	h.pending = 0
	return f
}
