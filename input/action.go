package input

import "strings"

// Action is a logical control, independent of any physical key code.
type Action int32

const (
	ACTION_UP      = Action(0)
	ACTION_DOWN    = Action(1)
	ACTION_LEFT    = Action(2)
	ACTION_RIGHT   = Action(3)
	ACTION_CONFIRM = Action(4)
	ACTION_CYCLE   = Action(5)
	ACTION_QUIT    = Action(6)
	ACTION_HIT     = Action(7)
	ACTION_STAND   = Action(8)

	actionCount = 9
)

var Action2string = map[Action]string{
	ACTION_UP:      "UP",
	ACTION_DOWN:    "DOWN",
	ACTION_LEFT:    "LEFT",
	ACTION_RIGHT:   "RIGHT",
	ACTION_CONFIRM: "CONFIRM",
	ACTION_CYCLE:   "CYCLE",
	ACTION_QUIT:    "QUIT",
	ACTION_HIT:     "HIT",
	ACTION_STAND:   "STAND",
}

func (a Action) String() string {
	if s, ok := Action2string[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// ActionSet is a bitmask of actions.
type ActionSet uint16

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<uint(a)
}

func (s ActionSet) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

func (s ActionSet) String() string {
	names := make([]string, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Frame is what the host reports once per frame: actions that went down this
// frame, and actions that are down at all.
type Frame struct {
	Pressed ActionSet
	Held    ActionSet
}

// Press is a frame where the given actions were freshly pressed.
func Press(actions ...Action) Frame {
	s := NewActionSet(actions...)
	return Frame{Pressed: s, Held: s}
}

// Hold is a frame where the given actions stay down from an earlier frame.
func Hold(actions ...Action) Frame {
	return Frame{Held: NewActionSet(actions...)}
}

func (f Frame) Fresh(a Action) bool {
	return f.Pressed.Has(a)
}
