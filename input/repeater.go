package input

import "fmt"

// Tuning controls how fast a held action repeats.
type Tuning struct {
	BaseInterval int
	MinInterval  int
	AccelRate    int
}

func DefaultTuning() Tuning {
	return Tuning{BaseInterval: 12, MinInterval: 2, AccelRate: 10}
}

func (t Tuning) Validate() error {
	if t.MinInterval < 1 {
		return fmt.Errorf("min interval %d must be >= 1", t.MinInterval)
	}
	if t.BaseInterval < t.MinInterval {
		return fmt.Errorf("base interval %d below min interval %d", t.BaseInterval, t.MinInterval)
	}
	if t.AccelRate < 1 {
		return fmt.Errorf("accel rate %d must be >= 1", t.AccelRate)
	}
	return nil
}

type holdCounter struct {
	frames int
	active bool
}

// Repeater turns per-frame key state into accelerating repeat triggers.
// Output depends only on the (fresh, held) history of each action.
type Repeater struct {
	tuning Tuning
	holds  [actionCount]holdCounter
}

func NewRepeater(tuning Tuning) (*Repeater, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	return &Repeater{tuning: tuning}, nil
}

// Trigger fires on a fresh press, then every interval frames while held,
// the interval shrinking by one every AccelRate held frames.
func (h *Repeater) Trigger(a Action, fresh bool, held bool) bool {
	c := &h.holds[a]
	if fresh {
		*c = holdCounter{active: true}
		return true
	}
	if !held {
		*c = holdCounter{}
		return false
	}
	c.active = true
	c.frames++
	interval := max(h.tuning.MinInterval, h.tuning.BaseInterval-c.frames/h.tuning.AccelRate)
	return c.frames%interval == 0
}

func (h *Repeater) Repeat(f Frame, a Action) bool {
	return h.Trigger(a, f.Pressed.Has(a), f.Held.Has(a))
}

// HeldFrames reports the hold counter of a, and false once it was released.
func (h *Repeater) HeldFrames(a Action) (int, bool) {
	c := h.holds[a]
	return c.frames, c.active
}

// ResetAll forgets every counter. Called on each scene change.
func (h *Repeater) ResetAll() {
	h.holds = [actionCount]holdCounter{}
}
