package random

import "fmt"

// Scripted replays a fixed sequence of Intn results and never reorders on
// Shuffle. It lets tests force exact wheel numbers, race moves and decks.
type Scripted struct {
	values []int
	pos    int
}

func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (h *Scripted) Intn(n int) int {
	if h.pos >= len(h.values) {
		panic("scripted source exhausted")
	}
	v := h.values[h.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d out of range [0,%d)", v, n))
	}
	h.pos++
	return v
}

func (h *Scripted) Shuffle(n int, swap func(i, j int)) {}

// Remaining reports how many scripted values are still unread.
func (h *Scripted) Remaining() int {
	return len(h.values) - h.pos
}
