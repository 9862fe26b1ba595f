package cards

import (
	"errors"
	"fmt"

	"casino-go/common/random"

	"github.com/idsulik/go-collections/v3/queue"
)

var ErrDeckEmpty = errors.New("deck is empty")

// Deck is drawn from the front only.
type Deck struct {
	q    *queue.Queue[Card]
	left int
}

func newDeck(order []Card) *Deck {
	h := &Deck{q: queue.New[Card](DECK_SIZE)}
	for _, c := range order {
		h.q.Enqueue(c)
	}
	h.left = len(order)
	return h
}

func orderedCards() []Card {
	out := make([]Card, 0, DECK_SIZE)
	for rank := 1; rank <= RANKS; rank++ {
		for suit := 0; suit < SUITS; suit++ {
			out = append(out, NewCard(rank, suit))
		}
	}
	return out
}

// NewShuffledDeck builds the 52 cards and shuffles them with rng.
func NewShuffledDeck(rng random.Source) *Deck {
	order := orderedCards()
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return newDeck(order)
}

// Stacked returns a full deck whose first draws are top, in order, followed by
// the remaining cards in rank-major order. Duplicates in top panic.
func Stacked(top ...Card) *Deck {
	used := make(map[Card]bool, len(top))
	order := make([]Card, 0, DECK_SIZE)
	for _, c := range top {
		if used[c] {
			panic(fmt.Sprintf("card %s stacked twice", c))
		}
		used[c] = true
		order = append(order, c)
	}
	for _, c := range orderedCards() {
		if !used[c] {
			order = append(order, c)
		}
	}
	return newDeck(order)
}

func (h *Deck) Draw() (Card, error) {
	c, ok := h.q.Dequeue()
	if !ok {
		return 0, ErrDeckEmpty
	}
	h.left--
	return c, nil
}

func (h *Deck) Len() int {
	return h.left
}

// Cards lists the undrawn cards in draw order.
func (h *Deck) Cards() []Card {
	out := make([]Card, 0, h.left)
	h.q.ForEach(func(c Card) {
		out = append(out, c)
	})
	return out
}
