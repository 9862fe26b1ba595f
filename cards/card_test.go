package cards

import (
	"errors"
	"math/rand"
	"testing"

	"casino-go/common/random"
)

func TestCardEncoding(t *testing.T) {
	for rank := 1; rank <= RANKS; rank++ {
		for suit := 0; suit < SUITS; suit++ {
			c := NewCard(rank, suit)
			if c.Rank() != rank || c.Suit() != suit {
				t.Errorf("NewCard(%d,%d) decodes to (%d,%d)", rank, suit, c.Rank(), c.Suit())
			}
		}
	}
	if got := NewCard(1, 0).String(); got != "A♠" {
		t.Errorf("String() = %q", got)
	}
	if got := NewCard(10, 3).String(); got != "10♣" {
		t.Errorf("String() = %q", got)
	}
}

func hand(ranks ...int) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = NewCard(r, i%SUITS)
	}
	return out
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []int
		expected int
	}{
		{"pair of tens", []int{10, 10}, 20},
		{"blackjack", []int{1, 13}, 21},
		{"soft 17", []int{1, 6}, 17},
		{"double ace", []int{1, 1}, 12},
		{"bust rescue", []int{1, 5, 8}, 14},
		{"four aces", []int{1, 1, 1, 1}, 14},
		{"face cards", []int{11, 12}, 20},
		{"plain bust", []int{10, 5, 8}, 23},
		{"soft 21 three cards", []int{1, 4, 6}, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandValue(hand(tt.ranks...)); got != tt.expected {
				t.Errorf("HandValue(%v) = %d, want %d", tt.ranks, got, tt.expected)
			}
		})
	}
}

// bestValue tries every assignment of aces to 1 or 11.
func bestValue(h []Card) (int, bool) {
	base, aces := 0, 0
	for _, c := range h {
		if c.Rank() == 1 {
			aces++
			base++
		} else {
			base += c.Value()
		}
	}
	best, found := 0, false
	for high := 0; high <= aces; high++ {
		v := base + 10*high
		if v <= 21 && v > best {
			best, found = v, true
		}
	}
	return best, found
}

func TestHandValueProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 2000 {
		deck := NewShuffledDeck(rng)
		n := 2 + rng.Intn(6)
		h := make([]Card, 0, n)
		for range n {
			c, err := deck.Draw()
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			h = append(h, c)
		}
		got := HandValue(h)
		best, ok := bestValue(h)
		if ok && got != best {
			t.Errorf("HandValue(%v) = %d, best non-bust assignment is %d", h, got, best)
		}
		if !ok && got <= 21 {
			t.Errorf("HandValue(%v) = %d but no assignment stays under 22", h, got)
		}
	}
}

func TestDeckDrawsEveryCardOnce(t *testing.T) {
	deck := NewShuffledDeck(rand.New(rand.NewSource(1)))
	seen := make(map[Card]bool)
	for i := 0; i < DECK_SIZE; i++ {
		if deck.Len() != DECK_SIZE-i {
			t.Fatalf("Len = %d before draw %d", deck.Len(), i)
		}
		c, err := deck.Draw()
		if err != nil {
			t.Fatalf("Draw %d: %v", i, err)
		}
		if seen[c] {
			t.Fatalf("card %s drawn twice", c)
		}
		seen[c] = true
	}
	if _, err := deck.Draw(); !errors.Is(err, ErrDeckEmpty) {
		t.Errorf("draw from empty deck err = %v, want ErrDeckEmpty", err)
	}
}

func TestStacked(t *testing.T) {
	top := []Card{NewCard(13, 0), NewCard(12, 0), NewCard(10, 1)}
	deck := Stacked(top...)
	if deck.Len() != DECK_SIZE {
		t.Fatalf("Len = %d", deck.Len())
	}
	for i, want := range top {
		got, err := deck.Draw()
		if err != nil || got != want {
			t.Errorf("draw %d = %s,%v want %s", i, got, err, want)
		}
	}
	for _, c := range deck.Cards() {
		for _, used := range top {
			if c == used {
				t.Errorf("stacked card %s still in deck", c)
			}
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate stacked card")
		}
	}()
	Stacked(NewCard(1, 0), NewCard(1, 0))
}

func TestScriptedShuffleKeepsOrder(t *testing.T) {
	deck := NewShuffledDeck(random.NewScripted())
	first, _ := deck.Draw()
	if first != NewCard(1, 0) {
		t.Errorf("first card = %s, want A♠", first)
	}
}
