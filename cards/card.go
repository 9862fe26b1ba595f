package cards

import "strconv"

const (
	RANKS     = 13
	SUITS     = 4
	DECK_SIZE = RANKS * SUITS
)

// Card packs rank 1..13 (ace..king) and suit 0..3.
type Card int32

func NewCard(rank, suit int) Card {
	if rank < 1 || rank > RANKS || suit < 0 || suit >= SUITS {
		panic("card out of range")
	}
	return Card(suit*RANKS + rank - 1)
}

func (card Card) Rank() int {
	return int(card)%RANKS + 1
}

func (card Card) Suit() int {
	return int(card) / RANKS
}

var rank2string = map[int]string{1: "A", 11: "J", 12: "Q", 13: "K"}

var suit2string = [SUITS]string{"♠", "♥", "♦", "♣"}

func (card Card) String() string {
	r, ok := rank2string[card.Rank()]
	if !ok {
		r = strconv.Itoa(card.Rank())
	}
	return r + suit2string[card.Suit()]
}

// Value is the blackjack value of a single card, aces counted high.
func (card Card) Value() int {
	switch r := card.Rank(); {
	case r == 1:
		return 11
	case r > 10:
		return 10
	default:
		return r
	}
}

// HandValue sums a hand, turning aces from 11 into 1 while it is over 21.
func HandValue(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += c.Value()
		if c.Rank() == 1 {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
