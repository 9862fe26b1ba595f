package roulette

import "fmt"

const POCKETS = 37

type Color int

const (
	COLOR_GREEN = Color(0)
	COLOR_RED   = Color(1)
	COLOR_BLACK = Color(2)
)

var Color2string = map[Color]string{
	COLOR_GREEN: "Green",
	COLOR_RED:   "Red",
	COLOR_BLACK: "Black",
}

func (c Color) String() string {
	return Color2string[c]
}

// ColorOf uses the simplified wheel: 0 green, odd red, even black.
func ColorOf(n int) Color {
	switch {
	case n == 0:
		return COLOR_GREEN
	case n%2 == 1:
		return COLOR_RED
	default:
		return COLOR_BLACK
	}
}

type BetType int

const (
	BET_NUMBER = BetType(0)
	BET_COLOR  = BetType(1)
	BET_PARITY = BetType(2)
	BET_DOZEN  = BetType(3)

	betTypeCount = 4
)

var BetType2string = map[BetType]string{
	BET_NUMBER: "Number",
	BET_COLOR:  "Color",
	BET_PARITY: "Parity",
	BET_DOZEN:  "Dozen",
}

func (t BetType) String() string {
	return BetType2string[t]
}

// stake * multiplier is credited on a win, the stake included
var payoutMultiplier = [betTypeCount]int64{
	BET_NUMBER: 36,
	BET_COLOR:  2,
	BET_PARITY: 2,
	BET_DOZEN:  3,
}

var selectionDomain = [betTypeCount]int{
	BET_NUMBER: POCKETS,
	BET_COLOR:  2,
	BET_PARITY: 2,
	BET_DOZEN:  3,
}

var colorOptions = [2]Color{COLOR_RED, COLOR_BLACK}

var parityOptions = [2]string{"Even", "Odd"}

var dozenRanges = [3][2]int{{1, 12}, {13, 24}, {25, 36}}

func (t BetType) Multiplier() int64 {
	return payoutMultiplier[t]
}

// Domain is the number of selectable options for the bet type.
func (t BetType) Domain() int {
	return selectionDomain[t]
}

// Bet is one bet type together with its selected option.
type Bet struct {
	Type      BetType
	Selection int
}

func (b Bet) Wins(n int) bool {
	switch b.Type {
	case BET_NUMBER:
		return n == b.Selection
	case BET_COLOR:
		return ColorOf(n) == colorOptions[b.Selection]
	case BET_PARITY:
		if n == 0 {
			return false
		}
		return n%2 == b.Selection
	case BET_DOZEN:
		r := dozenRanges[b.Selection]
		return r[0] <= n && n <= r[1]
	}
	panic(fmt.Sprintf("unknown bet type %d", b.Type))
}

// Payout is the credit for stake on b when the wheel lands on n.
func (b Bet) Payout(stake int64, n int) int64 {
	if !b.Wins(n) {
		return 0
	}
	return stake * b.Type.Multiplier()
}

func (b Bet) Label() string {
	switch b.Type {
	case BET_NUMBER:
		return fmt.Sprint(b.Selection)
	case BET_COLOR:
		return colorOptions[b.Selection].String()
	case BET_PARITY:
		return parityOptions[b.Selection]
	case BET_DOZEN:
		return DozenLabel(dozenRanges[b.Selection][0])
	}
	return "?"
}

func (b Bet) String() string {
	return b.Type.String() + " " + b.Label()
}

func ParityLabel(n int) string {
	if n == 0 {
		return "-"
	}
	return parityOptions[n%2]
}

func DozenLabel(n int) string {
	for _, r := range dozenRanges {
		if r[0] <= n && n <= r[1] {
			return fmt.Sprintf("%d-%d", r[0], r[1])
		}
	}
	return "-"
}
