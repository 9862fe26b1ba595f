package betting

import (
	"fmt"

	"casino-go/input"
)

// Stake is the amount wagered in the betting phase of every game. It moves in
// fixed increments and stays within [increment, balance]; adjustments that
// would leave that range are ignored.
type Stake struct {
	amount    int64
	increment int64
}

func NewStake(increment int64) (*Stake, error) {
	if increment <= 0 {
		return nil, fmt.Errorf("stake increment %d: %w", increment, ErrInvalidAmount)
	}
	return &Stake{amount: increment, increment: increment}, nil
}

func (h *Stake) Amount() int64 {
	return h.amount
}

func (h *Stake) Increment() int64 {
	return h.increment
}

func (h *Stake) Raise(balance int64) bool {
	if h.amount+h.increment > balance {
		return false
	}
	h.amount += h.increment
	return true
}

func (h *Stake) Lower() bool {
	if h.amount-h.increment < h.increment {
		return false
	}
	h.amount -= h.increment
	return true
}

func (h *Stake) Reset() {
	h.amount = h.increment
}

// Adjust applies the repeating up/down controls of one frame.
func (h *Stake) Adjust(f input.Frame, rep *input.Repeater, balance int64) {
	if rep.Repeat(f, input.ACTION_UP) {
		h.Raise(balance)
	}
	if rep.Repeat(f, input.ACTION_DOWN) {
		h.Lower()
	}
}

// Place clamps the stake to what the wallet holds and debits it.
func (h *Stake) Place(w Wallet) (int64, error) {
	h.amount = min(h.amount, w.Balance())
	if err := w.Debit(h.amount); err != nil {
		return 0, fmt.Errorf("place stake: %w", err)
	}
	return h.amount, nil
}
