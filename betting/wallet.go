package betting

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Settlement is the outcome of one resolved round.
type Settlement struct {
	RoundID      uuid.UUID
	Game         string
	Stake        int64
	Credit       int64
	Detail       string
	BalanceAfter int64
}

func (s Settlement) Net() int64 {
	return s.Credit - s.Stake
}

// Wallet is the only path through which engines touch the balance.
type Wallet interface {
	Balance() int64
	Debit(amount int64) error
	Settle(s Settlement) error
}

// Purse is a plain balance holder implementing Wallet.
type Purse struct {
	balance int64
	settled []Settlement
}

func NewPurse(balance int64) *Purse {
	return &Purse{balance: balance}
}

func (h *Purse) Balance() int64 {
	return h.balance
}

func (h *Purse) Debit(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("debit %d: %w", amount, ErrInvalidAmount)
	}
	if amount > h.balance {
		return fmt.Errorf("debit %d from %d: %w", amount, h.balance, ErrInsufficientFunds)
	}
	h.balance -= amount
	return nil
}

func (h *Purse) Settle(s Settlement) error {
	if s.Credit < 0 {
		return fmt.Errorf("credit %d: %w", s.Credit, ErrInvalidAmount)
	}
	h.balance += s.Credit
	s.BalanceAfter = h.balance
	h.settled = append(h.settled, s)
	return nil
}

// Reset replaces the balance and forgets queued settlements.
func (h *Purse) Reset(balance int64) {
	h.balance = balance
	h.settled = nil
}

// Drain returns settlements recorded since the previous call.
func (h *Purse) Drain() []Settlement {
	out := h.settled
	h.settled = nil
	return out
}
