package horserace

import (
	"math/rand"
	"testing"

	"casino-go/betting"
	"casino-go/common/random"
	"casino-go/input"
)

type harness struct {
	t      *testing.T
	engine *Engine
	rep    *input.Repeater
	purse  *betting.Purse
}

func newHarness(t *testing.T, finish int, rng random.Source) *harness {
	t.Helper()
	e, err := New(Config{Weights: []float64{0.5, 0.25, 0.25}, FinishLine: finish, Increment: 10}, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rep, err := input.NewRepeater(input.DefaultTuning())
	if err != nil {
		t.Fatalf("NewRepeater: %v", err)
	}
	return &harness{t: t, engine: e, rep: rep, purse: betting.NewPurse(500)}
}

func (h *harness) press(actions ...input.Action) bool {
	h.t.Helper()
	leave, err := h.engine.Update(input.Press(actions...), h.rep, h.purse)
	if err != nil {
		h.t.Fatalf("Update: %v", err)
	}
	return leave
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default field", Config{Weights: []float64{0.4, 0.3, 0.2, 0.1}, FinishLine: 236, Increment: 10}, false},
		{"weights over one", Config{Weights: []float64{0.5, 0.6}, FinishLine: 10, Increment: 10}, true},
		{"zero weight", Config{Weights: []float64{1, 0}, FinishLine: 10, Increment: 10}, true},
		{"empty field", Config{FinishLine: 10, Increment: 10}, true},
		{"no track", Config{Weights: []float64{1}, FinishLine: 0, Increment: 10}, true},
		{"no increment", Config{Weights: []float64{1}, FinishLine: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config, rand.New(rand.NewSource(1)))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaxStepAndPayout(t *testing.T) {
	e, err := New(Config{Weights: []float64{0.4, 0.3, 0.2, 0.1}, FinishLine: 236, Increment: 10}, random.NewScripted())
	if err != nil {
		t.Fatal(err)
	}
	wantSteps := []int{5, 4, 4, 3}
	for i, want := range wantSteps {
		if got := e.MaxStep(i); got != want {
			t.Errorf("MaxStep(%d) = %d, want %d", i, got, want)
		}
	}
	if got := e.Payout(10, 0); got != 25 {
		t.Errorf("Payout(10, 0) = %d, want 25", got)
	}
	if got := e.Payout(10, 3); got != 100 {
		t.Errorf("Payout(10, 3) = %d, want 100", got)
	}
	if got := e.Payout(15, 1); got != 50 {
		t.Errorf("Payout(15, 1) = %d, want 50", got)
	}
}

func TestSelectionWraps(t *testing.T) {
	h := newHarness(t, 10, random.NewScripted())
	h.press(input.ACTION_LEFT)
	if h.engine.Selected() != 2 {
		t.Errorf("left from 0 = %d, want 2", h.engine.Selected())
	}
	h.press(input.ACTION_RIGHT)
	h.press(input.ACTION_RIGHT)
	if h.engine.Selected() != 1 {
		t.Errorf("selected = %d, want 1", h.engine.Selected())
	}
}

func TestRace(t *testing.T) {
	tests := []struct {
		name        string
		pick        int
		moves       []int
		wantWinner  int
		wantBalance int64
	}{
		{
			name:        "picked favourite wins",
			pick:        0,
			moves:       []int{5, 4, 4, 5, 4, 3},
			wantWinner:  0,
			wantBalance: 510,
		},
		{
			name:        "picked horse loses",
			pick:        2,
			moves:       []int{5, 4, 4, 5, 4, 3},
			wantWinner:  0,
			wantBalance: 490,
		},
		{
			name:        "tie goes to lower index",
			pick:        1,
			moves:       []int{0, 4, 4, 0, 4, 4},
			wantWinner:  1,
			wantBalance: 530,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := random.NewScripted(tt.moves...)
			h := newHarness(t, 8, rng)
			for range tt.pick {
				h.press(input.ACTION_RIGHT)
			}
			h.press(input.ACTION_CONFIRM)
			if h.engine.Stage() != STAGE_RACING || h.purse.Balance() != 490 {
				t.Fatalf("stage %s balance %d", Stage2string[h.engine.Stage()], h.purse.Balance())
			}

			h.press()
			if h.engine.Stage() != STAGE_RACING {
				t.Fatalf("race ended after one tick")
			}
			h.press()
			if h.engine.Stage() != STAGE_FINISHED {
				t.Fatalf("race still running")
			}
			if rng.Remaining() != 0 {
				t.Errorf("%d moves unused", rng.Remaining())
			}
			if h.engine.Winner() != tt.wantWinner {
				t.Errorf("winner = %d, want %d", h.engine.Winner(), tt.wantWinner)
			}
			if h.purse.Balance() != tt.wantBalance {
				t.Errorf("balance = %d, want %d", h.purse.Balance(), tt.wantBalance)
			}
			for i, pos := range h.engine.View().Positions {
				if pos > 8 {
					t.Errorf("horse %d at %d past the finish line", i, pos)
				}
			}
			if settled := h.purse.Drain(); len(settled) != 1 || settled[0].BalanceAfter != tt.wantBalance {
				t.Errorf("settlements %+v", settled)
			}
		})
	}
}

func TestPositionsNeverDecrease(t *testing.T) {
	h := newHarness(t, 236, rand.New(rand.NewSource(42)))
	for round := 0; round < 20; round++ {
		h.press(input.ACTION_CONFIRM)
		prev := h.engine.View().Positions
		for ticks := 0; h.engine.Stage() == STAGE_RACING; ticks++ {
			if ticks > 1000 {
				t.Fatalf("race never finished")
			}
			h.press()
			cur := h.engine.View().Positions
			for i := range cur {
				if cur[i] < prev[i] || cur[i] > 236 {
					t.Fatalf("horse %d moved %d -> %d", i, prev[i], cur[i])
				}
			}
			prev = cur
		}
		if w := h.engine.Winner(); w < 0 || prev[w] != 236 {
			t.Errorf("winner %d at %v", w, prev)
		}
		h.press(input.ACTION_CONFIRM)
	}
}

func TestFinishedConfirmResets(t *testing.T) {
	h := newHarness(t, 3, random.NewScripted(3, 0, 0))
	h.press(input.ACTION_RIGHT)
	h.press(input.ACTION_UP)
	h.press(input.ACTION_CONFIRM)
	h.press()
	if h.engine.Stage() != STAGE_FINISHED {
		t.Fatalf("stage %s", Stage2string[h.engine.Stage()])
	}
	h.press(input.ACTION_CONFIRM)
	v := h.engine.View()
	if v.Stage != STAGE_BETTING || v.Selected != 0 || v.Stake != 10 || v.Winner != -1 {
		t.Errorf("view after reset %+v", v)
	}
	for _, pos := range v.Positions {
		if pos != 0 {
			t.Errorf("positions not cleared: %v", v.Positions)
		}
	}
}

func TestQuitMidRace(t *testing.T) {
	h := newHarness(t, 10, random.NewScripted())
	h.press(input.ACTION_CONFIRM)
	if !h.press(input.ACTION_QUIT) {
		t.Fatalf("quit not reported")
	}
	if h.purse.Balance() != 490 || len(h.purse.Drain()) != 0 {
		t.Errorf("abandoned race settled or refunded")
	}
}
