package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"casino-go/casino"
	"casino-go/common/logger"
	"casino-go/input"
	"casino-go/ledger"

	"github.com/schollz/progressbar/v3"
)

func testSimulator(t *testing.T, sessions int) *simulator {
	t.Helper()
	journal, err := ledger.Open(":memory:")
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() { journal.Close() })
	return &simulator{
		config: simConfig{
			Sessions: sessions,
			Ticks:    5000,
			Workers:  2,
			Seed:     11,
			QuitRate: 0.1,
			Casino: casino.Config{
				StartingBalance: 500,
				Increment:       10,
				SpinTicks:       10,
				HorseWeights:    []float64{0.4, 0.3, 0.2, 0.1},
				FinishLine:      60,
				Repeat:          input.DefaultTuning(),
			},
		},
		journal: journal,
		bar:     progressbar.DefaultSilent(int64(sessions)),
		log:     logger.Nop(),
	}
}

func TestRunMatchesLedger(t *testing.T) {
	sim := testSimulator(t, 4)
	res, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks.Load() != 4*5000 {
		t.Errorf("ticks = %d", res.Ticks.Load())
	}

	rows, err := sim.journal.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("nothing recorded")
	}
	for _, r := range rows {
		got := res.Games.Get(r.Game)
		if got.Rounds != r.Rounds || got.Staked != r.Staked || got.Credited != r.Credited {
			t.Errorf("%s: tally %+v, ledger %+v", r.Game, got, r)
		}
	}

	var out bytes.Buffer
	report(&out, res, 4, 1)
	if !strings.Contains(out.String(), "return") || !strings.Contains(out.String(), rows[0].Game) {
		t.Errorf("report:\n%s", out.String())
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := testSimulator(t, 2).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := testSimulator(t, 2).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.FinalTotals.Load() != b.FinalTotals.Load() || a.Bankrupt.Load() != b.Bankrupt.Load() {
		t.Errorf("same seeds, different outcomes: %d/%d vs %d/%d",
			a.FinalTotals.Load(), a.Bankrupt.Load(), b.FinalTotals.Load(), b.Bankrupt.Load())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testSimulator(t, 3).Run(ctx); err == nil {
		t.Errorf("cancelled run reported success")
	}
}
