package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"casino-go/autoplay"
	"casino-go/betting"
	"casino-go/casino"
	"casino-go/common/defaultmap"
	"casino-go/ledger"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type simConfig struct {
	Sessions int
	Ticks    int
	Workers  int
	Seed     int64
	QuitRate float64
	Casino   casino.Config
}

type tally struct {
	Rounds   int64
	Staked   int64
	Credited int64
}

func (t tally) add(s betting.Settlement) tally {
	t.Rounds++
	t.Staked += s.Stake
	t.Credited += s.Credit
	return t
}

type simResult struct {
	Games       defaultmap.DefaultSafemap[string, tally]
	Ticks       atomic.Int64
	Bankrupt    atomic.Int64
	FinalTotals atomic.Int64
}

type simulator struct {
	config  simConfig
	journal *ledger.Ledger
	bar     *progressbar.ProgressBar
	log     *zap.Logger
}

// Run plays every session to its tick budget on a bounded pool.
func (h *simulator) Run(ctx context.Context) (*simResult, error) {
	res := &simResult{
		Games: defaultmap.New[string](func() tally { return tally{} }),
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.config.Workers)
	for i := range h.config.Sessions {
		seed := h.config.Seed + int64(i)
		g.Go(func() error {
			if err := h.play(ctx, seed, res); err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			return h.bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *simulator) play(ctx context.Context, seed int64, res *simResult) error {
	rng := rand.New(rand.NewSource(seed))
	session, err := casino.New(h.config.Casino, rng, h.log.With(zap.Int64("seed", seed)))
	if err != nil {
		return err
	}
	actor := autoplay.NewActor(rng)
	actor.QuitRate = h.config.QuitRate

	snap := session.Snapshot()
	for tick := range h.config.Ticks {
		if tick%1000 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		f, err := actor.GetAction(snap)
		if err != nil {
			return err
		}
		prev := snap.Scene
		if snap, err = session.Tick(f); err != nil {
			return err
		}
		if snap.Scene == casino.SCENE_BANKRUPT && prev != casino.SCENE_BANKRUPT {
			res.Bankrupt.Add(1)
		}

		settled := session.Settlements()
		if len(settled) == 0 {
			continue
		}
		for _, s := range settled {
			res.Games.Update(s.Game, func(t tally) tally { return t.add(s) })
		}
		if err := h.journal.Record(ctx, settled...); err != nil {
			return err
		}
	}
	res.Ticks.Add(int64(h.config.Ticks))
	res.FinalTotals.Add(session.Balance())
	return nil
}
