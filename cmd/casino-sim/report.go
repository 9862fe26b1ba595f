package main

import (
	"fmt"
	"io"
	"time"

	"casino-go/common/bench"

	"github.com/dustin/go-humanize"
)

func report(w io.Writer, res *simResult, sessions int, elapsed time.Duration) {
	ticks := res.Ticks.Load()
	fmt.Fprintf(w, "%d sessions, %s frames in %s (%s frames/s)\n",
		sessions, humanize.Comma(ticks), elapsed.Round(time.Millisecond),
		humanize.Comma(int64(bench.Rate(ticks, elapsed))))
	fmt.Fprintf(w, "bankruptcies: %s, average final balance: %s\n",
		humanize.Comma(res.Bankrupt.Load()), humanize.Comma(res.FinalTotals.Load()/int64(max(sessions, 1))))

	fmt.Fprintf(w, "%-10s %10s %14s %14s %8s\n", "game", "rounds", "staked", "paid", "return")
	res.Games.Foreach(func(game string, t tally) bool {
		rtp := 0.0
		if t.Staked > 0 {
			rtp = float64(t.Credited) / float64(t.Staked) * 100
		}
		fmt.Fprintf(w, "%-10s %10s %14s %14s %7.2f%%\n", game,
			humanize.Comma(t.Rounds), humanize.Comma(t.Staked), humanize.Comma(t.Credited), rtp)
		return true
	})
}
