package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"casino-go/appconfig"
	"casino-go/common/bench"
	"casino-go/common/logger"
	"casino-go/ledger"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "yaml config file, environment only when empty")
	sessions := flag.Int("sessions", 100, "independent sessions to play")
	ticks := flag.Int("ticks", 20000, "frames per session")
	workers := flag.Int("workers", runtime.NumCPU(), "sessions played at once")
	quitRate := flag.Float64("quit-rate", 0.1, "chance of returning to the menu after a round")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}
	cfg, err := appconfig.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *sessions < 1 || *ticks < 1 || *workers < 1 {
		log.Fatal("sessions, ticks and workers must be positive")
	}
	// the log file keeps the progress bar readable
	lg, err := logger.New(cfg.Env, cfg.LogFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer lg.Sync()

	journal, err := ledger.Open(cfg.LedgerDSN)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer journal.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.Default(int64(*sessions), "sessions")
	} else {
		bar = progressbar.DefaultSilent(int64(*sessions), "sessions")
	}

	sim := &simulator{
		config: simConfig{
			Sessions: *sessions,
			Ticks:    *ticks,
			Workers:  *workers,
			Seed:     seed,
			QuitRate: *quitRate,
			Casino:   cfg.Session(),
		},
		journal: journal,
		bar:     bar,
		log:     lg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg.Info("simulation started",
		zap.Int("sessions", *sessions),
		zap.Int("ticks", *ticks),
		zap.Int("workers", *workers),
		zap.Int64("seed", seed),
	)
	var res *simResult
	elapsed, err := bench.MeasureExec(func() error {
		var err error
		res, err = sim.Run(ctx)
		return err
	})
	if err != nil {
		lg.Error("simulation failed", zap.Error(err))
		log.Fatal(err.Error())
	}
	bar.Finish()

	report(os.Stdout, res, *sessions, elapsed)
	rows, err := journal.Summary(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Println()
	fmt.Println("Ledger:")
	for _, r := range rows {
		fmt.Printf("  %-10s %s rounds, net %s\n", r.Game, humanize.Comma(r.Rounds), humanize.Comma(r.Net()))
	}
}
