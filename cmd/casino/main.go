package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"casino-go/appconfig"
	"casino-go/casino"
	"casino-go/common/logger"
	"casino-go/common/random"
	"casino-go/ledger"
	"casino-go/render"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	clearScreen  = "\033[H\033[2J"
	recentRounds = 5
)

func main() {
	configPath := flag.String("config", "", "yaml config file, environment only when empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env loaded: %v", err)
	}
	cfg, err := appconfig.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	lg, err := logger.New(cfg.Env, cfg.LogFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer lg.Sync()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		log.Fatal("casino needs an interactive terminal, use casino-sim for batch play")
	}

	journal, err := ledger.Open(cfg.LedgerDSN)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer journal.Close()

	session, err := casino.New(cfg.Session(), random.New(cfg.Seed), lg)
	if err != nil {
		log.Fatal(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err.Error())
	}
	runErr := run(ctx, cfg, session, journal, lg)
	term.Restore(fd, oldState)
	fmt.Print(clearScreen)

	if runErr != nil {
		lg.Error("session stopped", zap.Error(runErr))
		fmt.Fprintln(os.Stderr, runErr)
	}
	if err := printSummary(context.Background(), journal, session.Balance()); err != nil {
		lg.Error("summary", zap.Error(err))
	}
	if runErr != nil {
		os.Exit(1)
	}
}

type keyEvent struct {
	buf []byte
	at  time.Time
}

// readKeys forwards raw stdin reads until ctx ends. A read already blocked
// on stdin outlives the session; it ends with the process.
func readKeys(ctx context.Context, out chan<- keyEvent) {
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		ev := keyEvent{buf: append([]byte(nil), buf[:n]...), at: time.Now()}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func run(ctx context.Context, cfg *appconfig.AppConfig, session *casino.Session, journal *ledger.Ledger, lg *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan keyEvent, 16)
	go readKeys(ctx, keys)

	kb := &keyboard{}
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	lg.Info("casino opened",
		zap.Int64("balance", session.Balance()),
		zap.Int("fps", cfg.FPS),
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keys:
			actions, interrupt := decodeKeys(ev.buf)
			if interrupt {
				return nil
			}
			for _, a := range actions {
				kb.Press(a, ev.at)
			}
		case now := <-ticker.C:
			snap, err := session.Tick(kb.Frame(now))
			if err != nil {
				return err
			}
			if err := journal.Record(ctx, session.Settlements()...); err != nil {
				return err
			}
			// raw mode does not translate newlines
			screen := strings.ReplaceAll(render.Text(snap, true), "\n", "\r\n")
			fmt.Print(clearScreen + screen)
		}
	}
}

func printSummary(ctx context.Context, journal *ledger.Ledger, balance int64) error {
	rows, err := journal.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Final balance: %s\n", render.Money(balance))
	for _, r := range rows {
		fmt.Printf("%-10s rounds %4d  staked %10s  paid %10s  return %.1f%%\n",
			r.Game, r.Rounds, render.Money(r.Staked), render.Money(r.Credited), r.RTP()*100)
	}

	recent, err := journal.Recent(ctx, recentRounds)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Println("\nLast rounds:")
	}
	for _, e := range recent {
		fmt.Println(formatEntry(e))
	}
	return nil
}

func formatEntry(e ledger.Entry) string {
	return fmt.Sprintf("  %s  %-10s stake %6s  paid %6s  %s",
		e.Time().Format(time.TimeOnly), e.Game, render.Money(e.Stake), render.Money(e.Credit), e.Detail)
}
