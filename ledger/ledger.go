package ledger

import (
	"context"
	"fmt"
	"time"

	"casino-go/betting"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settlements (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	round_id      TEXT    NOT NULL UNIQUE,
	game          TEXT    NOT NULL,
	stake         INTEGER NOT NULL,
	credit        INTEGER NOT NULL,
	balance_after INTEGER NOT NULL,
	detail        TEXT    NOT NULL,
	settled_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS settlements_game ON settlements(game);
`

// Entry is one stored settlement.
type Entry struct {
	ID           int64  `db:"id"`
	RoundID      string `db:"round_id"`
	Game         string `db:"game"`
	Stake        int64  `db:"stake"`
	Credit       int64  `db:"credit"`
	BalanceAfter int64  `db:"balance_after"`
	Detail       string `db:"detail"`
	SettledAt    int64  `db:"settled_at"`
}

func (e Entry) Time() time.Time {
	return time.UnixMilli(e.SettledAt)
}

// GameSummary aggregates every stored round of one game.
type GameSummary struct {
	Game     string `db:"game"`
	Rounds   int64  `db:"rounds"`
	Staked   int64  `db:"staked"`
	Credited int64  `db:"credited"`
}

func (s GameSummary) Net() int64 {
	return s.Credited - s.Staked
}

// RTP is the share of staked money paid back.
func (s GameSummary) RTP() float64 {
	if s.Staked == 0 {
		return 0
	}
	return float64(s.Credited) / float64(s.Staked)
}

// Ledger journals settlements in a sqlite database.
type Ledger struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open connects to dsn (":memory:" for a throwaway journal) and creates the
// schema.
func Open(dsn string) (*Ledger, error) {
	const op = "ledger.Open"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// an in-memory database lives in a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Ledger{db: db, now: time.Now}, nil
}

func (h *Ledger) Close() error {
	return h.db.Close()
}

// Record stores settlements in one transaction.
func (h *Ledger) Record(ctx context.Context, settlements ...betting.Settlement) error {
	const op = "ledger.Record"
	const query = `INSERT INTO settlements
		(round_id, game, stake, credit, balance_after, detail, settled_at)
		VALUES (:round_id, :game, :stake, :credit, :balance_after, :detail, :settled_at)`

	if len(settlements) == 0 {
		return nil
	}
	tx, err := h.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	now := h.now().UnixMilli()
	for _, s := range settlements {
		_, err := tx.NamedExecContext(ctx, query, Entry{
			RoundID:      s.RoundID.String(),
			Game:         s.Game,
			Stake:        s.Stake,
			Credit:       s.Credit,
			BalanceAfter: s.BalanceAfter,
			Detail:       s.Detail,
			SettledAt:    now,
		})
		if err != nil {
			return fmt.Errorf("%s round %s: %w", op, s.RoundID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Summary returns one row per game, ordered by game name.
func (h *Ledger) Summary(ctx context.Context) ([]GameSummary, error) {
	const op = "ledger.Summary"
	const query = `SELECT game, COUNT(*) AS rounds,
		SUM(stake) AS staked, SUM(credit) AS credited
		FROM settlements GROUP BY game ORDER BY game`

	var out []GameSummary
	if err := h.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Recent returns up to limit settlements, newest first.
func (h *Ledger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	const op = "ledger.Recent"
	const query = `SELECT id, round_id, game, stake, credit, balance_after, detail, settled_at
		FROM settlements ORDER BY id DESC LIMIT ?`

	var out []Entry
	if err := h.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
