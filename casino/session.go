package casino

import (
	"errors"
	"fmt"

	"casino-go/betting"
	"casino-go/blackjack"
	"casino-go/common/random"
	"casino-go/horserace"
	"casino-go/input"
	"casino-go/roulette"

	"go.uber.org/zap"
)

// ErrUnknownScene is returned by Enter for scenes outside the menu.
var ErrUnknownScene = errors.New("unknown scene")

type Scene int

const (
	SCENE_MENU       = Scene(0)
	SCENE_ROULETTE   = Scene(1)
	SCENE_BLACKJACK  = Scene(2)
	SCENE_HORSE_RACE = Scene(3)
	SCENE_BANKRUPT   = Scene(4)
)

var Scene2string = map[Scene]string{
	SCENE_MENU:       "MENU",
	SCENE_ROULETTE:   "ROULETTE",
	SCENE_BLACKJACK:  "BLACKJACK",
	SCENE_HORSE_RACE: "HORSE_RACE",
	SCENE_BANKRUPT:   "BANKRUPT",
}

func (s Scene) String() string {
	return Scene2string[s]
}

// Menu entries in display order.
var MenuScenes = []Scene{SCENE_ROULETTE, SCENE_BLACKJACK, SCENE_HORSE_RACE}

var MenuLabels = map[Scene]string{
	SCENE_ROULETTE:   "Roulette",
	SCENE_BLACKJACK:  "Blackjack",
	SCENE_HORSE_RACE: "Horse Race",
}

type Config struct {
	StartingBalance int64
	Increment       int64
	SpinTicks       int
	HorseWeights    []float64
	FinishLine      int
	Repeat          input.Tuning
}

type engine interface {
	Update(f input.Frame, rep *input.Repeater, w betting.Wallet) (bool, error)
	Reset()
}

// Session is the root of the game: it owns the balance, routes frames to the
// active game and sends the player to the bankrupt screen once broke.
type Session struct {
	config Config
	log    *zap.Logger

	purse   *betting.Purse
	carried []betting.Settlement
	rep     *input.Repeater

	scene     Scene
	menuIndex int

	roulette  *roulette.Engine
	blackjack *blackjack.Engine
	horse     *horserace.Engine
	engines   map[Scene]engine
}

func New(config Config, rng random.Source, log *zap.Logger) (*Session, error) {
	if config.StartingBalance <= 0 {
		return nil, fmt.Errorf("starting balance %d: %w", config.StartingBalance, betting.ErrInvalidAmount)
	}
	rep, err := input.NewRepeater(config.Repeat)
	if err != nil {
		return nil, fmt.Errorf("repeat tuning: %w", err)
	}
	rou, err := roulette.New(roulette.Config{SpinTicks: config.SpinTicks, Increment: config.Increment}, rng)
	if err != nil {
		return nil, fmt.Errorf("roulette: %w", err)
	}
	bj, err := blackjack.New(blackjack.Config{Increment: config.Increment}, rng)
	if err != nil {
		return nil, fmt.Errorf("blackjack: %w", err)
	}
	horse, err := horserace.New(horserace.Config{
		Weights:    config.HorseWeights,
		FinishLine: config.FinishLine,
		Increment:  config.Increment,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("horse race: %w", err)
	}

	return &Session{
		config:    config,
		log:       log,
		purse:     betting.NewPurse(config.StartingBalance),
		rep:       rep,
		scene:     SCENE_MENU,
		roulette:  rou,
		blackjack: bj,
		horse:     horse,
		engines: map[Scene]engine{
			SCENE_ROULETTE:   rou,
			SCENE_BLACKJACK:  bj,
			SCENE_HORSE_RACE: horse,
		},
	}, nil
}

func (h *Session) Scene() Scene {
	return h.scene
}

func (h *Session) Balance() int64 {
	return h.purse.Balance()
}

func (h *Session) Debit(amount int64) error {
	return h.purse.Debit(amount)
}

// Settle credits a resolved round and queues it for Settlements.
func (h *Session) Settle(s betting.Settlement) error {
	if err := h.purse.Settle(s); err != nil {
		return err
	}
	h.log.Info("round settled",
		zap.String("game", s.Game),
		zap.String("round", s.RoundID.String()),
		zap.Int64("stake", s.Stake),
		zap.Int64("credit", s.Credit),
		zap.Int64("balance", h.purse.Balance()),
		zap.String("detail", s.Detail),
	)
	return nil
}

// Settlements returns every round settled since the last call.
func (h *Session) Settlements() []betting.Settlement {
	out := append(h.carried, h.purse.Drain()...)
	h.carried = nil
	return out
}

// Tick runs one frame. A balance at or below zero sends the player to the
// bankrupt screen before the frame's input is looked at.
func (h *Session) Tick(f input.Frame) (Snapshot, error) {
	if h.scene != SCENE_BANKRUPT && h.purse.Balance() <= 0 {
		h.log.Warn("bankrupt",
			zap.String("scene", h.scene.String()),
			zap.Int64("balance", h.purse.Balance()),
		)
		h.switchScene(SCENE_BANKRUPT)
		return h.Snapshot(), nil
	}

	switch h.scene {
	case SCENE_MENU:
		h.updateMenu(f)
	case SCENE_BANKRUPT:
		if f.Fresh(input.ACTION_CONFIRM) {
			h.restore()
		}
	default:
		leave, err := h.engines[h.scene].Update(f, h.rep, h)
		if err != nil {
			return h.Snapshot(), fmt.Errorf("%s tick: %w", h.scene, err)
		}
		if leave {
			h.switchScene(SCENE_MENU)
		}
	}
	return h.Snapshot(), nil
}

func (h *Session) updateMenu(f input.Frame) {
	n := len(MenuScenes)
	if f.Fresh(input.ACTION_DOWN) {
		h.menuIndex = (h.menuIndex + 1) % n
	}
	if f.Fresh(input.ACTION_UP) {
		h.menuIndex = (h.menuIndex - 1 + n) % n
	}
	if f.Fresh(input.ACTION_CONFIRM) {
		next := MenuScenes[h.menuIndex]
		h.engines[next].Reset()
		h.switchScene(next)
	}
}

// restore resets the starting balance and every game.
func (h *Session) restore() {
	h.carried = append(h.carried, h.purse.Drain()...)
	h.purse.Reset(h.config.StartingBalance)
	for _, scene := range MenuScenes {
		h.engines[scene].Reset()
	}
	h.menuIndex = 0
	h.log.Info("balance restored", zap.Int64("balance", h.config.StartingBalance))
	h.switchScene(SCENE_MENU)
}

func (h *Session) switchScene(next Scene) {
	h.log.Debug("scene change",
		zap.String("from", h.scene.String()),
		zap.String("to", next.String()),
	)
	h.scene = next
	h.rep.ResetAll()
}

// Enter jumps straight into a game as if it was picked from the menu.
func (h *Session) Enter(scene Scene) error {
	e, ok := h.engines[scene]
	if !ok {
		return fmt.Errorf("enter %d: %w", scene, ErrUnknownScene)
	}
	for i, s := range MenuScenes {
		if s == scene {
			h.menuIndex = i
		}
	}
	e.Reset()
	h.switchScene(scene)
	return nil
}
