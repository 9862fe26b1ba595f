package roulette

import (
	"fmt"

	"casino-go/betting"
	"casino-go/common/random"
	"casino-go/input"

	"github.com/google/uuid"
)

const GAME = "roulette"

type Stage int

const (
	STAGE_BETTING  = Stage(0)
	STAGE_SPINNING = Stage(1)
	STAGE_RESULT   = Stage(2)
)

var Stage2string = map[Stage]string{
	STAGE_BETTING:  "BETTING",
	STAGE_SPINNING: "SPINNING",
	STAGE_RESULT:   "RESULT",
}

type Config struct {
	SpinTicks int
	Increment int64
}

type Engine struct {
	config Config
	rng    random.Source

	stage      Stage
	betType    BetType
	selections [betTypeCount]int
	stake      *betting.Stake

	roundID   uuid.UUID
	placed    int64
	ticksLeft int
	result    int
	win       int64
}

func New(config Config, rng random.Source) (*Engine, error) {
	if config.SpinTicks < 1 {
		return nil, fmt.Errorf("spin ticks %d must be positive", config.SpinTicks)
	}
	stake, err := betting.NewStake(config.Increment)
	if err != nil {
		return nil, err
	}
	h := &Engine{
		config: config,
		rng:    rng,
		stake:  stake,
	}
	h.Reset()
	return h, nil
}

// Reset starts a fresh betting round with default bet and stake.
func (h *Engine) Reset() {
	h.stage = STAGE_BETTING
	h.betType = BET_NUMBER
	h.selections = [betTypeCount]int{}
	h.stake.Reset()
	h.roundID = uuid.Nil
	h.placed = 0
	h.ticksLeft = 0
	h.result = -1
	h.win = 0
}

func (h *Engine) Stage() Stage {
	return h.stage
}

func (h *Engine) Bet() Bet {
	return Bet{Type: h.betType, Selection: h.selections[h.betType]}
}

// Update advances one frame. It reports true when the player leaves for
// the menu; a stake already placed is forfeited.
func (h *Engine) Update(f input.Frame, rep *input.Repeater, w betting.Wallet) (bool, error) {
	if f.Fresh(input.ACTION_QUIT) {
		return true, nil
	}

	switch h.stage {
	case STAGE_BETTING:
		return false, h.updateBetting(f, rep, w)
	case STAGE_SPINNING:
		h.ticksLeft--
		if h.ticksLeft == 0 {
			return false, h.settle(w)
		}
	case STAGE_RESULT:
		if f.Fresh(input.ACTION_CONFIRM) {
			h.Reset()
			rep.ResetAll()
		}
	}
	return false, nil
}

func (h *Engine) updateBetting(f input.Frame, rep *input.Repeater, w betting.Wallet) error {
	if f.Fresh(input.ACTION_CYCLE) {
		h.betType = (h.betType + 1) % betTypeCount
	}
	if f.Fresh(input.ACTION_LEFT) {
		h.moveSelection(-1)
	}
	if f.Fresh(input.ACTION_RIGHT) {
		h.moveSelection(1)
	}
	h.stake.Adjust(f, rep, w.Balance())

	if !f.Fresh(input.ACTION_CONFIRM) {
		return nil
	}
	placed, err := h.stake.Place(w)
	if err != nil {
		return fmt.Errorf("%s: %w", GAME, err)
	}
	h.roundID = uuid.New()
	h.placed = placed
	h.ticksLeft = h.config.SpinTicks
	h.result = -1
	h.win = 0
	h.stage = STAGE_SPINNING
	rep.ResetAll()
	return nil
}

func (h *Engine) moveSelection(delta int) {
	n := h.betType.Domain()
	h.selections[h.betType] = ((h.selections[h.betType]+delta)%n + n) % n
}

func (h *Engine) settle(w betting.Wallet) error {
	bet := h.Bet()
	h.result = h.rng.Intn(POCKETS)
	h.win = bet.Payout(h.placed, h.result)
	h.stage = STAGE_RESULT

	err := w.Settle(betting.Settlement{
		RoundID: h.roundID,
		Game:    GAME,
		Stake:   h.placed,
		Credit:  h.win,
		Detail:  fmt.Sprintf("%s on %d %s", bet, h.result, ColorOf(h.result)),
	})
	if err != nil {
		return fmt.Errorf("%s settle: %w", GAME, err)
	}
	return nil
}

// View is what the roulette screen shows.
type View struct {
	Stage     Stage
	BetType   BetType
	Selection string
	Stake     int64
	TicksLeft int

	Result       int
	ResultColor  Color
	ResultParity string
	ResultDozen  string
	Win          int64
}

func (h *Engine) View() View {
	v := View{
		Stage:     h.stage,
		BetType:   h.betType,
		Selection: h.Bet().Label(),
		Stake:     h.stake.Amount(),
		TicksLeft: h.ticksLeft,
		Result:    h.result,
		Win:       h.win,
	}
	if h.stage == STAGE_RESULT {
		v.ResultColor = ColorOf(h.result)
		v.ResultParity = ParityLabel(h.result)
		v.ResultDozen = DozenLabel(h.result)
	}
	return v
}
