package horserace

import (
	"fmt"
	"math"

	"casino-go/betting"
	"casino-go/common/random"
	"casino-go/input"

	"github.com/google/uuid"
)

const GAME = "horserace"

type Stage int

const (
	STAGE_BETTING  = Stage(0)
	STAGE_RACING   = Stage(1)
	STAGE_FINISHED = Stage(2)
)

var Stage2string = map[Stage]string{
	STAGE_BETTING:  "BETTING",
	STAGE_RACING:   "RACING",
	STAGE_FINISHED: "FINISHED",
}

type Config struct {
	// Win probability of each horse, summing to 1.
	Weights    []float64
	FinishLine int
	Increment  int64
}

type Engine struct {
	config Config
	rng    random.Source

	stage    Stage
	selected int
	stake    *betting.Stake

	roundID   uuid.UUID
	placed    int64
	positions []int
	winner    int
	win       int64
}

func New(config Config, rng random.Source) (*Engine, error) {
	if err := random.ValidateWeights(config.Weights); err != nil {
		return nil, fmt.Errorf("horse weights: %w", err)
	}
	if config.FinishLine < 1 {
		return nil, fmt.Errorf("finish line %d must be positive", config.FinishLine)
	}
	stake, err := betting.NewStake(config.Increment)
	if err != nil {
		return nil, err
	}
	config.Weights = append([]float64(nil), config.Weights...)
	h := &Engine{
		config:    config,
		rng:       rng,
		stake:     stake,
		positions: make([]int, len(config.Weights)),
	}
	h.Reset()
	return h, nil
}

// Reset puts the field back at the gate with the first horse selected.
func (h *Engine) Reset() {
	h.stage = STAGE_BETTING
	h.selected = 0
	h.stake.Reset()
	h.roundID = uuid.Nil
	h.placed = 0
	clear(h.positions)
	h.winner = -1
	h.win = 0
}

func (h *Engine) Stage() Stage {
	return h.stage
}

func (h *Engine) Selected() int {
	return h.selected
}

// Winner is the index of the winning horse, or -1 before the finish.
func (h *Engine) Winner() int {
	return h.winner
}

// MaxStep is the largest distance horse i can cover in one tick.
func (h *Engine) MaxStep(i int) int {
	return int(math.Floor(3 + h.config.Weights[i]*5))
}

// Payout is what a winning ticket on horse i returns for stake.
func (h *Engine) Payout(stake int64, i int) int64 {
	return int64(math.Floor(float64(stake) / h.config.Weights[i]))
}

// Update advances one frame and reports true when the player leaves for
// the menu. A race in progress is abandoned with its stake.
func (h *Engine) Update(f input.Frame, rep *input.Repeater, w betting.Wallet) (bool, error) {
	if f.Fresh(input.ACTION_QUIT) {
		return true, nil
	}

	switch h.stage {
	case STAGE_BETTING:
		return false, h.updateBetting(f, rep, w)
	case STAGE_RACING:
		return false, h.race(w)
	case STAGE_FINISHED:
		if f.Fresh(input.ACTION_CONFIRM) {
			h.Reset()
			rep.ResetAll()
		}
	}
	return false, nil
}

func (h *Engine) updateBetting(f input.Frame, rep *input.Repeater, w betting.Wallet) error {
	n := len(h.positions)
	if f.Fresh(input.ACTION_LEFT) {
		h.selected = (h.selected - 1 + n) % n
	}
	if f.Fresh(input.ACTION_RIGHT) {
		h.selected = (h.selected + 1) % n
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
	clear(h.positions)
	h.winner = -1
	h.win = 0
	h.stage = STAGE_RACING
	rep.ResetAll()
	return nil
}

// race moves every horse once. Positions stop at the finish line and the
// lowest index standing on it wins.
func (h *Engine) race(w betting.Wallet) error {
	for i := range h.positions {
		step := h.rng.Intn(h.MaxStep(i) + 1)
		h.positions[i] = min(h.positions[i]+step, h.config.FinishLine)
	}
	for i, pos := range h.positions {
		if pos >= h.config.FinishLine {
			h.winner = i
			break
		}
	}
	if h.winner < 0 {
		return nil
	}

	if h.winner == h.selected {
		h.win = h.Payout(h.placed, h.winner)
	}
	h.stage = STAGE_FINISHED
	err := w.Settle(betting.Settlement{
		RoundID: h.roundID,
		Game:    GAME,
		Stake:   h.placed,
		Credit:  h.win,
		Detail:  fmt.Sprintf("picked horse %d, horse %d won", h.selected+1, h.winner+1),
	})
	if err != nil {
		return fmt.Errorf("%s settle: %w", GAME, err)
	}
	return nil
}

// View is what the race screen shows. Horses are numbered from 0 here and
// from 1 on screen.
type View struct {
	Stage      Stage
	Selected   int
	Stake      int64
	Weights    []float64
	Positions  []int
	FinishLine int
	Winner     int
	Win        int64
}

func (h *Engine) View() View {
	return View{
		Stage:      h.stage,
		Selected:   h.selected,
		Stake:      h.stake.Amount(),
		Weights:    append([]float64(nil), h.config.Weights...),
		Positions:  append([]int(nil), h.positions...),
		FinishLine: h.config.FinishLine,
		Winner:     h.winner,
		Win:        h.win,
	}
}
