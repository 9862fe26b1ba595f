package blackjack

import (
	"fmt"

	"casino-go/betting"
	"casino-go/cards"
	"casino-go/common/random"
	"casino-go/input"

	"github.com/google/uuid"
)

const (
	GAME         = "blackjack"
	BLACKJACK    = 21
	DEALER_STAND = 17
)

type Stage int

const (
	STAGE_BETTING = Stage(0)
	STAGE_PLAYING = Stage(1)
	STAGE_RESULT  = Stage(2)
)

var Stage2string = map[Stage]string{
	STAGE_BETTING: "BETTING",
	STAGE_PLAYING: "PLAYING",
	STAGE_RESULT:  "RESULT",
}

type Turn int

const (
	TURN_PLAYER = Turn(0)
	TURN_DEALER = Turn(1)
)

type Outcome int

const (
	OUTCOME_NONE       = Outcome(0)
	OUTCOME_BUST       = Outcome(1)
	OUTCOME_PLAYER_WIN = Outcome(2)
	OUTCOME_PUSH       = Outcome(3)
	OUTCOME_DEALER_WIN = Outcome(4)
)

var Outcome2string = map[Outcome]string{
	OUTCOME_NONE:       "",
	OUTCOME_BUST:       "Bust! Dealer wins.",
	OUTCOME_PLAYER_WIN: "Player wins!",
	OUTCOME_PUSH:       "Push - bet returned.",
	OUTCOME_DEALER_WIN: "Dealer wins.",
}

func (o Outcome) String() string {
	return Outcome2string[o]
}

// payout multiplier on the stake, the stake included
var outcomePayout = map[Outcome]int64{
	OUTCOME_BUST:       0,
	OUTCOME_PLAYER_WIN: 2,
	OUTCOME_PUSH:       1,
	OUTCOME_DEALER_WIN: 0,
}

type Config struct {
	Increment int64
}

type Engine struct {
	config Config
	rng    random.Source

	// replaced in tests to stack the deck
	newDeck func() *cards.Deck

	stage   Stage
	turn    Turn
	stake   *betting.Stake
	placed  int64
	roundID uuid.UUID

	deck    *cards.Deck
	player  []cards.Card
	dealer  []cards.Card
	outcome Outcome
}

func New(config Config, rng random.Source) (*Engine, error) {
	stake, err := betting.NewStake(config.Increment)
	if err != nil {
		return nil, err
	}
	h := &Engine{
		config: config,
		rng:    rng,
		stake:  stake,
	}
	h.newDeck = func() *cards.Deck { return cards.NewShuffledDeck(h.rng) }
	h.Reset()
	return h, nil
}

// Reset returns to the betting screen with the default stake.
func (h *Engine) Reset() {
	h.stage = STAGE_BETTING
	h.turn = TURN_PLAYER
	h.stake.Reset()
	h.placed = 0
	h.roundID = uuid.Nil
	h.deck = nil
	h.player = nil
	h.dealer = nil
	h.outcome = OUTCOME_NONE
}

func (h *Engine) Stage() Stage {
	return h.stage
}

func (h *Engine) Turn() Turn {
	return h.turn
}

func (h *Engine) Outcome() Outcome {
	return h.outcome
}

// Update advances one frame and reports true when the player quits to the
// menu. Quitting mid-hand forfeits the stake.
func (h *Engine) Update(f input.Frame, rep *input.Repeater, w betting.Wallet) (bool, error) {
	if f.Fresh(input.ACTION_QUIT) {
		return true, nil
	}

	var err error
	switch h.stage {
	case STAGE_BETTING:
		h.stake.Adjust(f, rep, w.Balance())
		if f.Fresh(input.ACTION_CONFIRM) {
			err = h.deal(w, rep)
		}
	case STAGE_PLAYING:
		if h.turn == TURN_PLAYER {
			err = h.playerTurn(f, w)
		} else {
			err = h.dealerTurn(w)
		}
	case STAGE_RESULT:
		if f.Fresh(input.ACTION_CONFIRM) {
			h.Reset()
			rep.ResetAll()
		}
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", GAME, err)
	}
	return false, nil
}

func (h *Engine) deal(w betting.Wallet, rep *input.Repeater) error {
	deck := h.newDeck()
	hands := make([]cards.Card, 4)
	for i := range hands {
		c, err := deck.Draw()
		if err != nil {
			return err
		}
		hands[i] = c
	}
	placed, err := h.stake.Place(w)
	if err != nil {
		return err
	}

	h.deck = deck
	h.player = hands[:2:2]
	h.dealer = hands[2:4:4]
	h.placed = placed
	h.roundID = uuid.New()
	h.turn = TURN_PLAYER
	h.outcome = OUTCOME_NONE
	h.stage = STAGE_PLAYING
	rep.ResetAll()
	return nil
}

func (h *Engine) playerTurn(f input.Frame, w betting.Wallet) error {
	if f.Fresh(input.ACTION_HIT) {
		c, err := h.deck.Draw()
		if err != nil {
			return err
		}
		h.player = append(h.player, c)
		if cards.HandValue(h.player) > BLACKJACK {
			return h.settle(w, OUTCOME_BUST)
		}
	}
	if f.Fresh(input.ACTION_STAND) {
		h.turn = TURN_DEALER
	}
	return nil
}

// dealerTurn draws at most one card per frame so the reveal is visible.
func (h *Engine) dealerTurn(w betting.Wallet) error {
	if cards.HandValue(h.dealer) < DEALER_STAND {
		c, err := h.deck.Draw()
		if err != nil {
			return err
		}
		h.dealer = append(h.dealer, c)
		return nil
	}

	p, d := cards.HandValue(h.player), cards.HandValue(h.dealer)
	switch {
	case d > BLACKJACK || p > d:
		return h.settle(w, OUTCOME_PLAYER_WIN)
	case p == d:
		return h.settle(w, OUTCOME_PUSH)
	default:
		return h.settle(w, OUTCOME_DEALER_WIN)
	}
}

func (h *Engine) settle(w betting.Wallet, outcome Outcome) error {
	h.outcome = outcome
	h.stage = STAGE_RESULT
	return w.Settle(betting.Settlement{
		RoundID: h.roundID,
		Game:    GAME,
		Stake:   h.placed,
		Credit:  h.placed * outcomePayout[outcome],
		Detail: fmt.Sprintf("%s player %d dealer %d",
			outcome, cards.HandValue(h.player), cards.HandValue(h.dealer)),
	})
}

// View is the table as the player may see it. While the player is still
// deciding, only the dealer's first card is shown.
type View struct {
	Stage       Stage
	Turn        Turn
	Stake       int64
	Player      []cards.Card
	PlayerValue int

	Dealer       []cards.Card
	DealerValue  int
	DealerHidden bool

	Outcome   Outcome
	DeckCards int
}

func (h *Engine) View() View {
	v := View{
		Stage:   h.stage,
		Turn:    h.turn,
		Stake:   h.stake.Amount(),
		Player:  append([]cards.Card(nil), h.player...),
		Outcome: h.outcome,
	}
	if h.stage == STAGE_BETTING {
		return v
	}
	v.PlayerValue = cards.HandValue(h.player)
	v.DeckCards = h.deck.Len()

	if h.stage == STAGE_PLAYING && h.turn == TURN_PLAYER && h.outcome == OUTCOME_NONE {
		v.Dealer = []cards.Card{h.dealer[0]}
		v.DealerHidden = true
		return v
	}
	v.Dealer = append([]cards.Card(nil), h.dealer...)
	v.DealerValue = cards.HandValue(h.dealer)
	return v
}
