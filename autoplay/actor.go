package autoplay

import (
	"math/rand"

	"casino-go/blackjack"
	"casino-go/casino"
	"casino-go/common/random"
	"casino-go/horserace"
	"casino-go/input"
	"casino-go/roulette"
)

// Actor plays the casino with random but plausible key presses.
type Actor struct {
	rand *rand.Rand
	// Chance of leaving a finished round for the menu instead of playing on.
	QuitRate float64

	horse int
}

func NewActor(rand *rand.Rand) *Actor {
	h := &Actor{
		rand:     rand,
		QuitRate: 0.1,
		horse:    -1,
	}
	return h
}

// GetAction returns the frame to feed the session after s.
func (h *Actor) GetAction(s casino.Snapshot) (input.Frame, error) {
	if s.Scene != casino.SCENE_HORSE_RACE || s.Horse.Stage != horserace.STAGE_BETTING {
		h.horse = -1
	}

	switch s.Scene {
	case casino.SCENE_MENU:
		return h.pick(input.ACTION_UP, input.ACTION_DOWN, input.ACTION_CONFIRM), nil
	case casino.SCENE_BANKRUPT:
		return input.Press(input.ACTION_CONFIRM), nil
	case casino.SCENE_ROULETTE:
		switch s.Roulette.Stage {
		case roulette.STAGE_BETTING:
			return h.pick(input.ACTION_CYCLE, input.ACTION_LEFT, input.ACTION_RIGHT,
				input.ACTION_UP, input.ACTION_DOWN, input.ACTION_CONFIRM), nil
		case roulette.STAGE_RESULT:
			return h.next(), nil
		}
	case casino.SCENE_BLACKJACK:
		v := s.Blackjack
		switch {
		case v.Stage == blackjack.STAGE_BETTING:
			return h.pick(input.ACTION_UP, input.ACTION_DOWN, input.ACTION_CONFIRM), nil
		case v.Stage == blackjack.STAGE_RESULT:
			return h.next(), nil
		case v.Turn == blackjack.TURN_PLAYER && v.PlayerValue < blackjack.DEALER_STAND:
			return input.Press(input.ACTION_HIT), nil
		case v.Turn == blackjack.TURN_PLAYER:
			return input.Press(input.ACTION_STAND), nil
		}
	case casino.SCENE_HORSE_RACE:
		switch s.Horse.Stage {
		case horserace.STAGE_BETTING:
			return h.backHorse(s.Horse)
		case horserace.STAGE_FINISHED:
			return h.next(), nil
		}
	}
	return input.Frame{}, nil
}

// GetProbs spreads a random distribution over the legal actions.
func (h *Actor) GetProbs(legal []input.Action) map[input.Action]float32 {
	r := make(map[input.Action]float32, len(legal))
	sum := float32(0)
	for _, act := range legal {
		v := h.rand.Float32()
		r[act] = v
		sum += v
	}
	for act, v := range r {
		r[act] = v / sum
	}
	return r
}

func (h *Actor) pick(legal ...input.Action) input.Frame {
	probs := h.GetProbs(legal)
	maxV := float32(-1)
	maxAct := legal[0]
	for _, act := range legal {
		if v := probs[act]; v > maxV {
			maxV = v
			maxAct = act
		}
	}
	return input.Press(maxAct)
}

func (h *Actor) next() input.Frame {
	if h.rand.Float64() < h.QuitRate {
		return input.Press(input.ACTION_QUIT)
	}
	return input.Press(input.ACTION_CONFIRM)
}

// backHorse picks a horse in proportion to its odds, walks the selection
// there and starts the race.
func (h *Actor) backHorse(v *horserace.View) (input.Frame, error) {
	if h.horse < 0 {
		i, err := random.Sample(h.rand, v.Weights)
		if err != nil {
			return input.Frame{}, err
		}
		h.horse = i
	}
	if v.Selected != h.horse {
		return input.Press(input.ACTION_RIGHT), nil
	}
	return input.Press(input.ACTION_CONFIRM), nil
}
