package casino

import (
	"casino-go/blackjack"
	"casino-go/horserace"
	"casino-go/roulette"
)

type MenuView struct {
	Items []string
	Index int
}

// Snapshot is everything a renderer needs for one frame. Only the view of
// the active scene is set.
type Snapshot struct {
	Scene           Scene
	Balance         int64
	StartingBalance int64

	Menu      *MenuView
	Roulette  *roulette.View
	Blackjack *blackjack.View
	Horse     *horserace.View
}

func (h *Session) Snapshot() Snapshot {
	s := Snapshot{
		Scene:           h.scene,
		Balance:         h.purse.Balance(),
		StartingBalance: h.config.StartingBalance,
	}
	switch h.scene {
	case SCENE_MENU:
		items := make([]string, len(MenuScenes))
		for i, scene := range MenuScenes {
			items[i] = MenuLabels[scene]
		}
		s.Menu = &MenuView{Items: items, Index: h.menuIndex}
	case SCENE_ROULETTE:
		v := h.roulette.View()
		s.Roulette = &v
	case SCENE_BLACKJACK:
		v := h.blackjack.View()
		s.Blackjack = &v
	case SCENE_HORSE_RACE:
		v := h.horse.View()
		s.Horse = &v
	}
	return s
}
