package render

import (
	"fmt"
	"strings"

	"casino-go/blackjack"
	"casino-go/cards"
	"casino-go/casino"
	"casino-go/horserace"
	"casino-go/roulette"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"
)

// TrackWidth is how many columns a race track takes on screen.
const TrackWidth = 40

// Money formats an amount as $1,250.
func Money(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

var colorTags = map[roulette.Color]string{
	roulette.COLOR_GREEN: "[green]",
	roulette.COLOR_RED:   "[red]",
	roulette.COLOR_BLACK: "[white]",
}

var outcomeTags = map[blackjack.Outcome]string{
	blackjack.OUTCOME_BUST:       "[red]",
	blackjack.OUTCOME_PLAYER_WIN: "[green]",
	blackjack.OUTCOME_PUSH:       "[yellow]",
	blackjack.OUTCOME_DEALER_WIN: "[red]",
}

// Text draws one frame of the casino as plain lines. Colour tags are turned
// into ANSI codes when colour is set and stripped otherwise.
func Text(s casino.Snapshot, colour bool) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "[bold]Balance: %s[reset]\n\n", Money(s.Balance))

	switch s.Scene {
	case casino.SCENE_MENU:
		menu(b, s.Menu)
	case casino.SCENE_ROULETTE:
		rouletteScreen(b, s.Roulette)
	case casino.SCENE_BLACKJACK:
		blackjackScreen(b, s.Blackjack)
	case casino.SCENE_HORSE_RACE:
		horseScreen(b, s.Horse)
	case casino.SCENE_BANKRUPT:
		b.WriteString("[red]You are out of money.[reset]\n\n")
		fmt.Fprintf(b, "Press Enter to start over with %s\n", Money(s.StartingBalance))
	}

	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !colour,
		Reset:   colour,
	}
	return c.Color(b.String())
}

func hint(b *strings.Builder, text string) {
	fmt.Fprintf(b, "\n[dark_gray]%s[reset]\n", text)
}

func menu(b *strings.Builder, m *casino.MenuView) {
	b.WriteString("=== Casino ===\n\n")
	for i, item := range m.Items {
		if i == m.Index {
			fmt.Fprintf(b, "[cyan]> %s[reset]\n", item)
		} else {
			fmt.Fprintf(b, "  %s\n", item)
		}
	}
	hint(b, "Up/Down move  Enter select  Ctrl-C exit")
}

func rouletteScreen(b *strings.Builder, v *roulette.View) {
	switch v.Stage {
	case roulette.STAGE_BETTING:
		b.WriteString("Roulette - place your bet\n\n")
		fmt.Fprintf(b, "Type   : [cyan]%s[reset]\n", v.BetType)
		fmt.Fprintf(b, "Choice : [cyan]%s[reset]\n", v.Selection)
		fmt.Fprintf(b, "Stake  : [cyan]%s[reset]\n", Money(v.Stake))
		hint(b, "Tab type  Left/Right choice  Up/Down stake  Space spin  Q menu")
	case roulette.STAGE_SPINNING:
		fmt.Fprintf(b, "Spinning... %d\n\n", v.TicksLeft)
		fmt.Fprintf(b, "%s %s on %s\n", Money(v.Stake), v.BetType, v.Selection)
	case roulette.STAGE_RESULT:
		fmt.Fprintf(b, "Result: %s%d %s[reset]\n", colorTags[v.ResultColor], v.Result, v.ResultColor)
		fmt.Fprintf(b, "Parity: %s  Dozen: %s\n\n", v.ResultParity, v.ResultDozen)
		if v.Win > 0 {
			fmt.Fprintf(b, "[green]You won %s![reset]\n", Money(v.Win))
		} else {
			b.WriteString("No win.\n")
		}
		hint(b, "Enter bet again  Q menu")
	}
}

func hand(label string, hand []cards.Card, value int, hidden bool) string {
	names := make([]string, 0, len(hand)+1)
	for _, c := range hand {
		names = append(names, c.String())
	}
	total := fmt.Sprint(value)
	if hidden {
		names = append(names, "??")
		total = "?"
	}
	return fmt.Sprintf("%s: %s  (%s)\n", label, strings.Join(names, " "), total)
}

func blackjackScreen(b *strings.Builder, v *blackjack.View) {
	if v.Stage == blackjack.STAGE_BETTING {
		b.WriteString("Blackjack - place your bet\n\n")
		fmt.Fprintf(b, "Stake  : [cyan]%s[reset]\n", Money(v.Stake))
		hint(b, "Up/Down stake  Enter deal  Q menu")
		return
	}

	b.WriteString(hand("Dealer", v.Dealer, v.DealerValue, v.DealerHidden))
	b.WriteString(hand("Player", v.Player, v.PlayerValue, false))
	fmt.Fprintf(b, "Stake: %s  Deck: %d\n", Money(v.Stake), v.DeckCards)

	if v.Stage == blackjack.STAGE_RESULT {
		fmt.Fprintf(b, "\n%s%s[reset]\n", outcomeTags[v.Outcome], v.Outcome)
		hint(b, "Enter new hand  Q menu")
		return
	}
	if v.Turn == blackjack.TURN_DEALER {
		b.WriteString("\nDealer plays...\n")
		return
	}
	hint(b, "H hit  S stand  Q menu")
}

func horseScreen(b *strings.Builder, v *horserace.View) {
	if v.Stage == horserace.STAGE_BETTING {
		b.WriteString("Horse-race betting\n\n")
		for i, w := range v.Weights {
			line := fmt.Sprintf("Horse %d  |  Odds %.2f", i+1, w)
			if i == v.Selected {
				fmt.Fprintf(b, "[cyan]> %s[reset]\n", line)
			} else {
				fmt.Fprintf(b, "  %s\n", line)
			}
		}
		fmt.Fprintf(b, "\nBet: [cyan]%s[reset]\n", Money(v.Stake))
		hint(b, "Left/Right horse  Up/Down bet  Space start  Q menu")
		return
	}

	for i, pos := range v.Positions {
		col := pos * TrackWidth / v.FinishLine
		marker := "H"
		if i == v.Selected {
			marker = "[yellow]H[reset]"
		}
		fmt.Fprintf(b, "%d |%s%s%s|\n", i+1,
			strings.Repeat("-", col), marker, strings.Repeat(" ", TrackWidth-col))
	}
	b.WriteString("\n")
	if v.Stage == horserace.STAGE_RACING {
		b.WriteString("Racing...\n")
		return
	}
	fmt.Fprintf(b, "Horse %d wins!\n", v.Winner+1)
	if v.Win > 0 {
		fmt.Fprintf(b, "[green]You won %s![reset]\n", Money(v.Win))
	} else {
		b.WriteString("No win.\n")
	}
	hint(b, "Enter bet again  Q menu")
}
