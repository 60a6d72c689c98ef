package game

import (
	"fmt"
	"strings"
)

// PrintTable renders every seat on one line for debug logs.
func (g *Game) PrintTable() string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "Game ID: %s Round: %d, State: %s, Pot: %s, Seats: [", g.id, g.round, g.state, &g.pot)
	for seatNo, player := range g.players {
		cardString := ""
		if player.Hand() != nil {
			cardString = player.Hand().String()
		}
		if !player.IsActive() {
			fmt.Fprintf(&b, " {%d: %s, OUT} ", seatNo+1, player.Name)
		} else if seatNo == g.dealer {
			fmt.Fprintf(&b, " {%d: %s, %s, %s, DEALER} ", seatNo+1, player.Name, player.wallet, cardString)
		} else {
			fmt.Fprintf(&b, " {%d: %s, %s, %s} ", seatNo+1, player.Name, player.wallet, cardString)
		}
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}
