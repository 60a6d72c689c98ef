package game

import (
	"voyager.com/fivecard/util"
)

// PlayerState is a read-only view of a player taken after a transition.
type PlayerState struct {
	Name          string `json:"name"`
	BalanceString string `json:"balance"`
	HandString    string `json:"hand"`
	IsDealer      bool   `json:"isDealer"`
	IsHuman       bool   `json:"isHuman"`
	IsActive      bool   `json:"isActive"`
}

// playerStates builds the snapshot for every seat. Inactive players and
// phases without hands get an empty hand string; hands not revealed render
// as the hidden placeholder.
func (g *Game) playerStates(haveHands bool, showHuman bool, showAll bool) []PlayerState {
	states := make([]PlayerState, 0, len(g.players))
	for i, player := range g.players {
		isHuman := i == humanPlayerIdx
		handStr := ""
		if haveHands && player.IsActive() && player.Hand() != nil {
			show := (isHuman && showHuman) || showAll
			handStr = player.Hand().Format(!show)
		}
		states = append(states, PlayerState{
			Name:          player.Name,
			BalanceString: util.FormatMoney(player.Cash()),
			HandString:    handStr,
			IsDealer:      i == g.dealer,
			IsHuman:       isHuman,
			IsActive:      player.IsActive(),
		})
	}
	return states
}

func (g *Game) playerStatesNoHands() []PlayerState {
	return g.playerStates(false, false, false)
}
