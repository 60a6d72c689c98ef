package main

import (
	"github.com/pterm/pterm"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/util"
)

func printResult(next string, result *game.RoundResult) error {
	pterm.DefaultSection.Printf("Round %d: %s", result.Round, next)
	pterm.Info.Println(result.Action)

	data := pterm.TableData{{"Player", "Balance", "Hand", "Status"}}
	for _, p := range result.Players {
		name := p.Name
		if p.IsHuman {
			name = pterm.LightCyan(p.Name)
		}
		if p.IsDealer {
			name += " (D)"
		}
		status := pterm.LightGreen("Active")
		if !p.IsActive {
			status = pterm.LightRed("Out")
		}
		data = append(data, []string{name, p.BalanceString, p.HandString, status})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

func printSummary(g *game.Game, results []*game.RoundResult) {
	winner, ok := g.Winner()
	if !ok {
		return
	}
	player := g.Player(winner)
	pterm.DefaultBox.
		WithTitle(pterm.LightGreen("|GAME OVER|")).
		WithTitleTopCenter().
		WithLeftPadding(4).WithRightPadding(4).
		Printfln("%s wins %s after %d rounds (%d steps)",
			pterm.LightCyan(player.Name), util.FormatMoney(player.Cash()), g.Round(), len(results))
}
