package main

import (
	"flag"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/logging"
	"voyager.com/fivecard/test"
	"voyager.com/fivecard/util"
)

const maxSteps = 100000

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = *logging.GetZeroLogger("main::main", os.Stderr)

	var players = flag.Int("players", util.GameEnvironment.GetPlayers(), "number of players (3-4)")
	var name = flag.String("name", util.GameEnvironment.GetHumanName(), "name of the human player")
	var ante = flag.Int("ante", util.GameEnvironment.GetAnte(), "ante paid by each player every round")
	var wallet = flag.Int("wallet", util.GameEnvironment.GetWalletSize(), "starting wallet of each player")
	var seed = flag.Int64("seed", util.GameEnvironment.GetSeed(), "deck seed, 0 for a random game")
	var reveal = flag.Bool("reveal", false, "show the human player's hand when dealt")
	var logLevel = flag.String("log-level", util.GameEnvironment.GetLogLevel(), "log level (debug, info, warn, error)")
	var runGameScript = flag.String("game-script", "", "runs tests with game script files in the given directory")
	var jsonOutput = flag.Bool("json", false, "print each round result as JSON")
	flag.Parse()

	if *logLevel != "" && !logging.SetGlobalLevel(*logLevel) {
		log.Warn().Msgf("Unknown log level %q", *logLevel)
	}

	if *runGameScript != "" {
		passed, err := test.RunGameScriptTests(*runGameScript, os.Stdout)
		if err != nil {
			log.Error().Err(err).Msgf("Failed to run game scripts in %s", *runGameScript)
			os.Exit(1)
		}
		if !passed {
			os.Exit(1)
		}
		return
	}

	config := game.Config{
		PlayerCount:     *players,
		HumanName:       *name,
		Ante:            *ante,
		WalletSize:      *wallet,
		RevealHumanHand: *reveal,
		Seed:            *seed,
	}
	if err := playGame(config, *jsonOutput); err != nil {
		log.Error().Err(err).Msg("Game failed")
		os.Exit(1)
	}
}

// playGame advances a game until it is over and prints every step.
func playGame(config game.Config, jsonOutput bool) error {
	roundLog := game.NewMemoryRoundLog()
	g, err := game.NewGame(config, nil, roundLog)
	if err != nil {
		return err
	}

	for i := 0; g.State() != game.GameState_OVER; i++ {
		if i >= maxSteps {
			return fmt.Errorf("game %s did not finish after %d steps", g.ID(), maxSteps)
		}
		next := game.GetNextActionString(g.State())
		result, err := g.AdvanceRound()
		if err != nil {
			return err
		}
		if jsonOutput {
			b, err := json.Marshal(result)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			continue
		}
		if err := printResult(next, result); err != nil {
			return err
		}
	}

	results, err := roundLog.Load(g.ID())
	if err != nil {
		return err
	}
	if !jsonOutput {
		printSummary(g, results)
	}
	return nil
}
