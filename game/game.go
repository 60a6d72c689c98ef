package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"voyager.com/fivecard/logging"
	"voyager.com/fivecard/poker"
	"voyager.com/fivecard/util"
)

// RoundResult describes one AdvanceRound transition.
type RoundResult struct {
	State   GameState     `json:"state"`
	Round   int           `json:"round"`
	Action  string        `json:"action"`
	Players []PlayerState `json:"players"`
}

// Game runs a single table from the first ante until one player is left.
// It is not safe for concurrent use; one driver calls AdvanceRound in a loop.
type Game struct {
	id       string
	config   Config
	logger   zerolog.Logger
	deck     *poker.Deck
	pot      Pot
	players  []*Player
	dealer   int
	winner   int
	state    GameState
	round    int
	roundLog PersistRoundLog
}

// NewGame validates the config and seats the players. The human player takes
// index 0. When source is nil the deck is seeded from config.Seed, or from
// crypto/rand if that is zero. roundLog may be nil.
func NewGame(config Config, source rand.Source, roundLog PersistRoundLog) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if source == nil && config.Seed != 0 {
		source = rand.NewSource(config.Seed)
	}

	players := make([]*Player, 0, config.PlayerCount)
	for i := 0; i < config.PlayerCount; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i == humanPlayerIdx {
			name = config.HumanName
		}
		player, err := NewPlayer(name, config.WalletSize)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	id := uuid.New().String()
	g := &Game{
		id:       id,
		config:   config,
		logger:   logging.SubLogger("game::game").With().Str(logging.GameIDKey, id).Logger(),
		deck:     poker.NewDeck(source),
		players:  players,
		dealer:   noPlayer,
		winner:   noPlayer,
		state:    GameState_NOT_STARTED,
		roundLog: roundLog,
	}
	g.logger.Debug().
		Int("players", config.PlayerCount).
		Int("ante", config.Ante).
		Int("walletSize", config.WalletSize).
		Msg("New game")
	return g, nil
}

// AdvanceRound performs exactly one transition of the round state machine.
// Once the game is OVER it fails with an InvalidStateError.
func (g *Game) AdvanceRound() (*RoundResult, error) {
	var (
		newState GameState
		action   string
		states   []PlayerState
		err      error
	)
	switch g.state {
	case GameState_NOT_STARTED, GameState_POST_SCORE:
		newState, action, states = g.startRound()
	case GameState_PRE_ANTE:
		newState, action, states, err = g.collectAntes()
	case GameState_POST_ANTE:
		newState, action, states, err = g.deal()
	case GameState_PRE_SCORE:
		newState, action, states, err = g.scorePlayers()
	default:
		return nil, InvalidStateError{
			State: g.state,
			Msg:   "cannot continue a game after it is over, start a new game instead",
		}
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug().
		Int(logging.RoundNumKey, g.round).
		Str(logging.StateKey, newState.String()).
		Msgf("%s -> %s: %s", g.state, newState, action)
	g.state = newState

	result := &RoundResult{
		State:   newState,
		Round:   g.round,
		Action:  action,
		Players: states,
	}
	if g.roundLog != nil {
		if err := g.roundLog.Save(g.id, result); err != nil {
			g.logger.Warn().Err(err).Msg("Could not save round result")
		}
	}
	return result, nil
}

func (g *Game) startRound() (GameState, string, []PlayerState) {
	g.deck.Reshuffle()
	g.dealer = g.findDealer(g.dealer)
	g.winner = noPlayer
	g.round++
	util.Metrics.RoundStarted()

	return GameState_PRE_ANTE, "Starting round", g.playerStatesNoHands()
}

func (g *Game) collectAntes() (GameState, string, []PlayerState, error) {
	// refuse before touching any wallet so a violation leaves the game as it was
	solvent := 0
	for _, player := range g.players {
		if player.IsActive() && player.wallet.CanPay(g.config.Ante) {
			solvent++
		}
	}
	if solvent == 0 {
		err := InvariantViolationError{Msg: "no active player can pay the ante"}
		g.logger.Error().Int(logging.RoundNumKey, g.round).Err(err).Msg("Ante collection failed")
		return g.state, "", nil, err
	}

	for _, player := range g.players {
		player.clearHand()
		if !player.IsActive() {
			continue
		}
		if player.TryBet(g.config.Ante) {
			if err := g.pot.Add(g.config.Ante); err != nil {
				return g.state, "", nil, err
			}
			util.Metrics.AnteCollected(g.config.Ante)
			continue
		}
		util.Metrics.PlayerEliminated()
		g.logger.Info().
			Int(logging.RoundNumKey, g.round).
			Str(logging.PlayerNameKey, player.Name).
			Msgf("%s cannot pay the ante and is out", player.Name)
	}

	active := g.activePlayerIndexes()
	if len(active) > 1 {
		action := fmt.Sprintf("Players submitted ante of %s each, resulting in a %s pot",
			util.FormatMoney(g.config.Ante), util.FormatMoney(g.pot.Size()))
		return GameState_POST_ANTE, action, g.playerStatesNoHands(), nil
	}

	// a single solvent player takes back the pot and the game
	g.winner = active[0]
	winner := g.players[g.winner]
	if err := winner.CollectWinnings(g.pot.PayOut()); err != nil {
		return g.state, "", nil, err
	}
	util.Metrics.GameCompleted()
	g.logger.Info().
		Int(logging.RoundNumKey, g.round).
		Str(logging.WinnerKey, winner.Name).
		Msg("Game over")
	return GameState_OVER, fmt.Sprintf("Game over. %s wins", winner.Name), g.playerStatesNoHands(), nil
}

func (g *Game) deal() (GameState, string, []PlayerState, error) {
	for _, player := range g.players {
		if !player.IsActive() {
			continue
		}
		cards, err := g.deck.DrawCards(poker.HandSize)
		if err != nil {
			return g.state, "", nil, errors.Wrapf(err, "dealing to %s", player.Name)
		}
		if err := player.CreateHand(cards...); err != nil {
			return g.state, "", nil, err
		}
		g.logger.Debug().
			Int(logging.RoundNumKey, g.round).
			Str(logging.PlayerNameKey, player.Name).
			Msgf("Dealt %s", player.Hand())
	}

	action := fmt.Sprintf("Dealt hand to each player (pot holds %s)", util.FormatMoney(g.pot.Size()))
	return GameState_PRE_SCORE, action, g.playerStates(true, g.config.RevealHumanHand, false), nil
}

func (g *Game) scorePlayers() (GameState, string, []PlayerState, error) {
	best := noPlayer
	hands := make([]*poker.Hand, 0, len(g.players))
	for _, idx := range g.activePlayerIndexes() {
		hand := g.players[idx].Hand()
		if hand == nil {
			continue
		}
		hands = append(hands, hand)
		// ties go to the later seat
		if best == noPlayer || hand.Compare(g.players[best].Hand()) >= 0 {
			best = idx
		}
	}
	if best == noPlayer {
		return g.state, "", nil, InvariantViolationError{Msg: "no active player holds a hand at showdown"}
	}
	g.logger.Debug().Int(logging.RoundNumKey, g.round).Msgf("Showdown: %s", poker.HandsToString(hands))

	winner := g.players[best]
	pot := g.pot.PayOut()
	if err := winner.CollectWinnings(pot); err != nil {
		return g.state, "", nil, err
	}
	g.winner = best
	g.logger.Info().
		Int(logging.RoundNumKey, g.round).
		Str(logging.WinnerKey, winner.Name).
		Int(logging.PotKey, pot).
		Msgf("%s wins with %s", winner.Name, winner.Hand().Category())

	return GameState_POST_SCORE, fmt.Sprintf("%s wins the round", winner.Name), g.playerStates(true, true, true), nil
}

// findDealer returns the next active seat after the given one, wrapping.
func (g *Game) findDealer(oldDealer int) int {
	dealer := oldDealer
	for range g.players {
		dealer++
		if dealer >= len(g.players) {
			dealer = 0
		}
		if g.players[dealer].IsActive() {
			return dealer
		}
	}
	return oldDealer
}

func (g *Game) activePlayerIndexes() []int {
	active := make([]int, 0, len(g.players))
	for i, player := range g.players {
		if player.IsActive() {
			active = append(active, i)
		}
	}
	return active
}

// SetupDeck queues cards to be dealt next, in order, to the active players.
// It is only allowed before the deal of the current round.
func (g *Game) SetupDeck(cards []poker.Card) error {
	if g.state != GameState_PRE_ANTE && g.state != GameState_POST_ANTE {
		return InvalidStateError{State: g.state, Msg: "the deck can only be set up before dealing"}
	}
	return g.deck.SetupCards(cards...)
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state
}

// Winner is the winner of the last showdown, or of the game once it is OVER.
func (g *Game) Winner() (int, bool) {
	if g.winner == noPlayer {
		return 0, false
	}
	return g.winner, true
}

func (g *Game) Round() int {
	return g.round
}

// Dealer is -1 before the first round starts.
func (g *Game) Dealer() int {
	return g.dealer
}

func (g *Game) Pot() int {
	return g.pot.Size()
}

func (g *Game) Ante() int {
	return g.config.Ante
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Player(idx int) *Player {
	return g.players[idx]
}

func (g *Game) ActivePlayers() int {
	return len(g.activePlayerIndexes())
}
