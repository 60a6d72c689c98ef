package util

import (
	"fmt"
	"os"
	"strconv"

	"voyager.com/fivecard/logging"
)

const environmentLoggerName = "util::environment"

type gameEnvironment struct {
	Players    string
	HumanName  string
	Ante       string
	WalletSize string
	Seed       string
	LogLevel   string
}

// GameEnvironment is a helper object for accessing environment variables.
var GameEnvironment = &gameEnvironment{
	Players:    "FIVECARD_PLAYERS",
	HumanName:  "FIVECARD_NAME",
	Ante:       "FIVECARD_ANTE",
	WalletSize: "FIVECARD_WALLET",
	Seed:       "FIVECARD_SEED",
	LogLevel:   "LOG_LEVEL",
}

const (
	DefaultPlayers    = 4
	DefaultHumanName  = "Player 1"
	DefaultAnte       = 5
	DefaultWalletSize = 100
)

func (g *gameEnvironment) GetPlayers() int {
	return getInt(g.Players, DefaultPlayers)
}

func (g *gameEnvironment) GetHumanName() string {
	name := os.Getenv(g.HumanName)
	if name == "" {
		return DefaultHumanName
	}
	return name
}

func (g *gameEnvironment) GetAnte() int {
	return getInt(g.Ante, DefaultAnte)
}

func (g *gameEnvironment) GetWalletSize() int {
	return getInt(g.WalletSize, DefaultWalletSize)
}

// GetSeed returns 0 when no seed is configured, meaning a random seed.
func (g *gameEnvironment) GetSeed() int64 {
	seedStr := os.Getenv(g.Seed)
	if seedStr == "" {
		return 0
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		logging.SubLogger(environmentLoggerName).Warn().Msg(fmt.Sprintf("Invalid %s %s, using a random seed", g.Seed, seedStr))
		return 0
	}
	return seed
}

func (g *gameEnvironment) GetLogLevel() string {
	return os.Getenv(g.LogLevel)
}

func getInt(envVar string, defaultVal int) int {
	s := os.Getenv(envVar)
	if s == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		logging.SubLogger(environmentLoggerName).Warn().Msg(fmt.Sprintf("Invalid %s %s, using %d", envVar, s, defaultVal))
		return defaultVal
	}
	return n
}
