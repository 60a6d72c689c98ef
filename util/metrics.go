package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	roundsStartedCounter     prometheus.Counter
	antesCollectedCounter    prometheus.Counter
	playersEliminatedCounter prometheus.Counter
	gamesCompletedCounter    prometheus.Counter
}

func (m *metrics) RoundStarted() {
	m.roundsStartedCounter.Inc()
}

func (m *metrics) AnteCollected(amount int) {
	m.antesCollectedCounter.Add(float64(amount))
}

func (m *metrics) PlayerEliminated() {
	m.playersEliminatedCounter.Inc()
}

func (m *metrics) GameCompleted() {
	m.gamesCompletedCounter.Inc()
}

var Metrics = &metrics{
	roundsStartedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "fivecard_rounds_started_total",
		Help: "Total number of rounds started",
	}),
	antesCollectedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "fivecard_antes_collected_total",
		Help: "Total amount collected from antes",
	}),
	playersEliminatedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "fivecard_players_eliminated_total",
		Help: "Total number of players eliminated for failing to pay the ante",
	}),
	gamesCompletedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "fivecard_games_completed_total",
		Help: "Total number of games played to the end",
	}),
}

// The accessors below expose the collectors for tests and registries.

func (m *metrics) RoundsStarted() prometheus.Counter     { return m.roundsStartedCounter }
func (m *metrics) AntesCollected() prometheus.Counter    { return m.antesCollectedCounter }
func (m *metrics) PlayersEliminated() prometheus.Counter { return m.playersEliminatedCounter }
func (m *metrics) GamesCompleted() prometheus.Counter    { return m.gamesCompletedCounter }
