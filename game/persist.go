package game

// PersistRoundLog keeps the results of every AdvanceRound call of a game.
type PersistRoundLog interface {
	Save(gameID string, result *RoundResult) error
	Load(gameID string) ([]*RoundResult, error)
	Remove(gameID string) error
}
