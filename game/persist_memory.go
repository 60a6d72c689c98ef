package game

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrRoundLogNotFound = errors.New("round log not found")

type MemoryRoundLog struct {
	rounds map[string][][]byte
}

func NewMemoryRoundLog() *MemoryRoundLog {
	return &MemoryRoundLog{
		rounds: make(map[string][][]byte),
	}
}

func (m *MemoryRoundLog) Save(gameID string, result *RoundResult) error {
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return errors.Wrapf(err, "could not encode round result for game %s", gameID)
	}
	m.rounds[gameID] = append(m.rounds[gameID], resultBytes)
	return nil
}

func (m *MemoryRoundLog) Load(gameID string) ([]*RoundResult, error) {
	entries, ok := m.rounds[gameID]
	if !ok {
		return nil, errors.Wrapf(ErrRoundLogNotFound, "game %s", gameID)
	}
	results := make([]*RoundResult, 0, len(entries))
	for _, resultBytes := range entries {
		result := &RoundResult{}
		if err := json.Unmarshal(resultBytes, result); err != nil {
			return nil, errors.Wrapf(err, "could not decode round result for game %s", gameID)
		}
		results = append(results, result)
	}
	return results, nil
}

func (m *MemoryRoundLog) Remove(gameID string) error {
	delete(m.rounds, gameID)
	return nil
}
