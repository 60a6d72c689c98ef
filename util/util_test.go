package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		amount   int
		expected string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999, "$999.00"},
		{1000, "$1,000.00"},
		{1234567, "$1,234,567.00"},
		{-15, "-$15.00"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatMoney(tc.amount))
	}
}

func TestGameEnvironmentDefaults(t *testing.T) {
	for _, v := range []string{"FIVECARD_PLAYERS", "FIVECARD_NAME", "FIVECARD_ANTE", "FIVECARD_WALLET", "FIVECARD_SEED"} {
		os.Unsetenv(v)
	}
	assert.Equal(t, DefaultPlayers, GameEnvironment.GetPlayers())
	assert.Equal(t, DefaultHumanName, GameEnvironment.GetHumanName())
	assert.Equal(t, DefaultAnte, GameEnvironment.GetAnte())
	assert.Equal(t, DefaultWalletSize, GameEnvironment.GetWalletSize())
	assert.Equal(t, int64(0), GameEnvironment.GetSeed())
}

func TestGameEnvironmentOverrides(t *testing.T) {
	os.Setenv("FIVECARD_PLAYERS", "3")
	os.Setenv("FIVECARD_NAME", "Alice")
	os.Setenv("FIVECARD_ANTE", "not-a-number")
	os.Setenv("FIVECARD_SEED", "99")
	defer func() {
		for _, v := range []string{"FIVECARD_PLAYERS", "FIVECARD_NAME", "FIVECARD_ANTE", "FIVECARD_SEED"} {
			os.Unsetenv(v)
		}
	}()

	assert.Equal(t, 3, GameEnvironment.GetPlayers())
	assert.Equal(t, "Alice", GameEnvironment.GetHumanName())
	assert.Equal(t, DefaultAnte, GameEnvironment.GetAnte())
	assert.Equal(t, int64(99), GameEnvironment.GetSeed())
}
