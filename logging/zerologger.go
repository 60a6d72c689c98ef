package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	GameIDKey     string = "gameID"
	RoundNumKey   string = "round"
	StateKey      string = "state"
	PlayerNameKey string = "playerName"
	WinnerKey     string = "winner"
	PotKey        string = "pot"
)

func getEnableColorLog() string {
	v := os.Getenv("COLORIZE_LOG")
	if v == "" {
		// Use colorized logging by default.
		return "true"
	}
	return v
}

func IsColorLoggingEnabled() bool {
	return getEnableColorLog() == "1" || strings.ToLower(getEnableColorLog()) == "true"
}

func GetZeroLogger(name string, out io.Writer) *zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	noColor := !IsColorLoggingEnabled()
	output := zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Str("logger", name).Logger()
	return &logger
}

// SetGlobalLevel parses a level name such as "debug" or "warn". Unknown names
// leave the current level untouched and return false.
func SetGlobalLevel(level string) bool {
	if level == "" {
		return false
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	zerolog.SetGlobalLevel(l)
	return true
}

// SubLogger derives a named logger from the global logger at call time, so
// it picks up a writer installed by main after package initialization.
func SubLogger(name string) *zerolog.Logger {
	logger := log.With().Str("logger_name", name).Logger()
	return &logger
}
