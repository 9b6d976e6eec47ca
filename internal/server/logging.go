package server

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the server logger: human-readable text on stderr,
// plus a JSON stream appended to logFile when one is configured.
func NewLogger(logFile string) (*slog.Logger, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, nil),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, nil))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}
