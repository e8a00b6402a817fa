package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

var logFile = "termflip/termflip.log"

// ParseLogLevel maps a TERMFLIP_LOG_LEVEL value to a slog level.
// An empty value means INFO.
func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", value)
}

// SetupLogging installs the default slog logger. The terminal belongs to the
// UI, so logs go to a file under the XDG state dir, or nowhere if it cannot
// be opened. The returned closer must be called on exit.
func SetupLogging() (io.Closer, error) {
	level, err := ParseLogLevel(os.Getenv("TERMFLIP_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if path, err := xdg.StateFile(logFile); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			out, closer = f, f
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
