// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Init installs a text-formatted logger writing to w (stderr when nil) at the
// named level and returns it. stdout stays free for command output and the
// MCP protocol.
func Init(level string, w io.Writer) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "bruh",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       log.TextFormatter,
	})
	logger.SetStyles(log.DefaultStyles())
	log.SetDefault(logger)
	return logger, nil
}

// ParseLevel maps a level name to a log level. An empty name means info.
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
