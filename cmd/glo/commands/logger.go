package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/glo/pkg/glo"
)

const defaultLogLevel = zerolog.WarnLevel

// zerologAdapter satisfies glo.Logger on top of a zerolog.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

var _ glo.Logger = (*zerologAdapter)(nil)

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

func parseLogLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return defaultLogLevel, nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}

	return parsed, nil
}

// newCLILogger writes human readable logs to w. --verbose forces debug.
func newCLILogger(w io.Writer, level string, verbose bool) (*zerologAdapter, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	if verbose {
		lvl = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &zerologAdapter{logger: logger}, nil
}
