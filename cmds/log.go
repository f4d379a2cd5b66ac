package cmds

import (
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

var LogVars = kong.Vars{
	"log_level":  "info",
	"log_format": "terminal",
}

type LogFlags struct {
	LogLevel  string `name:"log-level" help:"log level {trace debug info warn error} (default: ${log_level})" default:"${log_level}"` // nolint:lll
	LogFormat string `name:"log-format" help:"log format {json terminal} (default: ${log_format})" default:"${log_format}"`         // nolint:lll
}

// SetupLoggingFromFlags builds the root logger. Logs go to out, which is
// stderr for the commands, so stdout only carries ids.
func SetupLoggingFromFlags(flags *LogFlags, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if s := strings.ToLower(strings.TrimSpace(flags.LogLevel)); len(s) > 0 {
		i, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.Nop(), xerrors.Errorf("unknown log level, %q", flags.LogLevel)
		}
		level = i
	}

	var w io.Writer
	switch f := strings.ToLower(strings.TrimSpace(flags.LogFormat)); f {
	case "json":
		w = out
	case "", "terminal":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339Nano}
	default:
		return zerolog.Nop(), xerrors.Errorf("unknown log format, %q", flags.LogFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
