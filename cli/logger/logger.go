package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options are embedded in the CLI options. Logs default to stderr as
// stdout belongs to the bot conversation.
type Options struct {
	LogLevel  string `doc:"log from debug, info, warn or error"`
	LogFile   string `doc:"append logs to file, - for stdout"`
	LogFormat string `doc:"format logs as text or json"         default:"text"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelWarn, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger configured from options. Invalid options fall back
// to their default and the fallback is logged.
func New(options *Options) *slog.Logger {
	level, ok := level(options.LogLevel)
	if !ok {
		options.LogLevel = ""
		logger := New(options)
		logger.Warn("could not parse logger level")
		return logger
	}
	opts := slog.HandlerOptions{Level: level}

	var output io.Writer
	switch options.LogFile {
	case "":
		output = os.Stderr
	case "-":
		output = os.Stdout
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		var err error
		output, err = os.OpenFile(options.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.LogFile = ""
			logger := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
	}

	switch strings.ToLower(options.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts))
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts))
	default:
		options.LogFormat = "text"
		logger := New(options)
		logger.Warn("could not parse logger format")
		return logger
	}
}
