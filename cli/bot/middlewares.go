package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/oaiiae/contacts-bot/router"
)

// logCommands returns a middleware that logs every served command.
func logCommands(logger *slog.Logger) router.Middleware {
	return func(c *router.Context, next func(*router.Context)) {
		start := time.Now()
		next(c)

		level := slog.LevelDebug
		attrs := []slog.Attr{
			slog.String("command", c.Command),
			slog.Int("args", len(c.Args)),
			slog.String("outcome", c.Outcome),
			slog.Duration("dur", time.Since(start)),
		}
		switch c.Outcome {
		case router.OutcomeRejected:
			level = slog.LevelInfo
			attrs = append(attrs, slog.Any("err", c.Err))
		case router.OutcomeFailed:
			level = slog.LevelError
			attrs = append(attrs, slog.Any("err", c.Err))
		}
		logger.LogAttrs(c.Context(), level, "command served", attrs...)
	}
}

// meterCommands returns a middleware counting and timing served commands.
// Unknown commands share the "invalid" label.
func meterCommands(set *metrics.Set) router.Middleware {
	buckets := metrics.ExponentialBuckets(1e-6, 10, 6) //nolint: mnd // arbitrary

	return func(c *router.Context, next func(*router.Context)) {
		start := time.Now()
		next(c)

		command := c.Command
		if !c.Known {
			command = "invalid"
		}
		set.GetOrCreateCounter(joinQuote(`bot_commands_total{command=`, command, `,outcome=`, c.Outcome, `}`)).Inc()
		set.GetOrCreatePrometheusHistogramExt(joinQuote(`bot_command_duration_seconds{command=`, command, `}`), buckets).
			UpdateDuration(start)
	}
}

// recoverPanics is a middleware turning a handler panic into an unexpected error.
func recoverPanics(c *router.Context, next func(*router.Context)) {
	defer func() {
		v := recover()
		if v != nil {
			c.Output, c.Outcome, c.Err = "", router.OutcomeFailed, fmt.Errorf("panic: %v", v)
		}
	}()
	next(c)
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
