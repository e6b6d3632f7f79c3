package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/oaiiae/contacts-bot/cli/bot"
	"github.com/oaiiae/contacts-bot/cli/logger"
)

// Options for the CLI. Pass `--book` or set the `SERVICE_BOOK` env var.
type Options struct {
	logger.Options
	bot.BookOptions
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		var session atomic.Pointer[bot.Bot]

		hooks.OnStart(func() {
			log := logger.New(&options.Options)
			b, err := bot.New(&options.BookOptions, log, nil)
			if err != nil {
				log.Error("could not load contacts", "err", err)
				os.Exit(1)
			}
			session.Store(b)

			ctx := context.Background()
			_ = b.Run(ctx, os.Stdin, os.Stdout) // reported on stdout by Run
			_ = b.Close(ctx)                     // logged by Close
		})
		hooks.OnStop(func() {
			if b := session.Load(); b != nil {
				_ = b.Close(context.Background()) // logged by Close
			}
		})
	})

	root := cli.Root()
	root.Use = "contacts-bot"
	root.Short = "Assistant bot keeping contacts, phones and birthdays"
	root.AddCommand(&cobra.Command{
		Use:   "birthdays",
		Short: "Print the birthdays of the coming week and exit",
		Args:  cobra.NoArgs,
		Run: humacli.WithOptions(func(cmd *cobra.Command, _ []string, options *Options) {
			log := logger.New(&options.Options)
			b, err := bot.New(&options.BookOptions, log, nil)
			if err != nil {
				log.Error("could not load contacts", "err", err)
				os.Exit(1)
			}

			out, err := b.Exec(cmd.Context(), "birthdays")
			if err != nil {
				log.LogAttrs(cmd.Context(), slog.LevelError, "could not list birthdays", slog.Any("err", err))
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}),
	})

	cli.Run()
}
