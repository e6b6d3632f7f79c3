package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/handlers"
	"github.com/oaiiae/contacts-bot/router"
)

type BookOptions struct {
	Book        string `short:"b" doc:"file the contacts are loaded from and saved to" default:"addressbook.json"`
	MetricsFile string `          doc:"write command metrics to file on exit"`
}

const (
	msgWelcome    = "Welcome to the assistant bot!"
	msgPrompt     = "Enter a command: "
	msgUnexpected = "An unexpected error occurred: %v\n"
)

// Bot holds the contacts of one session.
type Bot struct {
	options *BookOptions
	logger  *slog.Logger
	store   *ds.ContactsInmem
	metrics *metrics.Set
	router  *router.Router

	closeOnce sync.Once
	closeErr  error
}

// New loads the contacts book. now is the clock used for upcoming
// birthdays, [time.Now] when nil.
func New(options *BookOptions, logger *slog.Logger, now func() time.Time) (*Bot, error) {
	store, err := ds.LoadFile(options.Book)
	if err != nil {
		return nil, err
	}
	logger.Debug("contacts loaded", "file", options.Book)

	set := metrics.NewSet()
	return &Bot{
		options: options,
		logger:  logger,
		store:   store,
		metrics: set,
		router:  NewRouter(store, now, logger, set),
	}, nil
}

// NewRouter returns a router serving every bot command on store.
func NewRouter(store ds.ContactsStore, now func() time.Time, logger *slog.Logger, set *metrics.Set) *router.Router {
	return router.New(
		router.OptMessage(handlers.ErrorMessage),
		router.OptUseMiddleware(
			logCommands(logger),
			meterCommands(set),
			recoverPanics,
		),
		router.OptRegister(
			&handlers.Greeting{},
			&handlers.Contacts{Store: store},
			&handlers.Birthdays{Store: store, Now: now},
		),
	)
}

// Exec serves a single command line.
func (b *Bot) Exec(ctx context.Context, line string) (string, error) {
	return b.router.Serve(ctx, line)
}

// Store returns the session contacts.
func (b *Bot) Store() ds.ContactsStore { return b.store }

// Run reads command lines from in until a stop command, the end of in or
// an unexpected error. Unexpected errors are reported on out and returned.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, msgWelcome)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, msgPrompt)
		if !scanner.Scan() {
			err := scanner.Err()
			if err != nil {
				fmt.Fprintf(out, msgUnexpected, err)
				return err
			}
			fmt.Fprintln(out)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		output, err := b.router.Serve(ctx, scanner.Text())
		switch {
		case err == nil:
			fmt.Fprintln(out, output)
		case errors.Is(err, router.ErrStop):
			fmt.Fprintln(out, output)
			return nil
		default:
			fmt.Fprintf(out, msgUnexpected, err)
			return err
		}
	}
}

// Close saves the contacts and writes the metrics file. Only the first
// call has effect.
func (b *Bot) Close(ctx context.Context) error {
	b.closeOnce.Do(func() {
		err := ds.SaveFile(ctx, b.options.Book, b.store)
		if err != nil {
			b.logger.Error("could not save contacts", "err", err)
		} else {
			b.logger.Debug("contacts saved", "file", b.options.Book)
		}

		if b.options.MetricsFile != "" {
			merr := b.writeMetrics(b.options.MetricsFile)
			if merr != nil {
				b.logger.Warn("could not write metrics", "err", merr)
			}
			err = errors.Join(err, merr)
		}
		b.closeErr = err
	})
	return b.closeErr
}

func (b *Bot) writeMetrics(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	b.metrics.WritePrometheus(f)
	return f.Close()
}
