package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/router"
)

type Birthdays struct {
	Store ds.ContactsStore
	Now   func() time.Time // defaults to [time.Now]
}

func (h *Birthdays) Register(r *router.Router) { // called by [router.OptRegister]
	r.Handle("add-birthday", 2, h.add)
	r.Handle("show-birthday", 1, h.show)
	r.Handle("birthdays", 0, h.upcoming)
}

func (h *Birthdays) add(ctx context.Context, args []string) (string, error) {
	name, date := args[0], args[1]

	record, err := h.Store.Get(ctx, name)
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return noContact(name), nil
	case err != nil:
		return "", err
	}

	birthday, err := ds.NewBirthday(date)
	if err != nil {
		return "", err
	}
	record.AddBirthday(birthday)
	return "Birthday added.", nil
}

func (h *Birthdays) show(ctx context.Context, args []string) (string, error) {
	name := args[0]

	record, err := h.Store.Get(ctx, name)
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return noContact(name), nil
	case err != nil:
		return "", err
	}

	if record.Birthday.IsZero() {
		return fmt.Sprintf("%s does not have a birthday set.", name), nil
	}
	return fmt.Sprintf("The birthday of %s is %s", name, record.Birthday), nil
}

func (h *Birthdays) upcoming(ctx context.Context, _ []string) (string, error) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	congrats, err := h.Store.UpcomingBirthdays(ctx, now())
	if err != nil {
		return "", err
	}
	if len(congrats) == 0 {
		return "There are no upcoming birthdays next week.", nil
	}

	lines := make([]string, 0, len(congrats))
	for _, c := range congrats {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n"), nil
}
