package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/router"
)

type Contacts struct {
	Store ds.ContactsStore
}

func (h *Contacts) Register(r *router.Router) { // called by [router.OptRegister]
	r.Handle("add", 2, h.add)
	r.Handle("change", 3, h.change)
	r.Handle("all", 0, h.all)
	r.Handle("phone", 1, h.phone)
}

func (h *Contacts) add(ctx context.Context, args []string) (string, error) {
	name, phone := args[0], args[1]

	record, err := h.Store.Get(ctx, name)
	switch {
	case err == nil:
		err = record.AddPhone(phone)
		if err != nil {
			return "", err
		}
		return "Added new phone to existing contact", nil

	case errors.Is(err, ds.ErrObjectNotFound):
		record, err = ds.NewRecord(name)
		if err != nil {
			return "", err
		}
		err = record.AddPhone(phone)
		if err != nil {
			return "", err
		}
		return "Contact added.", h.Store.Put(ctx, record)

	default:
		return "", err
	}
}

func (h *Contacts) change(ctx context.Context, args []string) (string, error) {
	name, old, phone := args[0], args[1], args[2]

	record, err := h.Store.Get(ctx, name)
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return noContact(name), nil
	case err != nil:
		return "", err
	}

	err = record.EditPhone(old, phone)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("For contact '%s' phone changed.", name), nil
}

func (h *Contacts) all(ctx context.Context, _ []string) (string, error) {
	records, err := h.Store.List(ctx)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name().String())
	}
	return strings.Join(names, "\n"), nil
}

func (h *Contacts) phone(ctx context.Context, args []string) (string, error) {
	name := args[0]

	record, err := h.Store.Get(ctx, name)
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return noContact(name), nil
	case err != nil:
		return "", err
	}
	return record.String(), nil
}
