package datastores

import (
	"context"
	"errors"
	"time"
)

// Congratulation is an entry of [ContactsStore.UpcomingBirthdays].
type Congratulation struct {
	Name Name
	Date time.Time
}

// CongratulationLayout is the YYYY.MM.DD layout congratulation dates are rendered with.
const CongratulationLayout = "2006.01.02"

func (c Congratulation) String() string {
	return string(c.Name) + ": " + c.Date.Format(CongratulationLayout)
}

type ContactsStore interface {
	Put(context.Context, *Record) error
	Get(context.Context, string) (*Record, error)
	Delete(context.Context, string) error
	List(context.Context) ([]*Record, error)
	UpcomingBirthdays(ctx context.Context, today time.Time) ([]Congratulation, error)
}

var (
	ErrObjectNotFound  = errors.New("store: object not found")
	ErrInvalidName     = errors.New("store: invalid name")
	ErrInvalidPhone    = errors.New("store: invalid phone")
	ErrInvalidBirthday = errors.New("store: invalid birthday")
	ErrInvalidValue    = errors.New("store: invalid value")
)
