package datastores

import (
	"time"
)

// BirthdayLayout is the DD.MM.YYYY layout birthdays are read and written with.
const BirthdayLayout = "02.01.2006"

// Name is a contact name, the unique key of a [Record].
type Name string

func NewName(s string) (Name, error) {
	if s == "" {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a ten digit phone number.
type Phone string

func NewPhone(s string) (Phone, error) {
	if len(s) != 10 { //nolint: mnd // phone length
		return "", ErrInvalidPhone
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return "", ErrInvalidPhone
		}
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date without time of day. The zero Birthday is
// unset; 01.01.0001 is a set birthday.
type Birthday struct {
	date time.Time
	set  bool
}

func NewBirthday(s string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: date, set: true}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether b is unset.
func (b Birthday) IsZero() bool { return !b.set }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
