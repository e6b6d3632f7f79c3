package datastores

import (
	"slices"
	"strings"
)

// Record is one contact: a name, a set of phones and an optional birthday.
//
// Phones never hold duplicates. They are kept in insertion order so that
// renderings are stable between runs.
type Record struct {
	ID       RecordID
	name     Name
	phones   []Phone
	Birthday Birthday
}

func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the record phones.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

func (r *Record) AddPhone(s string) error {
	phone, err := NewPhone(s)
	if err != nil {
		return err
	}
	if !slices.Contains(r.phones, phone) {
		r.phones = append(r.phones, phone)
	}
	return nil
}

func (r *Record) AddBirthday(b Birthday) { r.Birthday = b }

func (r *Record) RemovePhone(s string) {
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool { return string(p) == s })
}

// EditPhone replaces old with next. It does nothing when old is not found.
func (r *Record) EditPhone(old, next string) error {
	i := slices.Index(r.phones, Phone(old))
	if i < 0 {
		return nil
	}
	phone, err := NewPhone(next)
	if err != nil {
		return err
	}
	if j := slices.Index(r.phones, phone); j >= 0 && j != i {
		r.phones = slices.Delete(r.phones, i, i+1)
		return nil
	}
	r.phones[i] = phone
	return nil
}

func (r *Record) FindPhone(s string) bool {
	return slices.Contains(r.phones, Phone(s))
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(string(r.name))
	sb.WriteString(", phones: ")
	for i, p := range r.phones {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(string(p))
	}
	return sb.String()
}
