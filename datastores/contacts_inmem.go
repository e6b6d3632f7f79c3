package datastores

import (
	"context"
	"slices"
	"sync"
	"time"
)

// upcomingDays is the width of the upcoming birthdays window, today included.
const upcomingDays = 7

// ContactsInmem implements [ContactsStore].
type ContactsInmem struct {
	mu      sync.Mutex
	index   map[Name]int
	records []*Record
}

var _ ContactsStore = (*ContactsInmem)(nil)

func NewContactsInmem(rs ...*Record) *ContactsInmem {
	s := &ContactsInmem{index: make(map[Name]int, len(rs))}
	for _, r := range rs {
		s.put(r)
	}
	return s
}

func (s *ContactsInmem) Put(_ context.Context, r *Record) error {
	if r == nil || r.name == "" {
		return ErrInvalidValue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(r)
	return nil
}

// put keeps the id of the record it overwrites.
func (s *ContactsInmem) put(r *Record) {
	if i, ok := s.index[r.name]; ok {
		if r.ID.IsZero() {
			r.ID = s.records[i].ID
		}
		s.records[i] = r
		return
	}
	if r.ID.IsZero() {
		r.ID = newRecordID()
	}
	s.index[r.name] = len(s.records)
	s.records = append(s.records, r)
}

func (s *ContactsInmem) Get(_ context.Context, name string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[Name(name)]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return s.records[i], nil
}

func (s *ContactsInmem) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[Name(name)]
	if !ok {
		return nil
	}
	delete(s.index, Name(name))
	s.records = slices.Delete(s.records, i, i+1)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].name] = j
	}
	return nil
}

// List returns the records in insertion order.
func (s *ContactsInmem) List(_ context.Context) ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records), nil
}

// UpcomingBirthdays returns the congratulation dates falling within a week
// of today, in insertion order. Only the calendar date of today is used.
func (s *ContactsInmem) UpcomingBirthdays(_ context.Context, today time.Time) ([]Congratulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var congrats []Congratulation
	for _, r := range s.records {
		date, ok := congratulationDate(r.Birthday, today)
		if ok {
			congrats = append(congrats, Congratulation{Name: r.name, Date: date})
		}
	}
	return congrats, nil
}

func congratulationDate(b Birthday, today time.Time) (time.Time, bool) {
	if b.IsZero() {
		return time.Time{}, false
	}

	year, month, day := today.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// 29 February normalizes to 1 March in non leap years.
	next := time.Date(year, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(start) {
		next = time.Date(year+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}

	days := int(next.Sub(start) / (24 * time.Hour))
	if days < 0 || days > upcomingDays {
		return time.Time{}, false
	}

	switch next.Weekday() {
	case time.Saturday:
		next = next.AddDate(0, 0, 2)
	case time.Sunday:
		next = next.AddDate(0, 0, 1)
	}
	return next, true
}
