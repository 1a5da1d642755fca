package book

import "time"

// DefaultUpcomingDays is the birthday-window length used when the caller
// does not configure one.
const DefaultUpcomingDays = 7

// Book maps contact names to records. Keys are unique and every key
// equals its record's name; iteration follows insertion order. Raw map
// access is never exposed, so the identity invariant holds at the
// boundary.
type Book struct {
	records map[string]*Record
	order   []string
}

// New returns an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts rec under its name, replacing any existing record
// wholesale. A replaced name keeps its original position in iteration
// order.
func (b *Book) AddRecord(rec *Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Find returns the record for name. Exact match only.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name and reports whether one existed.
func (b *Book) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns the records whose birthday, projected onto
// ref's year, falls in the inclusive window [ref, ref+days]. Comparison
// is by calendar day; the result keeps Book iteration order.
//
// A Feb 29 birthday projected onto a non-leap year resolves to Mar 1
// (time.Date normalization).
func (b *Book) UpcomingBirthdays(days int, ref time.Time) []*Record {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days)

	var out []*Record
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		d := bd.Date()
		projected := time.Date(start.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if !projected.Before(start) && !projected.After(end) {
			out = append(out, rec)
		}
	}
	return out
}
