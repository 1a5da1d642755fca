package book

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPhoneNotFound is returned by EditPhone when the phone to replace is
// not on the record.
var ErrPhoneNotFound = errors.New("old phone not found")

// Record is a single contact: an immutable name, an ordered list of phone
// numbers (duplicates permitted, insertion order preserved), and at most
// one birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with the given name and no phones or
// birthday. Returns ErrNameEmpty for an empty name.
func NewRecord(name string) (*Record, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	return &Record{name: name}, nil
}

// Name returns the contact name. The name is the record's identity and
// never changes after creation.
func (r *Record) Name() string { return r.name }

// AddPhone validates raw and appends it to the phone list.
// On ErrInvalidPhone the record is unchanged.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw. The return value
// reports whether a removal occurred; a miss is not an error.
func (r *Record) RemovePhone(raw string) bool {
	for i, p := range r.phones {
		if p.Value() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the first phone equal to oldRaw with newRaw,
// preserving its position. Returns ErrPhoneNotFound when oldRaw is not
// on the record and ErrInvalidPhone when newRaw fails validation; the
// record is unchanged in both cases.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, p := range r.phones {
		if p.Value() == oldRaw {
			np, err := NewPhone(newRaw)
			if err != nil {
				return err
			}
			r.phones[i] = np
			return nil
		}
	}
	return ErrPhoneNotFound
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// Phones returns the phone values in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// SetBirthday validates raw and sets or overwrites the birthday.
// On ErrInvalidDate any existing birthday is left untouched.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday, if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the contact as a single line. The birthday clause is
// omitted when no birthday is set.
func (r *Record) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Contact name: %s, phones: %s", r.name, strings.Join(r.Phones(), "; "))
	if r.birthday != nil {
		fmt.Fprintf(&sb, ", birthday: %s", r.birthday)
	}
	return sb.String()
}
