package book

import (
	"errors"
	"time"
)

// Field validation errors.
var (
	ErrInvalidPhone = errors.New("phone number must be exactly 10 digits")
	ErrInvalidDate  = errors.New("invalid date format, use DD.MM.YYYY")
	ErrNameEmpty    = errors.New("contact name must not be empty")
)

// DateLayout is the textual date format accepted and emitted at the
// boundary: two-digit day, two-digit month, four-digit year.
const DateLayout = "02.01.2006"

// Phone is a validated phone number. The zero value is invalid; construct
// with NewPhone. Immutable once constructed.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
// Returns ErrInvalidPhone unless raw is exactly 10 decimal digits.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return Phone{}, ErrInvalidPhone
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: raw}, nil
}

// Value returns the digit string.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

// Birthday is a validated calendar date. The zero value is invalid;
// construct with NewBirthday. Immutable once constructed.
type Birthday struct {
	value time.Time
}

// NewBirthday parses raw under DateLayout and returns it as a Birthday.
// Returns ErrInvalidDate when raw is malformed or not a real calendar
// date (day 31 in April, month 13, Feb 30, and so on).
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Birthday{}, ErrInvalidDate
	}
	return Birthday{value: t}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time { return b.value }

// String formats the date back to DD.MM.YYYY.
func (b Birthday) String() string { return b.value.Format(DateLayout) }
