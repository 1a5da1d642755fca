package book

// Upsert outcomes.
const (
	OutcomeAdded   = "added"
	OutcomeUpdated = "updated"
)

// UpsertResult reports what Upsert did. PhoneErr is set when the phone
// was rejected after the record had already been created or its birthday
// applied; those changes stand.
type UpsertResult struct {
	Outcome  string
	PhoneErr error
}

// Upsert implements the add-contact workflow:
//
//  1. If birthday is non-empty it is validated up front; ErrInvalidDate
//     aborts the whole operation with no state change.
//  2. The record for name is created (outcome "added") or reused
//     (outcome "updated").
//  3. A validated birthday overwrites any previous one.
//  4. If phone is non-empty, AddPhone is attempted; a rejection is
//     reported via UpsertResult.PhoneErr without undoing steps 2-3.
func (b *Book) Upsert(name, phone, birthday string) (UpsertResult, error) {
	if birthday != "" {
		if _, err := NewBirthday(birthday); err != nil {
			return UpsertResult{}, err
		}
	}

	rec, ok := b.Find(name)
	outcome := OutcomeUpdated
	if !ok {
		var err error
		rec, err = NewRecord(name)
		if err != nil {
			return UpsertResult{}, err
		}
		b.AddRecord(rec)
		outcome = OutcomeAdded
	}

	if birthday != "" {
		// Already validated above; SetBirthday cannot fail here.
		if err := rec.SetBirthday(birthday); err != nil {
			return UpsertResult{}, err
		}
	}

	res := UpsertResult{Outcome: outcome}
	if phone != "" {
		res.PhoneErr = rec.AddPhone(phone)
	}
	return res, nil
}
