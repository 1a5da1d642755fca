package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAddRecordAndFind(t *testing.T) {
	b := New()

	rec := newTestRecord(t, "Ann", "1234567890")
	b.AddRecord(rec)

	got, ok := b.Find("Ann")
	require.True(t, ok)
	assert.Same(t, rec, got)

	// Find is idempotent.
	again, ok := b.Find("Ann")
	require.True(t, ok)
	assert.Same(t, got, again)

	// Exact match only: no case folding.
	_, ok = b.Find("ann")
	assert.False(t, ok)
}

func TestBookAddRecordReplacesWholesale(t *testing.T) {
	b := New()
	b.AddRecord(newTestRecord(t, "Ann", "1111111111"))
	b.AddRecord(newTestRecord(t, "Bob", "2222222222"))

	replacement := newTestRecord(t, "Ann", "3333333333")
	b.AddRecord(replacement)

	assert.Equal(t, 2, b.Len())
	got, _ := b.Find("Ann")
	assert.Same(t, replacement, got)
	assert.Equal(t, []string{"3333333333"}, got.Phones())

	// The replaced name keeps its position in iteration order.
	recs := b.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Ann", recs[0].Name())
	assert.Equal(t, "Bob", recs[1].Name())
}

func TestBookDelete(t *testing.T) {
	b := New()
	b.AddRecord(newTestRecord(t, "Ann"))
	b.AddRecord(newTestRecord(t, "Bob"))

	assert.True(t, b.Delete("Ann"))
	assert.Equal(t, 1, b.Len())
	_, ok := b.Find("Ann")
	assert.False(t, ok)

	// Deleting an absent name reports false and changes nothing.
	assert.False(t, b.Delete("Ann"))
	assert.Equal(t, 1, b.Len())

	recs := b.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "Bob", recs[0].Name())
}

func TestBookRecordsInsertionOrder(t *testing.T) {
	b := New()
	for _, name := range []string{"Zoe", "Ann", "Mia", "Bob"} {
		b.AddRecord(newTestRecord(t, name))
	}

	var names []string
	for _, rec := range b.Records() {
		names = append(names, rec.Name())
	}
	assert.Equal(t, []string{"Zoe", "Ann", "Mia", "Bob"}, names)
}

func TestUpcomingBirthdays(t *testing.T) {
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		days     int
		want     bool
	}{
		{name: "inside window", birthday: "05.06.1990", days: 7, want: true},
		{name: "outside window", birthday: "20.06.1990", days: 7, want: false},
		{name: "on reference day", birthday: "01.06.1985", days: 7, want: true},
		{name: "on last window day", birthday: "08.06.1985", days: 7, want: true},
		{name: "day after window", birthday: "09.06.1985", days: 7, want: false},
		{name: "yesterday excluded", birthday: "31.05.1985", days: 7, want: false},
		{name: "wider window", birthday: "20.06.1990", days: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			rec := newTestRecord(t, "Ann")
			require.NoError(t, rec.SetBirthday(tt.birthday))
			b.AddRecord(rec)

			got := b.UpcomingBirthdays(tt.days, ref)
			if tt.want {
				require.Len(t, got, 1)
				assert.Same(t, rec, got[0])
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestUpcomingBirthdaysSkipsRecordsWithoutBirthday(t *testing.T) {
	b := New()
	b.AddRecord(newTestRecord(t, "Ann", "1234567890"))

	assert.Empty(t, b.UpcomingBirthdays(7, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUpcomingBirthdaysKeepsIterationOrder(t *testing.T) {
	b := New()
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Later calendar date inserted first; result must not be sorted by date.
	first := newTestRecord(t, "Zoe")
	require.NoError(t, first.SetBirthday("07.06.1990"))
	b.AddRecord(first)

	second := newTestRecord(t, "Ann")
	require.NoError(t, second.SetBirthday("02.06.1990"))
	b.AddRecord(second)

	got := b.UpcomingBirthdays(7, ref)
	require.Len(t, got, 2)
	assert.Equal(t, "Zoe", got[0].Name())
	assert.Equal(t, "Ann", got[1].Name())
}

func TestUpcomingBirthdaysLeapDayProjection(t *testing.T) {
	b := New()
	rec := newTestRecord(t, "Leap")
	require.NoError(t, rec.SetBirthday("29.02.2000"))
	b.AddRecord(rec)

	// 2023 is not a leap year: Feb 29 projects to Mar 1.
	ref := time.Date(2023, 2, 26, 0, 0, 0, 0, time.UTC)
	got := b.UpcomingBirthdays(7, ref)
	require.Len(t, got, 1)

	// A window that ends on Feb 28 in a non-leap year misses it.
	ref = time.Date(2023, 2, 21, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, b.UpcomingBirthdays(7, ref))

	// In a leap year the projection stays on Feb 29.
	ref = time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
	assert.Len(t, b.UpcomingBirthdays(7, ref), 1)
}

func TestUpsertAddsThenUpdates(t *testing.T) {
	b := New()

	res, err := b.Upsert("Ann", "1234567890", "01.01.2000")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, res.Outcome)
	assert.NoError(t, res.PhoneErr)

	rec, ok := b.Find("Ann")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, rec.Phones())
	bd, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", bd.String())

	res, err = b.Upsert("Ann", "0987654321", "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, res.Outcome)

	rec, _ = b.Find("Ann")
	assert.Equal(t, []string{"1234567890", "0987654321"}, rec.Phones())
	bd, ok = rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", bd.String(), "birthday must survive a phone-only upsert")
}

func TestUpsertInvalidBirthdayAbortsBeforeMutation(t *testing.T) {
	b := New()

	_, err := b.Upsert("Ann", "1234567890", "31.04.2001")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, b.Len(), "no record may be created when the birthday is rejected")
}

func TestUpsertInvalidPhoneKeepsEarlierChanges(t *testing.T) {
	b := New()

	res, err := b.Upsert("Ann", "123", "01.01.2000")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, res.Outcome)
	assert.ErrorIs(t, res.PhoneErr, ErrInvalidPhone)

	// The record and its birthday stand; only the phone was rejected.
	rec, ok := b.Find("Ann")
	require.True(t, ok)
	assert.Empty(t, rec.Phones())
	bd, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", bd.String())
}

func TestUpsertEmptyNameRejected(t *testing.T) {
	b := New()

	_, err := b.Upsert("", "1234567890", "")
	assert.ErrorIs(t, err, ErrNameEmpty)
	assert.Equal(t, 0, b.Len())
}
