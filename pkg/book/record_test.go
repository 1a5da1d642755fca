package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	rec, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, rec.AddPhone(p))
	}
	return rec
}

func TestNewRecordRejectsEmptyName(t *testing.T) {
	_, err := NewRecord("")
	assert.ErrorIs(t, err, ErrNameEmpty)
}

func TestRecordAddPhone(t *testing.T) {
	rec := newTestRecord(t, "Ann")

	assert.NoError(t, rec.AddPhone("1234567890"))
	assert.ErrorIs(t, rec.AddPhone("123"), ErrInvalidPhone)
	assert.Equal(t, []string{"1234567890"}, rec.Phones(), "rejected phone must not be appended")

	// Duplicates are permitted and keep insertion order.
	assert.NoError(t, rec.AddPhone("1234567890"))
	assert.Equal(t, []string{"1234567890", "1234567890"}, rec.Phones())
}

func TestRecordRemovePhone(t *testing.T) {
	rec := newTestRecord(t, "Ann", "1111111111", "2222222222", "1111111111")

	assert.True(t, rec.RemovePhone("1111111111"), "first match should be removed")
	assert.Equal(t, []string{"2222222222", "1111111111"}, rec.Phones())

	assert.False(t, rec.RemovePhone("9999999999"), "miss is reported, not an error")
	assert.Equal(t, []string{"2222222222", "1111111111"}, rec.Phones())
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name       string
		old        string
		new        string
		wantErr    error
		wantPhones []string
	}{
		{
			name:       "replace preserves position",
			old:        "1111111111",
			new:        "3333333333",
			wantPhones: []string{"3333333333", "2222222222"},
		},
		{
			name:       "old not found",
			old:        "9999999999",
			new:        "3333333333",
			wantErr:    ErrPhoneNotFound,
			wantPhones: []string{"1111111111", "2222222222"},
		},
		{
			name:       "new invalid leaves record unchanged",
			old:        "1111111111",
			new:        "33",
			wantErr:    ErrInvalidPhone,
			wantPhones: []string{"1111111111", "2222222222"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newTestRecord(t, "Ann", "1111111111", "2222222222")

			err := rec.EditPhone(tt.old, tt.new)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantPhones, rec.Phones())
		})
	}
}

func TestRecordFindPhone(t *testing.T) {
	rec := newTestRecord(t, "Ann", "1111111111", "2222222222")

	p, ok := rec.FindPhone("2222222222")
	assert.True(t, ok)
	assert.Equal(t, "2222222222", p.Value())

	_, ok = rec.FindPhone("3333333333")
	assert.False(t, ok)
}

func TestRecordSetBirthday(t *testing.T) {
	rec := newTestRecord(t, "Ann")

	require.NoError(t, rec.SetBirthday("01.01.2000"))
	bd, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", bd.String())

	// A rejected date leaves the existing birthday untouched.
	assert.ErrorIs(t, rec.SetBirthday("31.04.2001"), ErrInvalidDate)
	bd, ok = rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", bd.String())

	// A valid date overwrites.
	require.NoError(t, rec.SetBirthday("02.02.2002"))
	bd, _ = rec.Birthday()
	assert.Equal(t, "02.02.2002", bd.String())
}

func TestRecordString(t *testing.T) {
	rec := newTestRecord(t, "Ann", "1234567890", "0987654321")
	assert.Equal(t, "Contact name: Ann, phones: 1234567890; 0987654321", rec.String())

	require.NoError(t, rec.SetBirthday("01.01.2000"))
	assert.Equal(t, "Contact name: Ann, phones: 1234567890; 0987654321, birthday: 01.01.2000", rec.String())

	empty := newTestRecord(t, "Bob")
	assert.Equal(t, "Contact name: Bob, phones: ", empty.String())
}
