package datastores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestRecord_AddPhone(t *testing.T) {
	r := newTestRecord(t, "john", "0123456789", "1111111111", "0123456789")
	assert.Equal(t, []Phone{"0123456789", "1111111111"}, r.Phones())

	err := r.AddPhone("123")
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Len(t, r.Phones(), 2)
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newTestRecord(t, "john", "0123456789", "1111111111")
	r.RemovePhone("0123456789")
	assert.Equal(t, []Phone{"1111111111"}, r.Phones())

	r.RemovePhone("2222222222")
	assert.Equal(t, []Phone{"1111111111"}, r.Phones())
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces", func(t *testing.T) {
		r := newTestRecord(t, "john", "0123456789", "1111111111")
		require.NoError(t, r.EditPhone("0123456789", "2222222222"))
		assert.Equal(t, []Phone{"2222222222", "1111111111"}, r.Phones())
	})

	t.Run("missing old phone is a no-op", func(t *testing.T) {
		r := newTestRecord(t, "john", "0123456789")
		require.NoError(t, r.EditPhone("9999999999", "2222222222"))
		assert.Equal(t, []Phone{"0123456789"}, r.Phones())
	})

	t.Run("invalid new phone", func(t *testing.T) {
		r := newTestRecord(t, "john", "0123456789")
		err := r.EditPhone("0123456789", "22")
		assert.ErrorIs(t, err, ErrInvalidPhone)
		assert.Equal(t, []Phone{"0123456789"}, r.Phones())
	})

	t.Run("new phone already present", func(t *testing.T) {
		r := newTestRecord(t, "john", "0123456789", "1111111111")
		require.NoError(t, r.EditPhone("0123456789", "1111111111"))
		assert.Equal(t, []Phone{"1111111111"}, r.Phones())
	})
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "john", "0123456789")
	assert.True(t, r.FindPhone("0123456789"))
	assert.False(t, r.FindPhone("1111111111"))
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "john", "0123456789", "1111111111")
	assert.Equal(t, "Contact name: john, phones: 0123456789; 1111111111", r.String())

	r = newTestRecord(t, "jane")
	assert.Equal(t, "Contact name: jane, phones: ", r.String())
}

func TestNewRecord_EmptyName(t *testing.T) {
	_, err := NewRecord("")
	assert.ErrorIs(t, err, ErrInvalidName)
}
