package datastores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Missing(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveFile_LoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.json")

	john := newTestRecord(t, "john", "0123456789", "1111111111")
	b, err := NewBirthday("15.06.1990")
	require.NoError(t, err)
	john.AddBirthday(b)
	jane := newTestRecord(t, "jane")
	require.NoError(t, SaveFile(ctx, path, NewContactsInmem(john, jane)))

	s, err := LoadFile(path)
	require.NoError(t, err)
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, john.ID, list[0].ID)
	assert.Equal(t, john.String(), list[0].String())
	assert.Equal(t, "15.06.1990", list[0].Birthday.String())
	assert.Equal(t, Name("jane"), list[1].Name())
	assert.True(t, list[1].Birthday.IsZero())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSaveFile_LoadFile_YearOne(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.json")

	john := newTestRecord(t, "john")
	b, err := NewBirthday("01.01.0001")
	require.NoError(t, err)
	john.AddBirthday(b)
	require.NoError(t, SaveFile(ctx, path, NewContactsInmem(john)))

	s, err := LoadFile(path)
	require.NoError(t, err)
	r, err := s.Get(ctx, "john")
	require.NoError(t, err)
	assert.False(t, r.Birthday.IsZero())
	assert.Equal(t, "01.01.0001", r.Birthday.String())
}

func TestLoadFile_Invalid(t *testing.T) {
	for name, content := range map[string]string{
		"not json":     `{`,
		"version":      `{"version":2,"contacts":[]}`,
		"phone":        `{"version":1,"contacts":[{"name":"john","phones":["12"]}]}`,
		"birthday":     `{"version":1,"contacts":[{"name":"john","phones":[],"birthday":"1990-06-15"}]}`,
		"empty name":   `{"version":1,"contacts":[{"name":"","phones":[]}]}`,
		"malformed id": `{"version":1,"contacts":[{"id":"x","name":"john","phones":[]}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}
