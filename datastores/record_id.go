package datastores

import (
	"encoding/base32"
	"errors"

	"github.com/google/uuid"
)

// RecordID identifies a record across saves and across overwrites by name.
// It is a random [uuid.UUID] written as unpadded base32 text.
type RecordID struct{ uuid.UUID }

var recordIDEncoding = base32.StdEncoding.WithPadding(base32.NoPadding) //nolint: gochecknoglobals

func newRecordID() RecordID { return RecordID{uuid.Must(uuid.NewRandom())} }

// IsZero reports whether the id was never assigned.
func (id RecordID) IsZero() bool { return id.UUID == uuid.Nil }

func (id RecordID) AppendText(b []byte) ([]byte, error) {
	return recordIDEncoding.AppendEncode(b, id.UUID[:]), nil
}

func (id RecordID) MarshalText() ([]byte, error) { return id.AppendText(nil) }

func (id *RecordID) UnmarshalText(b []byte) error {
	if len(b) != recordIDEncoding.EncodedLen(len(id.UUID)) {
		return errors.New("record id: invalid length")
	}
	_, err := recordIDEncoding.Decode(id.UUID[:], b)
	return err
}

func (id RecordID) String() string {
	b, _ := id.MarshalText()
	return string(b)
}
