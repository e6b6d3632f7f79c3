package datastores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileVersion = 1

type (
	fileDocument struct {
		Version  int          `json:"version"`
		Contacts []fileRecord `json:"contacts"`
	}
	fileRecord struct {
		ID       RecordID `json:"id"`
		Name     string   `json:"name"`
		Phones   []string `json:"phones"`
		Birthday string   `json:"birthday,omitempty"`
	}
)

// LoadFile reads the contacts saved at path by [SaveFile].
// A missing file yields an empty store.
func LoadFile(path string) (*ContactsInmem, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewContactsInmem(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("datastores: read %s: %w", path, err)
	}

	var doc fileDocument
	err = json.Unmarshal(b, &doc)
	if err != nil {
		return nil, fmt.Errorf("datastores: decode %s: %w", path, err)
	}
	if doc.Version != fileVersion {
		return nil, fmt.Errorf("datastores: %s: unsupported version %d: %w", path, doc.Version, ErrInvalidValue)
	}

	records := make([]*Record, 0, len(doc.Contacts))
	for _, fr := range doc.Contacts {
		r, err := fr.record()
		if err != nil {
			return nil, fmt.Errorf("datastores: %s: contact %q: %w", path, fr.Name, err)
		}
		records = append(records, r)
	}
	return NewContactsInmem(records...), nil
}

func (fr *fileRecord) record() (*Record, error) {
	r, err := NewRecord(fr.Name)
	if err != nil {
		return nil, err
	}
	r.ID = fr.ID
	for _, p := range fr.Phones {
		err = r.AddPhone(p)
		if err != nil {
			return nil, err
		}
	}
	if fr.Birthday != "" {
		r.Birthday, err = NewBirthday(fr.Birthday)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SaveFile writes the contacts of s to path, replacing it atomically.
func SaveFile(ctx context.Context, path string, s ContactsStore) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}

	doc := fileDocument{Version: fileVersion, Contacts: make([]fileRecord, 0, len(records))}
	for _, r := range records {
		fr := fileRecord{ID: r.ID, Name: string(r.name), Phones: make([]string, 0, len(r.phones))}
		for _, p := range r.phones {
			fr.Phones = append(fr.Phones, string(p))
		}
		if !r.Birthday.IsZero() {
			fr.Birthday = r.Birthday.String()
		}
		doc.Contacts = append(doc.Contacts, fr)
	}

	b, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("datastores: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("datastores: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint: errcheck // gone after rename

	_, err = tmp.Write(append(b, '\n'))
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close() //nolint: errcheck,gosec // reporting the write error
	}
	if err != nil {
		return fmt.Errorf("datastores: save %s: %w", path, err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return fmt.Errorf("datastores: save %s: %w", path, err)
	}
	return nil
}
