// JSON snapshot backend. The whole book is written as one versioned JSON
// document using the temp-file, fsync, rename pattern so a crashed save
// never leaves a half-written snapshot behind.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// jsonSnapshotFile is the snapshot filename inside the data directory.
const jsonSnapshotFile = "addressbook.json"

// snapshotVersion is the current on-disk format version.
const snapshotVersion = 1

// snapshotMeta is the snapshot header: which process wrote it, when, and
// under which format version.
type snapshotMeta struct {
	SnapshotID string    `json:"snapshot_id"`
	Version    int       `json:"version"`
	SavedAt    time.Time `json:"saved_at"`
}

// contactJSON is the serialized form of one record. Phones keep their
// insertion order; Birthday is omitted when unset.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// snapshotJSON is the full on-disk document. Contacts array order is the
// book's iteration order.
type snapshotJSON struct {
	Meta     snapshotMeta  `json:"_meta"`
	Contacts []contactJSON `json:"contacts"`
}

type jsonStore struct {
	dataDir string
}

func newJSONStore(dataDir string) *jsonStore {
	if dataDir == "" {
		dataDir = "."
	}
	return &jsonStore{dataDir: dataDir}
}

func (s *jsonStore) path() string {
	return filepath.Join(s.dataDir, jsonSnapshotFile)
}

// Save writes the book to addressbook.json, replacing any previous
// snapshot atomically.
func (s *jsonStore) Save(b *book.Book) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	snap := snapshotJSON{
		Meta: snapshotMeta{
			SnapshotID: uuid.Must(uuid.NewV7()).String(),
			Version:    snapshotVersion,
			SavedAt:    time.Now().UTC(),
		},
		Contacts: make([]contactJSON, 0, b.Len()),
	}
	for _, rec := range b.Records() {
		c := contactJSON{Name: rec.Name(), Phones: rec.Phones()}
		if bd, ok := rec.Birthday(); ok {
			c.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, c)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return writeFileAtomic(s.path(), data)
}

// Load reads addressbook.json and reconstructs the book. A missing file
// yields an empty book; a snapshot that fails to decode or violates the
// data model is reported as ErrCorruptSnapshot.
func (s *jsonStore) Load() (*book.Book, error) {
	f, err := os.Open(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("opening %s: %w", s.path(), err)
	}
	defer f.Close()

	var snap snapshotJSON
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&snap); err != nil {
		return nil, corruptf("decoding %s: %v", s.path(), err)
	}
	if snap.Meta.Version != snapshotVersion {
		return nil, corruptf("unsupported snapshot version %d", snap.Meta.Version)
	}

	return restoreContacts(snap.Contacts)
}

// restoreContacts rebuilds a Book from serialized contacts, re-running
// field validation so a hand-edited snapshot cannot smuggle invalid data
// past the constructors.
func restoreContacts(contacts []contactJSON) (*book.Book, error) {
	b := book.New()
	for _, c := range contacts {
		rec, err := book.NewRecord(c.Name)
		if err != nil {
			return nil, corruptf("contact %q: %v", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, corruptf("contact %q phone %q: %v", c.Name, p, err)
			}
		}
		if c.Birthday != "" {
			if err := rec.SetBirthday(c.Birthday); err != nil {
				return nil, corruptf("contact %q birthday %q: %v", c.Name, c.Birthday, err)
			}
		}
		b.AddRecord(rec)
	}
	return b, nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory, fsyncing before the rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
