// SQLite snapshot backend. The snapshot lives in addressbook.db; Save
// rewrites both tables inside one transaction so readers never observe a
// partially written snapshot.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

//go:embed schema.sql
var schemaSQL string

// sqliteSnapshotFile is the database filename inside the data directory.
const sqliteSnapshotFile = "addressbook.db"

type sqliteStore struct {
	dataDir string
}

func newSQLiteStore(dataDir string) *sqliteStore {
	if dataDir == "" {
		dataDir = "."
	}
	return &sqliteStore{dataDir: dataDir}
}

func (s *sqliteStore) path() string {
	return filepath.Join(s.dataDir, sqliteSnapshotFile)
}

// open opens the database and applies the schema. The caller closes it.
func (s *sqliteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path(), err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return db, nil
}

// Save replaces the snapshot with the book's current contents.
func (s *sqliteStore) Save(b *book.Book) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	for pos, rec := range b.Records() {
		var birthday sql.NullString
		if bd, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}
		if _, err := tx.Exec(
			"INSERT INTO contacts (position, name, birthday) VALUES (?, ?, ?)",
			pos, rec.Name(), birthday,
		); err != nil {
			return fmt.Errorf("inserting contact %q: %w", rec.Name(), err)
		}
		for ord, phone := range rec.Phones() {
			if _, err := tx.Exec(
				"INSERT INTO phones (contact_name, ordinal, value) VALUES (?, ?, ?)",
				rec.Name(), ord, phone,
			); err != nil {
				return fmt.Errorf("inserting phone for %q: %w", rec.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reconstructs the book from addressbook.db. A missing database
// file yields an empty book.
func (s *sqliteStore) Load() (*book.Book, error) {
	if _, err := os.Stat(s.path()); err != nil {
		if os.IsNotExist(err) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("stat %s: %w", s.path(), err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	contacts, err := loadContactRows(db)
	if err != nil {
		return nil, err
	}

	b := book.New()
	for _, c := range contacts {
		rec, err := book.NewRecord(c.name)
		if err != nil {
			return nil, corruptf("contact %q: %v", c.name, err)
		}
		if err := loadPhones(db, rec); err != nil {
			return nil, err
		}
		if c.birthday.Valid {
			if err := rec.SetBirthday(c.birthday.String); err != nil {
				return nil, corruptf("contact %q birthday %q: %v", c.name, c.birthday.String, err)
			}
		}
		b.AddRecord(rec)
	}
	return b, nil
}

type contactRow struct {
	name     string
	birthday sql.NullString
}

func loadContactRows(db *sql.DB) ([]contactRow, error) {
	rows, err := db.Query("SELECT name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contactRow
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.name, &c.birthday); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

func loadPhones(db *sql.DB, rec *book.Record) error {
	rows, err := db.Query(
		"SELECT value FROM phones WHERE contact_name = ? ORDER BY ordinal",
		rec.Name(),
	)
	if err != nil {
		return fmt.Errorf("querying phones for %q: %w", rec.Name(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("scanning phone: %w", err)
		}
		if err := rec.AddPhone(value); err != nil {
			return corruptf("contact %q phone %q: %v", rec.Name(), value, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating phones: %w", err)
	}
	return nil
}
