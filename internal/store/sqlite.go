package store

import (
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	coreerrors "github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/errors"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/verse"
)

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	book    TEXT    NOT NULL,
	chapter INTEGER NOT NULL,
	number  INTEGER NOT NULL,
	text    TEXT    NOT NULL,
	gematria_standard INTEGER NOT NULL,
	gematria_ordinal  INTEGER NOT NULL,
	gematria_reduced  INTEGER NOT NULL,
	record  BLOB    NOT NULL,
	PRIMARY KEY (book, chapter, number)
);`

// SQLiteStore persists verse records in a single SQLite database. The
// full record is kept as JSON alongside queryable key and gematria
// columns.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite-backed store. The
// driver is pure Go by default; build with -tags cgo_sqlite for the CGO
// driver.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, coreerrors.NewStore("open", "", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, coreerrors.NewStore("open", "", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Put implements Store.
func (s *SQLiteStore) Put(v *verse.Verse) error {
	data, err := json.Marshal(v)
	if err != nil {
		return coreerrors.NewStore("put", v.Key(), err)
	}

	_, err = s.db.Exec(`
		INSERT INTO verses
			(book, chapter, number, text, gematria_standard, gematria_ordinal, gematria_reduced, record)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (book, chapter, number) DO UPDATE SET
			text = excluded.text,
			gematria_standard = excluded.gematria_standard,
			gematria_ordinal = excluded.gematria_ordinal,
			gematria_reduced = excluded.gematria_reduced,
			record = excluded.record`,
		v.Book, v.Chapter, v.Number, v.Text,
		v.Gematria.Standard, v.Gematria.Ordinal, v.Gematria.Reduced, data)
	if err != nil {
		return coreerrors.NewStore("put", v.Key(), err)
	}
	return nil
}

// Get implements Store.
func (s *SQLiteStore) Get(book string, chapter, number int) (*verse.Verse, error) {
	key := fmt.Sprintf("%s.%d.%d", book, chapter, number)

	var data []byte
	err := s.db.QueryRow(
		`SELECT record FROM verses WHERE book = ? AND chapter = ? AND number = ?`,
		book, chapter, number).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, coreerrors.NewNotFound("verse", key)
	}
	if err != nil {
		return nil, coreerrors.NewStore("get", key, err)
	}

	var v verse.Verse
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, coreerrors.NewStore("get", key, err)
	}
	return &v, nil
}

// Count returns the number of stored verse records.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&n); err != nil {
		return 0, coreerrors.NewStore("count", "", err)
	}
	return n, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return coreerrors.NewStore("close", "", err)
	}
	return nil
}
