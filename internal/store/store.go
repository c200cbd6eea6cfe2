// Package store persists assembled verse records, one record per
// (book, chapter, verse) key. Two backends are provided: a directory of
// JSON files mirroring the upstream source layout, and a SQLite database.
//
// Stores receive finished, immutable records; conversion never depends
// on store state and records may be persisted in any order.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"

	coreerrors "github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/errors"
	"github.com/metaxiamultimedia/scriptures-go-source-crosswire-kjv/core/verse"
)

// Store is the verse persistence contract.
type Store interface {
	// Put persists one verse record, replacing any existing record with
	// the same key.
	Put(v *verse.Verse) error

	// Get retrieves a record by key.
	Get(book string, chapter, number int) (*verse.Verse, error)

	// Close releases any held resources.
	Close() error
}

// DirStore writes one pretty-printed JSON file per verse under
// root/<book>/<chapter>/<verse>.json.
type DirStore struct {
	root string
}

// OpenDir opens (creating if needed) a directory-backed store.
func OpenDir(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, coreerrors.NewStore("open", "", err)
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) path(book string, chapter, number int) string {
	return filepath.Join(s.root, book, strconv.Itoa(chapter), strconv.Itoa(number)+".json")
}

// Put implements Store.
func (s *DirStore) Put(v *verse.Verse) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return coreerrors.NewStore("put", v.Key(), err)
	}

	path := s.path(v.Book, v.Chapter, v.Number)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return coreerrors.NewStore("put", v.Key(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return coreerrors.NewStore("put", v.Key(), err)
	}
	return nil
}

// Get implements Store.
func (s *DirStore) Get(book string, chapter, number int) (*verse.Verse, error) {
	key := fmt.Sprintf("%s.%d.%d", book, chapter, number)

	data, err := os.ReadFile(s.path(book, chapter, number))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, coreerrors.NewNotFound("verse", key)
		}
		return nil, coreerrors.NewStore("get", key, err)
	}

	var v verse.Verse
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, coreerrors.NewStore("get", key, err)
	}
	return &v, nil
}

// Close implements Store. Directory stores hold no resources.
func (s *DirStore) Close() error { return nil }
