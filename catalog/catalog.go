// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package catalog

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/paths"

	_ "modernc.org/sqlite"
)

// Sentinal error patterns.
const (
	NotFound = "catalog: cartridge not found (%s)"
	NoHash   = "catalog: cartridge has no hash (%s)"
)

// DefaultFile is the name of the catalog database in the resource
// directory.
const DefaultFile = "catalog.db"

const schema = `
CREATE TABLE IF NOT EXISTS cartridges (
	hash     TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	title    TEXT NOT NULL,
	type     TEXT NOT NULL,
	banks    INTEGER NOT NULL,
	ram      INTEGER NOT NULL,
	region   TEXT NOT NULL,
	added    INTEGER NOT NULL
)`

const upsert = `
INSERT INTO cartridges (hash, filename, title, type, banks, ram, region, added)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(hash) DO UPDATE SET
	filename = excluded.filename,
	title = excluded.title,
	type = excluded.type,
	banks = excluded.banks,
	ram = excluded.ram,
	region = excluded.region`

const columns = `hash, filename, title, type, banks, ram, region, added`

// Catalog is an open cartridge database.
type Catalog struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the location of the catalog in the resource directory.
func DefaultPath() string {
	return paths.ResourcePath(DefaultFile)
}

// Open the catalog database at path, creating it if necessary.
func Open(path string) (*Catalog, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return nil, curated.Errorf("catalog: %v", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, curated.Errorf("catalog: %v", err)
	}

	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, curated.Errorf("catalog: %v", err)
	}

	return &Catalog{db: db, path: path}, nil
}

// Path returns the location of the database file.
func (cat *Catalog) Path() string {
	return cat.path
}

// Close the database.
func (cat *Catalog) Close() error {
	err := cat.db.Close()
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	return nil
}

// Add the cartridge to the catalog. The loader must have loaded the
// cartridge data so that the hash is available.
func (cat *Catalog) Add(cartload cartridgeloader.Loader, hdr cartridge.Header) error {
	if cartload.Hash == "" {
		return curated.Errorf(NoHash, cartload.ShortName())
	}

	_, err := cat.db.Exec(upsert,
		cartload.Hash,
		cartload.Filename,
		hdr.Title,
		hdr.Type.String(),
		hdr.ROMBanks,
		hdr.RAMSize,
		hdr.Region(),
		time.Now().Unix(),
	)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	logger.Logf(logger.Allow, "catalog", "added %s (%s)", hdr.Title, cartload.ShortName())

	return nil
}

// List all cartridges in the catalog ordered by title.
func (cat *Catalog) List() ([]Entry, error) {
	rows, err := cat.db.Query(`SELECT ` + columns + ` FROM cartridges ORDER BY title, filename`)
	if err != nil {
		return nil, curated.Errorf("catalog: %v", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, curated.Errorf("catalog: %v", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, curated.Errorf("catalog: %v", err)
	}

	return entries, nil
}

// Find the cartridge with the hash.
func (cat *Catalog) Find(hash string) (Entry, error) {
	row := cat.db.QueryRow(`SELECT `+columns+` FROM cartridges WHERE hash = ?`, hash)

	e, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, curated.Errorf(NotFound, hash)
	}
	if err != nil {
		return Entry{}, curated.Errorf("catalog: %v", err)
	}

	return e, nil
}

// Remove the cartridge with the hash from the catalog.
func (cat *Catalog) Remove(hash string) error {
	res, err := cat.db.Exec(`DELETE FROM cartridges WHERE hash = ?`, hash)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	if n == 0 {
		return curated.Errorf(NotFound, hash)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Entry, error) {
	var e Entry
	var added int64

	err := s.Scan(&e.Hash, &e.Filename, &e.Title, &e.Type, &e.Banks, &e.RAM, &e.Region, &added)
	if err != nil {
		return Entry{}, err
	}
	e.Added = time.Unix(added, 0)

	return e, nil
}
