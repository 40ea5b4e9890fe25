// astron.nl/go/sip - LOFAR LTA Submission Information Packages in Go
// Copyright (C) 2026  ASTRON (Netherlands Institute for Radio Astronomy)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package idservice

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const lockRetryDelay = 50 * time.Millisecond

// Cache remembers the identifiers registered for labels, so that repeated
// lookups need no round trip to the catalog.  The cache is an SQLite
// database; a lock file next to it serializes identifier creation between
// processes sharing the cache.
type Cache struct {
	db   *sql.DB
	path string
	lk   *flock.Flock
}

// OpenCache opens the cache database at path, creating it if needed.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Cache{
		db:   db,
		path: path,
		lk:   flock.New(path + ".lock"),
	}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the location of the database file.
func (c *Cache) Path() string {
	return c.path
}

// Lookup returns the identifier stored for label.
func (c *Cache) Lookup(ctx context.Context, source, label string) (string, bool, error) {
	var id string
	err := c.db.QueryRowContext(ctx,
		"SELECT identifier FROM identifiers WHERE source = ? AND label = ?",
		source, label,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("look up cached identifier: %w", err)
	}
	return id, true, nil
}

// Store records the identifier of a label.  An existing entry is replaced.
func (c *Cache) Store(ctx context.Context, source, label, id string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO identifiers (source, label, identifier, created_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (source, label) DO UPDATE SET identifier = excluded.identifier`,
		source, label, id, now,
	)
	if err != nil {
		return fmt.Errorf("cache identifier: %w", err)
	}
	return nil
}

// Entry is a cached identifier.
type Entry struct {
	Source     string
	Label      string
	Identifier string
	CreatedAt  time.Time
}

// Entries lists the cache contents, ordered by source and label.
func (c *Cache) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT source, label, identifier, created_at FROM identifiers ORDER BY source, label")
	if err != nil {
		return nil, fmt.Errorf("list cached identifiers: %w", err)
	}
	defer rows.Close()

	var res []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.Source, &e.Label, &e.Identifier, &created); err != nil {
			return nil, fmt.Errorf("scan cached identifier: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		res = append(res, e)
	}
	return res, rows.Err()
}

// lock acquires the creation lock.  The returned function releases it.
func (c *Cache) lock(ctx context.Context) (func(), error) {
	ok, err := c.lk.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("acquire cache lock: not acquired")
	}
	return func() { _ = c.lk.Unlock() }, nil
}
