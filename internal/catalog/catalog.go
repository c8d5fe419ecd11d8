// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a SQLite ledger of converted window files: which
// range each window covered, how many records it held, and how many of
// them failed the primality check.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one converted window.
type Entry struct {
	Input       string
	Output      string
	RangeStart  uint64
	RangeEnd    uint64
	Records     uint64
	Checked     bool
	Composites  uint64
	ConvertedAt time.Time
}

// Catalog manages the catalog database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Range bounds are full uint64 values; SQLite integers are signed, so they
// are stored as decimal text.
func (c *Catalog) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS windows (
		input TEXT PRIMARY KEY,
		output TEXT NOT NULL,
		range_start TEXT NOT NULL,
		range_end TEXT NOT NULL,
		records INTEGER NOT NULL,
		checked INTEGER NOT NULL,
		composites INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts e, replacing any earlier entry for the same input path.
func (c *Catalog) Record(ctx context.Context, e Entry) error {
	if e.ConvertedAt.IsZero() {
		e.ConvertedAt = time.Now()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO windows (input, output, range_start, range_end, records, checked, composites, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(input) DO UPDATE SET
			output=excluded.output, range_start=excluded.range_start, range_end=excluded.range_end,
			records=excluded.records, checked=excluded.checked, composites=excluded.composites,
			converted_at=excluded.converted_at`,
		e.Input, e.Output,
		strconv.FormatUint(e.RangeStart, 10), strconv.FormatUint(e.RangeEnd, 10),
		int64(e.Records), e.Checked, int64(e.Composites),
		e.ConvertedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", e.Input, err)
	}
	return nil
}

// List returns every entry ordered by range start, then input path.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT input, output, range_start, range_end, records, checked, composites, converted_at FROM windows`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                    Entry
			start, end, convTime string
			records, composites  int64
		)
		if err := rows.Scan(&e.Input, &e.Output, &start, &end, &records, &e.Checked, &composites, &convTime); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if e.RangeStart, err = strconv.ParseUint(start, 10, 64); err != nil {
			return nil, fmt.Errorf("parsing range start of %s: %w", e.Input, err)
		}
		if e.RangeEnd, err = strconv.ParseUint(end, 10, 64); err != nil {
			return nil, fmt.Errorf("parsing range end of %s: %w", e.Input, err)
		}
		if e.ConvertedAt, err = time.Parse(time.RFC3339Nano, convTime); err != nil {
			return nil, fmt.Errorf("parsing conversion time of %s: %w", e.Input, err)
		}
		e.Records = uint64(records)
		e.Composites = uint64(composites)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RangeStart != entries[j].RangeStart {
			return entries[i].RangeStart < entries[j].RangeStart
		}
		return entries[i].Input < entries[j].Input
	})
	return entries, nil
}
