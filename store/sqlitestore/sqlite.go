package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/err0r500/go-ldp-server/store"
)

type sqliteStorage struct {
	db *sql.DB
}

func allPragmas() []string {
	return []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
}

func allSchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS resources (
			identifier TEXT PRIMARY KEY,
			modified   INTEGER NOT NULL,
			data       BLOB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS resource_versions (
			identifier TEXT NOT NULL,
			modified   INTEGER NOT NULL,
			data       BLOB NOT NULL,
			PRIMARY KEY (identifier, modified)
		)`,
	}
}

// New opens the sqlite database at dbPath and creates its schema
func New(ctx context.Context, dbPath string) (store.Backend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// a single connection serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	for _, pragma := range allPragmas() {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}
	for _, stmt := range allSchemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return sqliteStorage{db: db}, nil
}

func nanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func (s sqliteStorage) Current(ctx context.Context, identifier string) (store.Entry, error) {
	var (
		modified int64
		data     []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT modified, data FROM resources WHERE identifier = ?`, identifier).Scan(&modified, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Entry{}, store.ErrNotFound
	}
	if err != nil {
		return store.Entry{}, fmt.Errorf("loading %s: %w", identifier, err)
	}
	return store.Entry{Modified: nanos(modified), Data: data}, nil
}

func (s sqliteStorage) Version(ctx context.Context, identifier string, at time.Time) (store.Entry, error) {
	var (
		modified int64
		data     []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT modified, data FROM resource_versions WHERE identifier = ? AND modified <= ? ORDER BY modified DESC LIMIT 1`,
		identifier, at.UnixNano()).Scan(&modified, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Entry{}, store.ErrNotFound
	}
	if err != nil {
		return store.Entry{}, fmt.Errorf("loading %s version: %w", identifier, err)
	}
	return store.Entry{Modified: nanos(modified), Data: data}, nil
}

func (s sqliteStorage) Versions(ctx context.Context, identifier string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT modified FROM resource_versions WHERE identifier = ? ORDER BY modified`, identifier)
	if err != nil {
		return nil, fmt.Errorf("listing versions of %s: %w", identifier, err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var modified int64
		if err := rows.Scan(&modified); err != nil {
			return nil, err
		}
		out = append(out, nanos(modified))
	}
	return out, rows.Err()
}

func (s sqliteStorage) Save(ctx context.Context, identifier string, prev time.Time, e store.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var cur time.Time
	var modified int64
	err = tx.QueryRowContext(ctx, `SELECT modified FROM resources WHERE identifier = ?`, identifier).Scan(&modified)
	switch {
	case err == nil:
		cur = nanos(modified)
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("loading %s: %w", identifier, err)
	}
	if !cur.Equal(prev) {
		return store.ErrConflict
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO resources (identifier, modified, data) VALUES (?, ?, ?)
		 ON CONFLICT(identifier) DO UPDATE SET modified = excluded.modified, data = excluded.data`,
		identifier, e.Modified.UnixNano(), e.Data); err != nil {
		return fmt.Errorf("saving %s: %w", identifier, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO resource_versions (identifier, modified, data) VALUES (?, ?, ?)`,
		identifier, e.Modified.UnixNano(), e.Data); err != nil {
		return fmt.Errorf("saving %s version: %w", identifier, err)
	}
	return tx.Commit()
}

func (s sqliteStorage) Close() error {
	return s.db.Close()
}
